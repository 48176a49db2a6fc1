package record

// NS delegates the zone to a name server. Like SOA, its wire schema has no
// TTL field.
type NS struct {
	Header
	Host string
}

func NewNS(name, host string, opts *Opts) (*NS, error) {
	if err := noTTL("NS", opts); err != nil {
		return nil, err
	}
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if host == "" {
		return nil, &ValidationError{Field: "ns", Reason: "name server is required"}
	}
	return &NS{Header: h, Host: host}, nil
}

func (r *NS) Type() string { return "NS" }

func (r *NS) rr() *rrXML {
	el := &rrXML{Type: "NS", NS: &nameXML{Name: r.Host}}
	r.fillRR(el)
	return el
}

func nsFromRR(el *rrXML) (*NS, error) {
	if el.Type != "NS" {
		return nil, &TypeMismatchError{Want: "NS", Got: el.Type}
	}
	if el.NS == nil {
		return nil, missingElement("NS", "ns")
	}
	opts, err := optsFromRR(el, false)
	if err != nil {
		return nil, err
	}
	return NewNS(el.Name, el.NS.Name, opts)
}

// ParseNS parses a single <rr> element that must be an NS record.
func ParseNS(data []byte) (*NS, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return nsFromRR(el)
}

// CNAME aliases the name to another domain name.
type CNAME struct {
	Header
	Target string
}

func NewCNAME(name, target string, opts *Opts) (*CNAME, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, &ValidationError{Field: "cname", Reason: "target is required"}
	}
	return &CNAME{Header: h, Target: target}, nil
}

func (r *CNAME) Type() string { return "CNAME" }

func (r *CNAME) rr() *rrXML {
	el := &rrXML{Type: "CNAME", CNAME: &nameXML{Name: r.Target}}
	r.fillRR(el)
	return el
}

func cnameFromRR(el *rrXML) (*CNAME, error) {
	if el.Type != "CNAME" {
		return nil, &TypeMismatchError{Want: "CNAME", Got: el.Type}
	}
	if el.CNAME == nil {
		return nil, missingElement("CNAME", "cname")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewCNAME(el.Name, el.CNAME.Name, opts)
}

// ParseCNAME parses a single <rr> element that must be a CNAME record.
func ParseCNAME(data []byte) (*CNAME, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return cnameFromRR(el)
}

// PTR maps an address name back to a domain name.
type PTR struct {
	Header
	Target string
}

func NewPTR(name, target string, opts *Opts) (*PTR, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, &ValidationError{Field: "ptr", Reason: "target is required"}
	}
	return &PTR{Header: h, Target: target}, nil
}

func (r *PTR) Type() string { return "PTR" }

func (r *PTR) rr() *rrXML {
	el := &rrXML{Type: "PTR", PTR: &nameXML{Name: r.Target}}
	r.fillRR(el)
	return el
}

func ptrFromRR(el *rrXML) (*PTR, error) {
	if el.Type != "PTR" {
		return nil, &TypeMismatchError{Want: "PTR", Got: el.Type}
	}
	if el.PTR == nil {
		return nil, missingElement("PTR", "ptr")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewPTR(el.Name, el.PTR.Name, opts)
}

// ParsePTR parses a single <rr> element that must be a PTR record.
func ParsePTR(data []byte) (*PTR, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return ptrFromRR(el)
}

// DNAME redirects a whole subtree of the namespace to another domain.
type DNAME struct {
	Header
	Target string
}

func NewDNAME(name, target string, opts *Opts) (*DNAME, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, &ValidationError{Field: "dname", Reason: "target is required"}
	}
	return &DNAME{Header: h, Target: target}, nil
}

func (r *DNAME) Type() string { return "DNAME" }

func (r *DNAME) rr() *rrXML {
	el := &rrXML{Type: "DNAME", DNAME: &nameXML{Name: r.Target}}
	r.fillRR(el)
	return el
}

func dnameFromRR(el *rrXML) (*DNAME, error) {
	if el.Type != "DNAME" {
		return nil, &TypeMismatchError{Want: "DNAME", Got: el.Type}
	}
	if el.DNAME == nil {
		return nil, missingElement("DNAME", "dname")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewDNAME(el.Name, el.DNAME.Name, opts)
}

// ParseDNAME parses a single <rr> element that must be a DNAME record.
func ParseDNAME(data []byte) (*DNAME, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return dnameFromRR(el)
}
