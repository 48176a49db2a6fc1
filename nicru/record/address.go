package record

// A maps the name to an IPv4 address. The address literal is passed
// through as-is; the API is the authority on its validity.
type A struct {
	Header
	Addr string
}

func NewA(name, addr string, opts *Opts) (*A, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		return nil, &ValidationError{Field: "a", Reason: "address is required"}
	}
	return &A{Header: h, Addr: addr}, nil
}

func (r *A) Type() string { return "A" }

func (r *A) rr() *rrXML {
	el := &rrXML{Type: "A", A: r.Addr}
	r.fillRR(el)
	return el
}

func aFromRR(el *rrXML) (*A, error) {
	if el.Type != "A" {
		return nil, &TypeMismatchError{Want: "A", Got: el.Type}
	}
	if el.A == "" {
		return nil, missingElement("A", "a")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewA(el.Name, el.A, opts)
}

// ParseA parses a single <rr> element that must be an A record.
func ParseA(data []byte) (*A, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return aFromRR(el)
}

// AAAA maps the name to an IPv6 address.
type AAAA struct {
	Header
	Addr string
}

func NewAAAA(name, addr string, opts *Opts) (*AAAA, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		return nil, &ValidationError{Field: "aaaa", Reason: "address is required"}
	}
	return &AAAA{Header: h, Addr: addr}, nil
}

func (r *AAAA) Type() string { return "AAAA" }

func (r *AAAA) rr() *rrXML {
	el := &rrXML{Type: "AAAA", AAAA: r.Addr}
	r.fillRR(el)
	return el
}

func aaaaFromRR(el *rrXML) (*AAAA, error) {
	if el.Type != "AAAA" {
		return nil, &TypeMismatchError{Want: "AAAA", Got: el.Type}
	}
	if el.AAAA == "" {
		return nil, missingElement("AAAA", "aaaa")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewAAAA(el.Name, el.AAAA, opts)
}

// ParseAAAA parses a single <rr> element that must be an AAAA record.
func ParseAAAA(data []byte) (*AAAA, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return aaaaFromRR(el)
}
