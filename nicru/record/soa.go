package record

// SOA is the start-of-authority record of a zone. Its wire schema has no
// TTL field, so the constructor rejects one.
type SOA struct {
	Header
	MName   Name
	RName   Name
	Serial  int
	Refresh int
	Retry   int
	Expire  int
	Minimum int
}

// SOAData holds the payload fields of an SOA record.
type SOAData struct {
	MName   Name
	RName   Name
	Serial  int
	Refresh int
	Retry   int
	Expire  int
	Minimum int
}

func NewSOA(name string, data SOAData, opts *Opts) (*SOA, error) {
	if err := noTTL("SOA", opts); err != nil {
		return nil, err
	}
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if data.Serial < 0 {
		return nil, &ValidationError{Field: "serial", Reason: "must be a non-negative integer"}
	}
	if data.Refresh < 0 {
		return nil, &ValidationError{Field: "refresh", Reason: "must be a non-negative integer"}
	}
	if data.Retry < 0 {
		return nil, &ValidationError{Field: "retry", Reason: "must be a non-negative integer"}
	}
	if data.Expire < 0 {
		return nil, &ValidationError{Field: "expire", Reason: "must be a non-negative integer"}
	}
	if data.Minimum < 0 {
		return nil, &ValidationError{Field: "minimum", Reason: "must be a non-negative integer"}
	}
	return &SOA{
		Header:  h,
		MName:   data.MName,
		RName:   data.RName,
		Serial:  data.Serial,
		Refresh: data.Refresh,
		Retry:   data.Retry,
		Expire:  data.Expire,
		Minimum: data.Minimum,
	}, nil
}

func (r *SOA) Type() string { return "SOA" }

func (r *SOA) rr() *rrXML {
	el := &rrXML{
		Type: "SOA",
		SOA: &soaXML{
			MName:   nameXML{Name: r.MName.Name},
			RName:   nameXML{Name: r.RName.Name},
			Serial:  itoa(r.Serial),
			Refresh: itoa(r.Refresh),
			Retry:   itoa(r.Retry),
			Expire:  itoa(r.Expire),
			Minimum: itoa(r.Minimum),
		},
	}
	r.fillRR(el)
	return el
}

func soaFromRR(el *rrXML) (*SOA, error) {
	if el.Type != "SOA" {
		return nil, &TypeMismatchError{Want: "SOA", Got: el.Type}
	}
	if el.SOA == nil {
		return nil, missingElement("SOA", "soa")
	}
	opts, err := optsFromRR(el, false)
	if err != nil {
		return nil, err
	}
	mname, err := nameFromXML(el.SOA.MName)
	if err != nil {
		return nil, err
	}
	rname, err := nameFromXML(el.SOA.RName)
	if err != nil {
		return nil, err
	}
	data := SOAData{MName: mname, RName: rname}
	if data.Serial, err = atoiField("SOA", "serial", el.SOA.Serial); err != nil {
		return nil, err
	}
	if data.Refresh, err = atoiField("SOA", "refresh", el.SOA.Refresh); err != nil {
		return nil, err
	}
	if data.Retry, err = atoiField("SOA", "retry", el.SOA.Retry); err != nil {
		return nil, err
	}
	if data.Expire, err = atoiField("SOA", "expire", el.SOA.Expire); err != nil {
		return nil, err
	}
	if data.Minimum, err = atoiField("SOA", "minimum", el.SOA.Minimum); err != nil {
		return nil, err
	}
	return NewSOA(el.Name, data, opts)
}

// ParseSOA parses a single <rr> element that must be an SOA record.
func ParseSOA(data []byte) (*SOA, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return soaFromRR(el)
}
