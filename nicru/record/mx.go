package record

// MX names a mail exchange for the zone.
type MX struct {
	Header
	Preference int
	Exchange   string
}

func NewMX(name string, preference int, exchange string, opts *Opts) (*MX, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if preference < 0 {
		return nil, &ValidationError{Field: "preference", Reason: "must be a non-negative integer"}
	}
	if exchange == "" {
		return nil, &ValidationError{Field: "exchange", Reason: "exchange is required"}
	}
	return &MX{Header: h, Preference: preference, Exchange: exchange}, nil
}

func (r *MX) Type() string { return "MX" }

func (r *MX) rr() *rrXML {
	el := &rrXML{
		Type: "MX",
		MX: &mxXML{
			Preference: itoa(r.Preference),
			Exchange:   nameXML{Name: r.Exchange},
		},
	}
	r.fillRR(el)
	return el
}

func mxFromRR(el *rrXML) (*MX, error) {
	if el.Type != "MX" {
		return nil, &TypeMismatchError{Want: "MX", Got: el.Type}
	}
	if el.MX == nil {
		return nil, missingElement("MX", "mx")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	pref, err := atoiField("MX", "preference", el.MX.Preference)
	if err != nil {
		return nil, err
	}
	return NewMX(el.Name, pref, el.MX.Exchange.Name, opts)
}

// ParseMX parses a single <rr> element that must be an MX record.
func ParseMX(data []byte) (*MX, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return mxFromRR(el)
}
