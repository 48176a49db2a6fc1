package record

// RP names the person responsible for the domain. Txt is a domain name
// pointing at a TXT record, not text content.
type RP struct {
	Header
	Mbox string
	Txt  string
}

func NewRP(name, mbox, txt string, opts *Opts) (*RP, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if mbox == "" {
		return nil, &ValidationError{Field: "mbox", Reason: "mbox is required"}
	}
	if txt == "" {
		return nil, &ValidationError{Field: "txt", Reason: "txt domain is required"}
	}
	return &RP{Header: h, Mbox: mbox, Txt: txt}, nil
}

func (r *RP) Type() string { return "RP" }

func (r *RP) rr() *rrXML {
	el := &rrXML{
		Type: "RP",
		RP: &rpXML{
			Mbox: nameXML{Name: r.Mbox},
			Txt:  nameXML{Name: r.Txt},
		},
	}
	r.fillRR(el)
	return el
}

func rpFromRR(el *rrXML) (*RP, error) {
	if el.Type != "RP" {
		return nil, &TypeMismatchError{Want: "RP", Got: el.Type}
	}
	if el.RP == nil {
		return nil, missingElement("RP", "rp")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewRP(el.Name, el.RP.Mbox.Name, el.RP.Txt.Name, opts)
}

// ParseRP parses a single <rr> element that must be an RP record.
func ParseRP(data []byte) (*RP, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return rpFromRR(el)
}
