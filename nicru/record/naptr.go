package record

// NAPTR is a naming-authority pointer. Regexp and Replacement may be
// empty; they are still emitted on the wire.
type NAPTR struct {
	Header
	Order       int
	Preference  int
	Flags       string
	Service     string
	Regexp      string
	Replacement string
}

// NAPTRData holds the payload fields of a NAPTR record.
type NAPTRData struct {
	Order       int
	Preference  int
	Flags       string
	Service     string
	Regexp      string
	Replacement string
}

func NewNAPTR(name string, data NAPTRData, opts *Opts) (*NAPTR, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if data.Order < 0 {
		return nil, &ValidationError{Field: "order", Reason: "must be a non-negative integer"}
	}
	if data.Preference < 0 {
		return nil, &ValidationError{Field: "preference", Reason: "must be a non-negative integer"}
	}
	return &NAPTR{
		Header:      h,
		Order:       data.Order,
		Preference:  data.Preference,
		Flags:       data.Flags,
		Service:     data.Service,
		Regexp:      data.Regexp,
		Replacement: data.Replacement,
	}, nil
}

func (r *NAPTR) Type() string { return "NAPTR" }

func (r *NAPTR) rr() *rrXML {
	el := &rrXML{
		Type: "NAPTR",
		NAPTR: &naptrXML{
			Order:       itoa(r.Order),
			Preference:  itoa(r.Preference),
			Flags:       r.Flags,
			Service:     r.Service,
			Regexp:      r.Regexp,
			Replacement: nameXML{Name: r.Replacement},
		},
	}
	r.fillRR(el)
	return el
}

func naptrFromRR(el *rrXML) (*NAPTR, error) {
	if el.Type != "NAPTR" {
		return nil, &TypeMismatchError{Want: "NAPTR", Got: el.Type}
	}
	if el.NAPTR == nil {
		return nil, missingElement("NAPTR", "naptr")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	order, err := atoiField("NAPTR", "order", el.NAPTR.Order)
	if err != nil {
		return nil, err
	}
	pref, err := atoiField("NAPTR", "preference", el.NAPTR.Preference)
	if err != nil {
		return nil, err
	}
	return NewNAPTR(el.Name, NAPTRData{
		Order:       order,
		Preference:  pref,
		Flags:       el.NAPTR.Flags,
		Service:     el.NAPTR.Service,
		Regexp:      el.NAPTR.Regexp,
		Replacement: el.NAPTR.Replacement.Name,
	}, opts)
}

// ParseNAPTR parses a single <rr> element that must be a NAPTR record.
func ParseNAPTR(data []byte) (*NAPTR, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return naptrFromRR(el)
}
