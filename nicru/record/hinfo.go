package record

// HINFO describes the host's hardware and operating system.
type HINFO struct {
	Header
	Hardware string
	OS       string
}

func NewHINFO(name, hardware, os string, opts *Opts) (*HINFO, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if hardware == "" {
		return nil, &ValidationError{Field: "hardware", Reason: "hardware is required"}
	}
	if os == "" {
		return nil, &ValidationError{Field: "os", Reason: "os is required"}
	}
	return &HINFO{Header: h, Hardware: hardware, OS: os}, nil
}

func (r *HINFO) Type() string { return "HINFO" }

func (r *HINFO) rr() *rrXML {
	el := &rrXML{Type: "HINFO", HINFO: &hinfoXML{Hardware: r.Hardware, OS: r.OS}}
	r.fillRR(el)
	return el
}

func hinfoFromRR(el *rrXML) (*HINFO, error) {
	if el.Type != "HINFO" {
		return nil, &TypeMismatchError{Want: "HINFO", Got: el.Type}
	}
	if el.HINFO == nil {
		return nil, missingElement("HINFO", "hinfo")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewHINFO(el.Name, el.HINFO.Hardware, el.HINFO.OS, opts)
}

// ParseHINFO parses a single <rr> element that must be an HINFO record.
func ParseHINFO(data []byte) (*HINFO, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return hinfoFromRR(el)
}
