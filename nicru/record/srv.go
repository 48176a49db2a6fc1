package record

// SRV locates a service endpoint (priority, weight, port, target).
type SRV struct {
	Header
	Priority int
	Weight   int
	Port     int
	Target   string
}

func NewSRV(name string, priority, weight, port int, target string, opts *Opts) (*SRV, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if priority < 0 {
		return nil, &ValidationError{Field: "priority", Reason: "must be a non-negative integer"}
	}
	if weight < 0 {
		return nil, &ValidationError{Field: "weight", Reason: "must be a non-negative integer"}
	}
	if port < 0 {
		return nil, &ValidationError{Field: "port", Reason: "must be a non-negative integer"}
	}
	if target == "" {
		return nil, &ValidationError{Field: "target", Reason: "target is required"}
	}
	return &SRV{Header: h, Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func (r *SRV) Type() string { return "SRV" }

func (r *SRV) rr() *rrXML {
	el := &rrXML{
		Type: "SRV",
		SRV: &srvXML{
			Priority: itoa(r.Priority),
			Weight:   itoa(r.Weight),
			Port:     itoa(r.Port),
			Target:   nameXML{Name: r.Target},
		},
	}
	r.fillRR(el)
	return el
}

func srvFromRR(el *rrXML) (*SRV, error) {
	if el.Type != "SRV" {
		return nil, &TypeMismatchError{Want: "SRV", Got: el.Type}
	}
	if el.SRV == nil {
		return nil, missingElement("SRV", "srv")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	priority, err := atoiField("SRV", "priority", el.SRV.Priority)
	if err != nil {
		return nil, err
	}
	weight, err := atoiField("SRV", "weight", el.SRV.Weight)
	if err != nil {
		return nil, err
	}
	port, err := atoiField("SRV", "port", el.SRV.Port)
	if err != nil {
		return nil, err
	}
	return NewSRV(el.Name, priority, weight, port, el.SRV.Target.Name, opts)
}

// ParseSRV parses a single <rr> element that must be an SRV record.
func ParseSRV(data []byte) (*SRV, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return srvFromRR(el)
}
