package record

// parsers maps a wire type tag to the model that owns it. Adding a record
// kind means adding its entry here and its case in Format; nothing else
// dispatches on the tag.
var parsers = map[string]func(*rrXML) (Record, error){
	"SOA":   func(el *rrXML) (Record, error) { return soaFromRR(el) },
	"NS":    func(el *rrXML) (Record, error) { return nsFromRR(el) },
	"A":     func(el *rrXML) (Record, error) { return aFromRR(el) },
	"AAAA":  func(el *rrXML) (Record, error) { return aaaaFromRR(el) },
	"CNAME": func(el *rrXML) (Record, error) { return cnameFromRR(el) },
	"MX":    func(el *rrXML) (Record, error) { return mxFromRR(el) },
	"TXT":   func(el *rrXML) (Record, error) { return txtFromRR(el) },
	"SRV":   func(el *rrXML) (Record, error) { return srvFromRR(el) },
	"PTR":   func(el *rrXML) (Record, error) { return ptrFromRR(el) },
	"DNAME": func(el *rrXML) (Record, error) { return dnameFromRR(el) },
	"HINFO": func(el *rrXML) (Record, error) { return hinfoFromRR(el) },
	"NAPTR": func(el *rrXML) (Record, error) { return naptrFromRR(el) },
	"RP":    func(el *rrXML) (Record, error) { return rpFromRR(el) },
}

// Parse reads a single <rr> element and dispatches it to the model
// responsible for its type tag.
func Parse(data []byte) (Record, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return parseRR(el)
}

func parseRR(el *rrXML) (Record, error) {
	parse, ok := parsers[el.Type]
	if !ok {
		return nil, &UnknownTypeError{Tag: el.Type}
	}
	return parse(el)
}
