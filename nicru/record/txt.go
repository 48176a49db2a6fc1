package record

import "strings"

// TXT holds free-form text, stored as the ordered list of character
// strings the wire form carries.
type TXT struct {
	Header
	Strings []string
}

func NewTXT(name string, text []string, opts *Opts) (*TXT, error) {
	h, err := newHeader(name, opts)
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return nil, &ValidationError{Field: "txt", Reason: "at least one string is required"}
	}
	return &TXT{Header: h, Strings: append([]string(nil), text...)}, nil
}

func (r *TXT) Type() string { return "TXT" }

// Text returns the record content as a single string. A single-element
// record reads as that element; multi-string content is concatenated the
// way DNS resolvers treat adjacent character strings.
func (r *TXT) Text() string {
	return strings.Join(r.Strings, "")
}

func (r *TXT) rr() *rrXML {
	el := &rrXML{Type: "TXT", TXT: &txtXML{Strings: r.Strings}}
	r.fillRR(el)
	return el
}

func txtFromRR(el *rrXML) (*TXT, error) {
	if el.Type != "TXT" {
		return nil, &TypeMismatchError{Want: "TXT", Got: el.Type}
	}
	if el.TXT == nil || len(el.TXT.Strings) == 0 {
		return nil, missingElement("TXT", "txt/string")
	}
	opts, err := optsFromRR(el, true)
	if err != nil {
		return nil, err
	}
	return NewTXT(el.Name, el.TXT.Strings, opts)
}

// ParseTXT parses a single <rr> element that must be a TXT record.
func ParseTXT(data []byte) (*TXT, error) {
	el, err := unmarshalRR(data)
	if err != nil {
		return nil, err
	}
	return txtFromRR(el)
}
