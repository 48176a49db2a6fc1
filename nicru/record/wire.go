package record

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// rrXML is the wire shape of a single <rr> element. Field order matches
// the schema the API round-trips: id attribute, name, optional idn-name,
// optional ttl, type tag, then exactly one type-specific payload.
type rrXML struct {
	XMLName xml.Name  `xml:"rr"`
	ID      string    `xml:"id,attr,omitempty"`
	Name    string    `xml:"name"`
	IDNName string    `xml:"idn-name,omitempty"`
	TTL     string    `xml:"ttl,omitempty"`
	Type    string    `xml:"type"`
	SOA     *soaXML   `xml:"soa"`
	NS      *nameXML  `xml:"ns"`
	A       string    `xml:"a,omitempty"`
	AAAA    string    `xml:"aaaa,omitempty"`
	CNAME   *nameXML  `xml:"cname"`
	MX      *mxXML    `xml:"mx"`
	TXT     *txtXML   `xml:"txt"`
	SRV     *srvXML   `xml:"srv"`
	PTR     *nameXML  `xml:"ptr"`
	DNAME   *nameXML  `xml:"dname"`
	HINFO   *hinfoXML `xml:"hinfo"`
	NAPTR   *naptrXML `xml:"naptr"`
	RP      *rpXML    `xml:"rp"`
}

type nameXML struct {
	Name    string `xml:"name"`
	IDNName string `xml:"idn-name,omitempty"`
}

// Numeric sub-elements stay strings on the wire struct so that a missing
// element is distinguishable from a literal zero when parsing.
type soaXML struct {
	MName   nameXML `xml:"mname"`
	RName   nameXML `xml:"rname"`
	Serial  string  `xml:"serial"`
	Refresh string  `xml:"refresh"`
	Retry   string  `xml:"retry"`
	Expire  string  `xml:"expire"`
	Minimum string  `xml:"minimum"`
}

type mxXML struct {
	Preference string  `xml:"preference"`
	Exchange   nameXML `xml:"exchange"`
}

type txtXML struct {
	Strings []string `xml:"string"`
}

type srvXML struct {
	Priority string  `xml:"priority"`
	Weight   string  `xml:"weight"`
	Port     string  `xml:"port"`
	Target   nameXML `xml:"target"`
}

type hinfoXML struct {
	Hardware string `xml:"hardware"`
	OS       string `xml:"os"`
}

type naptrXML struct {
	Order       string  `xml:"order"`
	Preference  string  `xml:"preference"`
	Flags       string  `xml:"flags"`
	Service     string  `xml:"service"`
	Regexp      string  `xml:"regexp"`
	Replacement nameXML `xml:"replacement"`
}

type rpXML struct {
	Mbox nameXML `xml:"mbox-dname"`
	Txt  nameXML `xml:"txt-dname"`
}

// Marshal serializes a record to its wire form, a single <rr> element.
func Marshal(r Record) ([]byte, error) {
	data, err := xml.Marshal(r.rr())
	if err != nil {
		return nil, fmt.Errorf("record: marshal %s record: %w", r.Type(), err)
	}
	return data, nil
}

func unmarshalRR(data []byte) (*rrXML, error) {
	var el rrXML
	if err := xml.Unmarshal(data, &el); err != nil {
		return nil, fmt.Errorf("record: malformed rr element: %w", err)
	}
	return &el, nil
}

// fillRR copies the header fields into a wire element. The idn-name is
// never emitted: the API derives it from the ASCII name on its side.
func (h *Header) fillRR(el *rrXML) {
	if h.ID != nil {
		el.ID = strconv.Itoa(*h.ID)
	}
	el.Name = h.Name
	if h.TTL != nil {
		el.TTL = strconv.Itoa(*h.TTL)
	}
}

// optsFromRR extracts the optional header fields of a parsed element.
// withTTL is false for the kinds whose schema has no TTL; a stray <ttl>
// on those is ignored rather than rejected, the server owns the element.
func optsFromRR(el *rrXML, withTTL bool) (*Opts, error) {
	opts := &Opts{IDNName: el.IDNName}
	if el.ID != "" {
		id, err := strconv.Atoi(el.ID)
		if err != nil {
			return nil, fmt.Errorf("record: invalid id attribute %q", el.ID)
		}
		opts.ID = &id
	}
	if withTTL && el.TTL != "" {
		ttl, err := strconv.Atoi(el.TTL)
		if err != nil {
			return nil, fmt.Errorf("record: invalid ttl value %q", el.TTL)
		}
		opts.TTL = &ttl
	}
	return opts, nil
}

func nameFromXML(el nameXML) (Name, error) {
	if el.IDNName != "" {
		return Name{Name: el.Name, IDNName: el.IDNName}, nil
	}
	return NewName(el.Name)
}

func atoiField(kind, field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, badNumber(kind, field, value)
	}
	return n, nil
}

func itoa(v int) string { return strconv.Itoa(v) }
