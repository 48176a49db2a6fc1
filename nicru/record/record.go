// Package record implements the typed DNS resource record models of the
// NIC.RU DNS management API and their XML wire codec.
//
// The record-type set is closed: every concrete type embeds Header and
// implements the unexported wire-conversion method, so only this package
// can add new kinds. Records are plain value objects; each API call
// produces fresh instances and nothing here is shared or retained.
package record

import (
	"golang.org/x/net/idna"
)

// Header carries the fields shared by every record kind.
//
// ID and TTL are pointers so that "not set" is distinguishable from an
// explicit value: a nil ID marks a record the server has not assigned yet,
// a nil TTL means "inherit the zone default" and is omitted from the wire
// form entirely.
type Header struct {
	ID      *int
	Name    string
	IDNName string
	TTL     *int
}

// Head returns the shared id/name/ttl fields of a record.
func (h *Header) Head() *Header { return h }

// Opts are the optional fields accepted by every record constructor.
// A nil *Opts is equivalent to the zero value.
type Opts struct {
	ID  *int
	TTL *int
	// IDNName overrides the Unicode form of the name. When empty it is
	// derived by IDNA-decoding the name.
	IDNName string
}

// Record is one DNS resource record of the closed type set understood by
// the API.
type Record interface {
	// Type returns the DNS type tag as it appears on the wire.
	Type() string
	// Head returns the shared id/name/ttl fields.
	Head() *Header

	rr() *rrXML
}

// Name is a bare domain-name reference as it appears inside record
// payloads (SOA mname and rname).
type Name struct {
	Name    string
	IDNName string
}

// NewName builds a name reference. The name must be ASCII; Unicode names
// must be IDNA-encoded first, see ToASCII.
func NewName(name string) (Name, error) {
	if !isASCII(name) {
		return Name{}, &ValidationError{Field: "name", Reason: "must be ASCII, IDNA-encode it first"}
	}
	n := Name{Name: name}
	if name != "" {
		u, err := idna.ToUnicode(name)
		if err != nil {
			return Name{}, &ValidationError{Field: "name", Reason: err.Error()}
		}
		n.IDNName = u
	}
	return n, nil
}

// Int returns a pointer to v, for filling the optional Opts fields.
func Int(v int) *int { return &v }

// ToASCII converts a Unicode domain name to the IDNA ASCII form the API
// expects in record names.
func ToASCII(name string) (string, error) {
	return idna.ToASCII(name)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func newHeader(name string, opts *Opts) (Header, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.ID != nil && *opts.ID <= 0 {
		return Header{}, &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	if opts.TTL != nil && *opts.TTL <= 0 {
		return Header{}, &ValidationError{Field: "ttl", Reason: "must be a positive integer"}
	}
	n, err := NewName(name)
	if err != nil {
		return Header{}, err
	}
	h := Header{ID: opts.ID, Name: n.Name, IDNName: n.IDNName, TTL: opts.TTL}
	if opts.IDNName != "" {
		h.IDNName = opts.IDNName
	}
	return h, nil
}

// noTTL rejects an explicit TTL for the record kinds whose wire schema has
// no TTL field (SOA and NS).
func noTTL(kind string, opts *Opts) error {
	if opts != nil && opts.TTL != nil {
		return &ValidationError{Field: "ttl", Reason: kind + " records do not carry a TTL"}
	}
	return nil
}
