package record

import (
	"errors"
	"strings"
	"testing"
)

// marshalOrFatal serializes a record and fails the test on error.
func marshalOrFatal(t *testing.T, r Record) []byte {
	t.Helper()
	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestRoundTrip_SOA(t *testing.T) {
	mname, _ := NewName("ns.example.com.")
	rname, _ := NewName("admin.example.com.")
	rec, err := NewSOA("", SOAData{
		MName:  mname,
		RName:  rname,
		Serial: 1001, Refresh: 86400, Retry: 7200, Expire: 4000000, Minimum: 14400,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := marshalOrFatal(t, rec)
	if strings.Contains(string(data), "<ttl>") {
		t.Errorf("SOA wire form must not contain <ttl>: %s", data)
	}

	parsed, err := ParseSOA(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Serial != 1001 || parsed.Refresh != 86400 || parsed.Retry != 7200 ||
		parsed.Expire != 4000000 || parsed.Minimum != 14400 {
		t.Errorf("payload mismatch: %+v", parsed)
	}
	if parsed.MName.Name != "ns.example.com." {
		t.Errorf("expected mname 'ns.example.com.', got %q", parsed.MName.Name)
	}
	if parsed.RName.Name != "admin.example.com." {
		t.Errorf("expected rname 'admin.example.com.', got %q", parsed.RName.Name)
	}
}

func TestRoundTrip_NS(t *testing.T) {
	rec, err := NewNS("", "ns.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := marshalOrFatal(t, rec)
	if strings.Contains(string(data), "<ttl>") {
		t.Errorf("NS wire form must not contain <ttl>: %s", data)
	}

	parsed, err := ParseNS(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Host != "ns.example.com." {
		t.Errorf("expected host 'ns.example.com.', got %q", parsed.Host)
	}
}

func TestRoundTrip_A(t *testing.T) {
	rec, err := NewA("test", "203.0.113.5", &Opts{TTL: Int(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseA(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Type() != "A" {
		t.Errorf("expected type 'A', got %q", parsed.Type())
	}
	if parsed.Addr != "203.0.113.5" {
		t.Errorf("expected address '203.0.113.5', got %q", parsed.Addr)
	}
	if parsed.Name != "test" {
		t.Errorf("expected name 'test', got %q", parsed.Name)
	}
	if parsed.TTL == nil || *parsed.TTL != 300 {
		t.Errorf("expected ttl 300, got %v", parsed.TTL)
	}
}

func TestRoundTrip_A_OmitsAbsentFields(t *testing.T) {
	rec, err := NewA("test", "192.0.2.1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := marshalOrFatal(t, rec)
	if strings.Contains(string(data), "<ttl>") {
		t.Errorf("absent ttl must not appear on the wire: %s", data)
	}
	if strings.Contains(string(data), "id=") {
		t.Errorf("absent id must not appear on the wire: %s", data)
	}

	parsed, err := ParseA(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.TTL != nil {
		t.Errorf("expected nil ttl after round trip, got %d", *parsed.TTL)
	}
	if parsed.ID != nil {
		t.Errorf("expected nil id after round trip, got %d", *parsed.ID)
	}
}

func TestRoundTrip_A_KeepsID(t *testing.T) {
	rec, err := NewA("www", "192.0.2.1", &Opts{ID: Int(210074)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseA(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.ID == nil || *parsed.ID != 210074 {
		t.Errorf("expected id 210074, got %v", parsed.ID)
	}
}

func TestRoundTrip_A_IDNAName(t *testing.T) {
	rec, err := NewA("xn--e1aybc", "192.0.2.2", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseA(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Name != "xn--e1aybc" {
		t.Errorf("expected name 'xn--e1aybc', got %q", parsed.Name)
	}
	if parsed.IDNName != "тест" {
		t.Errorf("expected idn-name 'тест', got %q", parsed.IDNName)
	}
}

func TestRoundTrip_AAAA(t *testing.T) {
	rec, err := NewAAAA("v6", "2001:db8::1", &Opts{TTL: Int(3600)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseAAAA(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Addr != "2001:db8::1" {
		t.Errorf("expected address '2001:db8::1', got %q", parsed.Addr)
	}
	if parsed.TTL == nil || *parsed.TTL != 3600 {
		t.Errorf("expected ttl 3600, got %v", parsed.TTL)
	}
}

func TestRoundTrip_CNAME(t *testing.T) {
	rec, err := NewCNAME("alias", "www.example.com.", &Opts{TTL: Int(3600)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseCNAME(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Target != "www.example.com." {
		t.Errorf("expected target 'www.example.com.', got %q", parsed.Target)
	}
	if parsed.TTL == nil || *parsed.TTL != 3600 {
		t.Errorf("expected ttl 3600, got %v", parsed.TTL)
	}
}

func TestRoundTrip_MX(t *testing.T) {
	rec, err := NewMX("", 10, "mail.example.com.", &Opts{TTL: Int(3600)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseMX(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Preference != 10 {
		t.Errorf("expected preference 10, got %d", parsed.Preference)
	}
	if parsed.Exchange != "mail.example.com." {
		t.Errorf("expected exchange 'mail.example.com.', got %q", parsed.Exchange)
	}
}

func TestRoundTrip_TXT_MultiString(t *testing.T) {
	rec, err := NewTXT("spf", []string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseTXT(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed.Strings) != 2 || parsed.Strings[0] != "a" || parsed.Strings[1] != "b" {
		t.Errorf("expected strings [a b] in order, got %v", parsed.Strings)
	}
}

func TestRoundTrip_TXT_Scalar(t *testing.T) {
	rec, err := NewTXT("", []string{"v=spf1 -all"}, &Opts{TTL: Int(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseTXT(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Text() != "v=spf1 -all" {
		t.Errorf("expected text 'v=spf1 -all', got %q", parsed.Text())
	}
	if len(parsed.Strings) != 1 {
		t.Errorf("expected a single string, got %v", parsed.Strings)
	}
}

func TestRoundTrip_SRV(t *testing.T) {
	rec, err := NewSRV("_sip._tcp", 0, 5, 5060, "sip.example.com.", &Opts{TTL: Int(86400)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseSRV(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Priority != 0 || parsed.Weight != 5 || parsed.Port != 5060 {
		t.Errorf("payload mismatch: %+v", parsed)
	}
	if parsed.Target != "sip.example.com." {
		t.Errorf("expected target 'sip.example.com.', got %q", parsed.Target)
	}
}

func TestRoundTrip_PTR(t *testing.T) {
	rec, err := NewPTR("1", "host.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParsePTR(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Target != "host.example.com." {
		t.Errorf("expected target 'host.example.com.', got %q", parsed.Target)
	}
}

func TestRoundTrip_DNAME(t *testing.T) {
	rec, err := NewDNAME("old", "new.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseDNAME(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Target != "new.example.com." {
		t.Errorf("expected target 'new.example.com.', got %q", parsed.Target)
	}
}

func TestRoundTrip_HINFO(t *testing.T) {
	rec, err := NewHINFO("host", "PC", "Linux", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseHINFO(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Hardware != "PC" || parsed.OS != "Linux" {
		t.Errorf("payload mismatch: %+v", parsed)
	}
}

func TestRoundTrip_NAPTR(t *testing.T) {
	rec, err := NewNAPTR("", NAPTRData{
		Order:      100,
		Preference: 10,
		Flags:      "U",
		Service:    "E2U+sip",
		Regexp:     "!^.*$!sip:info@example.com!",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := marshalOrFatal(t, rec)
	if !strings.Contains(string(data), "<replacement>") {
		t.Errorf("empty replacement must still be emitted: %s", data)
	}

	parsed, err := ParseNAPTR(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Order != 100 || parsed.Preference != 10 {
		t.Errorf("payload mismatch: %+v", parsed)
	}
	if parsed.Flags != "U" || parsed.Service != "E2U+sip" {
		t.Errorf("payload mismatch: %+v", parsed)
	}
	if parsed.Regexp != "!^.*$!sip:info@example.com!" {
		t.Errorf("expected regexp to survive the round trip, got %q", parsed.Regexp)
	}
	if parsed.Replacement != "" {
		t.Errorf("expected empty replacement, got %q", parsed.Replacement)
	}
}

func TestRoundTrip_RP(t *testing.T) {
	rec, err := NewRP("", "admin.example.com.", "contact.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ParseRP(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Mbox != "admin.example.com." {
		t.Errorf("expected mbox 'admin.example.com.', got %q", parsed.Mbox)
	}
	if parsed.Txt != "contact.example.com." {
		t.Errorf("expected txt 'contact.example.com.', got %q", parsed.Txt)
	}
}

func TestParse_DispatchesOnTag(t *testing.T) {
	rec, err := NewMX("", 10, "mail.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := Parse(marshalOrFatal(t, rec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	mx, ok := parsed.(*MX)
	if !ok {
		t.Fatalf("expected *MX, got %T", parsed)
	}
	if mx.Exchange != "mail.example.com." {
		t.Errorf("expected exchange 'mail.example.com.', got %q", mx.Exchange)
	}
}

func TestParse_UnknownType(t *testing.T) {
	_, err := Parse([]byte("<rr><name></name><type>CAA</type></rr>"))
	if err == nil {
		t.Fatal("expected error for unknown type, got nil")
	}
	var uerr *UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnknownTypeError, got %T: %v", err, err)
	}
	if uerr.Tag != "CAA" {
		t.Errorf("expected tag 'CAA', got %q", uerr.Tag)
	}
}

func TestParseNS_TypeMismatch(t *testing.T) {
	rec, err := NewMX("", 10, "mail.example.com.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ParseNS(marshalOrFatal(t, rec))
	if err == nil {
		t.Fatal("expected type-mismatch error, got nil")
	}
	var merr *TypeMismatchError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *TypeMismatchError, got %T: %v", err, err)
	}
	if merr.Want != "NS" || merr.Got != "MX" {
		t.Errorf("expected NS/MX, got %s/%s", merr.Want, merr.Got)
	}
}

func TestParseMX_MissingPreference(t *testing.T) {
	_, err := ParseMX([]byte("<rr><name></name><type>MX</type><mx><exchange><name>mail.example.com.</name></exchange></mx></rr>"))
	if err == nil {
		t.Fatal("expected error for missing preference, got nil")
	}
}

func TestParseA_MissingAddress(t *testing.T) {
	_, err := ParseA([]byte("<rr><name>www</name><type>A</type></rr>"))
	if err == nil {
		t.Fatal("expected error for missing address, got nil")
	}
}

func TestParse_ServerElementWithIDNName(t *testing.T) {
	raw := `<rr id="210075"><name>xn--e1aybc</name><idn-name>тест</idn-name><ttl>600</ttl><type>A</type><a>192.0.2.7</a></rr>`
	parsed, err := ParseA([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.ID == nil || *parsed.ID != 210075 {
		t.Errorf("expected id 210075, got %v", parsed.ID)
	}
	if parsed.IDNName != "тест" {
		t.Errorf("expected idn-name 'тест', got %q", parsed.IDNName)
	}
	if parsed.TTL == nil || *parsed.TTL != 600 {
		t.Errorf("expected ttl 600, got %v", parsed.TTL)
	}
}

func TestParseSOA_IgnoresStrayTTL(t *testing.T) {
	raw := `<rr><name></name><ttl>3600</ttl><type>SOA</type><soa><mname><name>ns.example.com.</name></mname><rname><name>admin.example.com.</name></rname><serial>1</serial><refresh>2</refresh><retry>3</retry><expire>4</expire><minimum>5</minimum></soa></rr>`
	parsed, err := ParseSOA([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.TTL != nil {
		t.Errorf("expected SOA ttl to stay nil, got %d", *parsed.TTL)
	}
}
