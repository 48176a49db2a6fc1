package record

import (
	"errors"
	"testing"
)

func TestBuildRequest(t *testing.T) {
	a, err := NewA("test", "203.0.113.5", &Opts{TTL: Int(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := BuildRequest([]Record{a})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8" ?>` +
		`<request><rr-list>` +
		`<rr><name>test</name><ttl>300</ttl><type>A</type><a>203.0.113.5</a></rr>` +
		`</rr-list></request>`
	if string(body) != want {
		t.Errorf("request body mismatch:\n got: %s\nwant: %s", body, want)
	}
}

func TestBuildRequest_Empty(t *testing.T) {
	body, err := BuildRequest(nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8" ?><request><rr-list></rr-list></request>`
	if string(body) != want {
		t.Errorf("request body mismatch:\n got: %s\nwant: %s", body, want)
	}
}

func TestParseZone(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <status>success</status>
  <data>
    <zone admin="123/NIC-REG" has-changes="false" id="228095" idn-name="example.com" name="example.com" payer="123/NIC-REG" service="myservice">
      <rr id="210074"><name>www</name><ttl>600</ttl><type>A</type><a>192.0.2.1</a></rr>
      <rr id="210075"><name>@</name><type>MX</type><mx><preference>10</preference><exchange><name>mail.example.com.</name></exchange></mx></rr>
    </zone>
  </data>
</response>`

	records, err := ParseZone([]byte(body), "example.com")
	if err != nil {
		t.Fatalf("parse zone: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	a, ok := records[0].(*A)
	if !ok {
		t.Fatalf("expected first record to be *A, got %T", records[0])
	}
	if a.Addr != "192.0.2.1" || a.Head().Name != "www" {
		t.Errorf("unexpected A record: %+v", a)
	}
	if a.Head().ID == nil || *a.Head().ID != 210074 {
		t.Errorf("expected id 210074, got %v", a.Head().ID)
	}

	mx, ok := records[1].(*MX)
	if !ok {
		t.Fatalf("expected second record to be *MX, got %T", records[1])
	}
	if mx.Preference != 10 || mx.Exchange != "mail.example.com." {
		t.Errorf("unexpected MX record: %+v", mx)
	}
}

func TestParseZone_NoData(t *testing.T) {
	body := `<response><status>success</status></response>`
	_, err := ParseZone([]byte(body), "example.com")
	if err == nil {
		t.Fatal("expected error for missing <data>, got nil")
	}
}

func TestParseZone_TwoData(t *testing.T) {
	body := `<response><data><zone name="example.com"></zone></data><data><zone name="example.com"></zone></data></response>`
	_, err := ParseZone([]byte(body), "example.com")
	if err == nil {
		t.Fatal("expected error for two <data> elements, got nil")
	}
}

func TestParseZone_TwoZones(t *testing.T) {
	body := `<response><data><zone name="a.com"></zone><zone name="b.com"></zone></data></response>`
	_, err := ParseZone([]byte(body), "a.com")
	if err == nil {
		t.Fatal("expected error for two <zone> elements, got nil")
	}
}

func TestParseZone_WrongZone(t *testing.T) {
	body := `<response><data><zone name="other.com"></zone></data></response>`
	_, err := ParseZone([]byte(body), "example.com")
	if err == nil {
		t.Fatal("expected zone mismatch error, got nil")
	}
	var zerr *ZoneMismatchError
	if !errors.As(err, &zerr) {
		t.Fatalf("expected *ZoneMismatchError, got %T: %v", err, err)
	}
	if zerr.Requested != "example.com" || zerr.Got != "other.com" {
		t.Errorf("unexpected mismatch fields: %+v", zerr)
	}
}

func TestParseZone_UnknownRecordType(t *testing.T) {
	body := `<response><data><zone name="example.com"><rr><name>x</name><type>CAA</type></rr></zone></data></response>`
	_, err := ParseZone([]byte(body), "example.com")
	if err == nil {
		t.Fatal("expected error for unknown record type, got nil")
	}
	var uerr *UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnknownTypeError, got %T: %v", err, err)
	}
}

func TestParseZone_Empty(t *testing.T) {
	body := `<response><data><zone name="example.com"></zone></data></response>`
	records, err := ParseZone([]byte(body), "example.com")
	if err != nil {
		t.Fatalf("parse zone: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
