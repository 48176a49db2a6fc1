package record

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// requestHeader is the exact XML declaration the API expects on record
// submissions.
const requestHeader = `<?xml version="1.0" encoding="UTF-8" ?>`

// BuildRequest wraps the records in the request envelope used for
// add-record submissions, in the given order.
func BuildRequest(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(requestHeader)
	buf.WriteString("<request><rr-list>")
	for _, r := range records {
		data, err := Marshal(r)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteString("</rr-list></request>")
	return buf.Bytes(), nil
}

type zoneDataXML struct {
	XMLName xml.Name `xml:"response"`
	Data    []struct {
		Zone []struct {
			Name string  `xml:"name,attr"`
			RRs  []rrXML `xml:"rr"`
		} `xml:"zone"`
	} `xml:"data"`
}

// ParseZone reads a zone-records response body, checks that the response
// is for the requested zone, and returns the contained records in
// document order.
//
// The zone-name check is deliberate: a mismatch means either the caller
// asked for the wrong zone or the backend answered for one, and neither
// may pass silently.
func ParseZone(body []byte, zone string) ([]Record, error) {
	var resp zoneDataXML
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("record: malformed response: %w", err)
	}
	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("record: expected exactly one <data> in response, got %d", len(resp.Data))
	}
	data := resp.Data[0]
	if len(data.Zone) != 1 {
		return nil, fmt.Errorf("record: expected exactly one <zone> in response, got %d", len(data.Zone))
	}
	z := data.Zone[0]
	if z.Name != zone {
		return nil, &ZoneMismatchError{Requested: zone, Got: z.Name}
	}
	records := make([]Record, 0, len(z.RRs))
	for i := range z.RRs {
		r, err := parseRR(&z.RRs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
