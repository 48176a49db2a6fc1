package nicru

import (
	"encoding/xml"
	"fmt"
)

// Bool is a boolean XML attribute restricted to the "true"/"false" token
// pair the API uses; any other token is a deserialization error.
type Bool bool

func (b *Bool) UnmarshalXMLAttr(attr xml.Attr) error {
	switch attr.Value {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return fmt.Errorf("nicru: attribute %s has non-boolean value %q", attr.Name.Local, attr.Value)
	}
	return nil
}

// Service is a read-only snapshot of a DNS service entry of the account.
// RRLimit and RRNum are nil when the service reports no record quota.
type Service struct {
	Admin        string `xml:"admin,attr"`
	DomainsLimit int    `xml:"domains-limit,attr"`
	DomainsNum   int    `xml:"domains-num,attr"`
	Enable       Bool   `xml:"enable,attr"`
	HasPrimary   Bool   `xml:"has-primary,attr"`
	Name         string `xml:"name,attr"`
	Payer        string `xml:"payer,attr"`
	Tariff       string `xml:"tariff,attr"`
	RRLimit      *int   `xml:"rr-limit,attr"`
	RRNum        *int   `xml:"rr-num,attr"`
}

// Zone is a read-only snapshot of a zone's state. HasChanges reports an
// uncommitted changeset awaiting Commit or Rollback.
type Zone struct {
	Admin      string `xml:"admin,attr"`
	Enable     Bool   `xml:"enable,attr"`
	HasChanges Bool   `xml:"has-changes,attr"`
	HasPrimary Bool   `xml:"has-primary,attr"`
	ID         int    `xml:"id,attr"`
	IDNName    string `xml:"idn-name,attr"`
	Name       string `xml:"name,attr"`
	Payer      string `xml:"payer,attr"`
	Service    string `xml:"service,attr"`
}

func parseServices(body []byte) ([]Service, error) {
	var resp struct {
		XMLName xml.Name `xml:"response"`
		Data    []struct {
			Services []Service `xml:"service"`
		} `xml:"data"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("nicru: malformed services response: %w", err)
	}
	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("nicru: expected exactly one <data> in response, got %d", len(resp.Data))
	}
	return resp.Data[0].Services, nil
}

func parseZones(body []byte) ([]Zone, error) {
	var resp struct {
		XMLName xml.Name `xml:"response"`
		Data    []struct {
			Zones []Zone `xml:"zone"`
		} `xml:"data"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("nicru: malformed zones response: %w", err)
	}
	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("nicru: expected exactly one <data> in response, got %d", len(resp.Data))
	}
	return resp.Data[0].Zones, nil
}
