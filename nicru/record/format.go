package record

import (
	"fmt"
	"strconv"
)

// Format renders a record as a zone-file style line for display. The type
// switch is exhaustive over the closed record set.
func Format(r Record) string {
	switch rec := r.(type) {
	case *SOA:
		return fmt.Sprintf("%-30s IN SOA %s %s (\n%50d ; Serial\n%50d ; Refresh\n%50d ; Retry\n%50d ; Expire\n%50d ; Minimum\n%50s",
			rec.Name, rec.MName.Name, rec.RName.Name,
			rec.Serial, rec.Refresh, rec.Retry, rec.Expire, rec.Minimum, ")")
	case *NS:
		return fmt.Sprintf("%-45s %-6s %-6s %s", rec.Name, "", "NS", rec.Host)
	case *A:
		return fmt.Sprintf("%-45s %-6s %-6s %s", rec.Name, ttlString(rec.TTL), "A", rec.Addr)
	case *AAAA:
		return fmt.Sprintf("%-45s %-6s %-6s %s", rec.Name, ttlString(rec.TTL), "AAAA", rec.Addr)
	case *CNAME:
		return fmt.Sprintf("%-45s %-6s %-6s %s", rec.Name, ttlString(rec.TTL), "CNAME", rec.Target)
	case *MX:
		return fmt.Sprintf("%-45s %-6s %-6s %-4d %s", rec.Name, ttlString(rec.TTL), "MX", rec.Preference, rec.Exchange)
	case *TXT:
		return fmt.Sprintf("%-45s %-6s %-6s %q", rec.Name, ttlString(rec.TTL), "TXT", rec.Text())
	case *SRV:
		return fmt.Sprintf("%-45s %-6s %-6s %-6d %-6d %-6d %s",
			rec.Name, ttlString(rec.TTL), "SRV", rec.Priority, rec.Weight, rec.Port, rec.Target)
	case *PTR:
		return fmt.Sprintf("%-45s %-6s %-6s %s", rec.Name, ttlString(rec.TTL), "PTR", rec.Target)
	case *DNAME:
		return fmt.Sprintf("%-45s %-6s %-6s %s", rec.Name, ttlString(rec.TTL), "DNAME", rec.Target)
	case *HINFO:
		return fmt.Sprintf("%-45s %-6s %-6s %q %q", rec.Name, ttlString(rec.TTL), "HINFO", rec.Hardware, rec.OS)
	case *NAPTR:
		return fmt.Sprintf("%-45s %-6s %-6s %-6d %-6d %q %q %q %q",
			rec.Name, ttlString(rec.TTL), "NAPTR", rec.Order, rec.Preference,
			rec.Flags, rec.Service, rec.Regexp, rec.Replacement)
	case *RP:
		return fmt.Sprintf("%-45s %-6s %-6s %s %s", rec.Name, ttlString(rec.TTL), "RP", rec.Mbox, rec.Txt)
	}
	return fmt.Sprintf("%-45s %-6s %s", r.Head().Name, "", r.Type())
}

func ttlString(ttl *int) string {
	if ttl == nil {
		return ""
	}
	return strconv.Itoa(*ttl)
}
