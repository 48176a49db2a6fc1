package record

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed constructor input. It is raised before
// anything reaches the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record: invalid %s: %s", e.Field, e.Reason)
}

// TypeMismatchError reports a record element whose type tag differs from
// the type the caller asked to parse.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("record: element is a %s record, not %s", e.Got, e.Want)
}

// UnknownTypeError reports a type tag that no model in this package
// handles, so callers can tell coverage gaps from malformed responses.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	known := make([]string, 0, len(parsers))
	for tag := range parsers {
		known = append(known, tag)
	}
	sort.Strings(known)
	return fmt.Sprintf("record: unknown record type %q (known: %s)", e.Tag, strings.Join(known, ", "))
}

// ZoneMismatchError reports a response whose zone name differs from the
// zone the caller requested. It indicates either a caller error or a
// backend inconsistency and is never accepted silently.
type ZoneMismatchError struct {
	Requested string
	Got       string
}

func (e *ZoneMismatchError) Error() string {
	return fmt.Sprintf("record: response is for zone %q, requested %q", e.Got, e.Requested)
}

func missingElement(kind, path string) error {
	return fmt.Errorf("record: %s element is missing <%s>", kind, path)
}

func badNumber(kind, field, value string) error {
	return fmt.Errorf("record: %s element has non-numeric <%s> value %q", kind, field, value)
}
