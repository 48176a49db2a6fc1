package nicru

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for the API error codes the service embeds in failure
// responses. Match them with errors.Is; the full *APIError carries the
// server's message verbatim.
var (
	ErrTokenExpired    = errors.New("nicru: token expired")
	ErrInvalidRecord   = errors.New("nicru: invalid record data")
	ErrServiceNotFound = errors.New("nicru: service not found")
	ErrZoneNotFound    = errors.New("nicru: zone not found")
)

// APIError is a failure reported by the DNS API. Code is the embedded
// error code, 0 when the body carried none; Message preserves the server
// text, or the raw body when no error envelope could be parsed.
type APIError struct {
	Status  int
	Code    int
	Message string

	err error
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("nicru: API error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("nicru: request failed with status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

type errorEnvelope struct {
	XMLName xml.Name `xml:"response"`
	Errors  []struct {
		Code    string `xml:"code,attr"`
		Message string `xml:",chardata"`
	} `xml:"errors>error"`
}

// apiError maps a non-success response body to a typed error.
func apiError(status int, body []byte) error {
	e := &APIError{Status: status, Message: string(body)}

	var env errorEnvelope
	if err := xml.Unmarshal(body, &env); err != nil || len(env.Errors) != 1 {
		return e
	}
	code, err := strconv.Atoi(env.Errors[0].Code)
	if err != nil {
		return e
	}

	e.Code = code
	e.Message = env.Errors[0].Message
	switch code {
	case 4097:
		e.err = ErrTokenExpired
	case 4327:
		e.err = ErrInvalidRecord
	case 4009:
		e.err = ErrServiceNotFound
	case 4028:
		e.err = ErrZoneNotFound
	}
	return e
}
