package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aaywp/portal/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrNoToken      = errors.New("no access token in response")
	ErrUnexpected   = errors.New("unexpected response")
)

// FieldError is one complaint from a structured validation rejection.
type FieldError struct {
	Field   string
	Message string
}

// Error describes a failed backend call.
type Error struct {
	Op      string
	Status  int
	Message string
	Fields  []FieldError
	Body    []byte
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	switch {
	case len(e.Fields) > 0:
		b.WriteString(": ")
		b.WriteString(e.FieldSummary())
	case e.Message != "":
		b.WriteString(": ")
		b.WriteString(e.Message)
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the status sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	var errs []error
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch {
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return ErrUnauthorized
	case e.Status == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.Status == http.StatusBadGateway, e.Status == http.StatusServiceUnavailable, e.Status == http.StatusGatewayTimeout:
		return ErrUnavailable
	case e.Status == 0 && e.Err != nil && !isLocal(e.Err):
		return ErrUnavailable
	}
	return nil
}

// isLocal reports errors produced before or after the transport, which
// must not be reported as the server being down.
func isLocal(err error) bool {
	return errors.Is(err, ErrNoToken) || errors.Is(err, ErrUnexpected) || errors.Is(err, errCredential)
}

var errCredential = errors.New("credential store")

func errCredentialf(err error) error {
	return fmt.Errorf("%w: %w", errCredential, err)
}

// FieldSummary joins field complaints as "field: message; field: message".
func (e *Error) FieldSummary() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Display is the text a user should see for this failure.
func (e *Error) Display() string {
	if len(e.Fields) > 0 {
		return e.FieldSummary()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Status != 0 {
		return http.StatusText(e.Status)
	}
	return "request failed"
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

const maxMessageLen = 200

type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
}

type detailItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// newStatusError builds an *Error from a non-2xx response. The message
// preference is: "message", then a string "detail", then "error", then the
// raw body, then the status text.
func newStatusError(op string, status int, body []byte) *Error {
	e := &Error{Op: op, Status: status, Body: body}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		e.Fields = parseDetailList(eb.Detail)

		var detail string
		_ = json.Unmarshal(eb.Detail, &detail)

		switch {
		case eb.Message != "":
			e.Message = eb.Message
		case detail != "":
			e.Message = detail
		case eb.Error != "":
			e.Message = eb.Error
		}
	}

	if e.Message == "" && len(e.Fields) == 0 {
		if raw := strings.TrimSpace(string(body)); raw != "" {
			e.Message = common.Truncate(raw, maxMessageLen)
		} else {
			e.Message = http.StatusText(status)
		}
	}
	return e
}

func parseDetailList(raw json.RawMessage) []FieldError {
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []detailItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]FieldError, 0, len(items))
	for _, it := range items {
		out = append(out, FieldError{Field: fieldFromLoc(it.Loc), Message: it.Msg})
	}
	return out
}

// fieldFromLoc returns the last string element of a location path, so
// ["body","cnic"] yields "cnic".
func fieldFromLoc(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" {
			return s
		}
	}
	return ""
}
