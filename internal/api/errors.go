package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failure the way callers need to react to it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindConflict
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)

var sentinels = map[Kind]error{
	KindValidation:   ErrValidation,
	KindNotFound:     ErrNotFound,
	KindUnauthorized: ErrUnauthorized,
	KindConflict:     ErrConflict,
	KindServer:       ErrServer,
}

// Error is returned by every call that goes through Client.
// Payload holds the server's error body exactly as received.
type Error struct {
	Kind    Kind
	Status  int
	Op      string
	Message string
	Payload json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match on kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// Invalid builds a validation error raised before any request is sent.
func Invalid(op, msg string) error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

// Unauthorized builds a local authorization failure.
func Unauthorized(op, msg string) error {
	return &Error{Kind: KindUnauthorized, Op: op, Message: msg}
}

// KindOf reports the taxonomy bucket of err. Errors that did not come
// from this package are treated as server errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServer
}

// KindFromStatus maps an HTTP status code to a Kind.
func KindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindServer
	case status >= 400:
		return KindValidation
	default:
		return KindUnknown
	}
}

// FromStatus turns a non-2xx response into an *Error, keeping body verbatim.
func FromStatus(op string, status int, body []byte) *Error {
	e := &Error{
		Kind:   KindFromStatus(status),
		Status: status,
		Op:     op,
	}
	if len(body) > 0 {
		e.Payload = append(json.RawMessage(nil), body...)
		e.Message = payloadMessage(body)
	}
	return e
}

// Message extracts something a person can read from err, or returns fallback.
func Message(err error, fallback string) string {
	var e *Error
	if !errors.As(err, &e) {
		return fallback
	}
	if m := payloadMessage(e.Payload); m != "" {
		return m
	}
	local := e.Status == 0 && (e.Kind == KindValidation || e.Kind == KindUnauthorized)
	if local && e.Message != "" {
		return e.Message
	}
	return fallback
}

func payloadMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if !json.Valid(body) {
		// Plain-text bodies are still worth showing if they are short.
		s := strings.TrimSpace(string(body))
		if s != "" && len(s) <= 200 && !strings.HasPrefix(s, "<") {
			return s
		}
		return ""
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		var v string
		if err := json.Unmarshal(fields[key], &v); err == nil && v != "" {
			return v
		}
	}
	return ""
}
