// Package sdk is the Go client for the studio API. Besides the transport it
// carries the dashboard's edit workflows: typed form drafts with validation,
// the debounced notes autosaver, snapshot list views with derived aggregates,
// and the contact intake flow. All of them run against the Gateway interface
// so they can be driven without a live server.
package sdk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuth means no user identity could be resolved before a write.
var ErrAuth = errors.New("no authenticated user")

// ErrSubmitInFlight rejects a second submit while one is pending.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// ErrAlreadySubmitted rejects submits on a flow in its terminal state.
var ErrAlreadySubmitted = errors.New("already submitted, reset first")

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationError carries every field problem found before dispatch. Nothing
// is sent to the gateway when validation fails.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// GatewayError wraps a backend failure. The message is passed through opaque
// so the UI can show it verbatim.
type GatewayError struct {
	Op         string
	Collection string
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway %s %s: %s", e.Op, e.Collection, e.Message)
	}
	return fmt.Sprintf("gateway %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ErrNotFound means an update targeted a stale or deleted id.
var ErrNotFound = errors.New("record not found")
