package sdk

import (
	"context"
	"net/mail"
	"strings"
	"sync"
)

// ContactState is the lifecycle of a contact intake flow. Submitted is
// terminal; a new inquiry requires an explicit Reset.
type ContactState int

const (
	ContactEditing ContactState = iota
	ContactSubmitting
	ContactSubmitted
)

// ContactFields is the visitor's inquiry as entered.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactFlow runs the one-shot contact intake: validate, dispatch the
// notification exactly once, then lock until Reset. A failed dispatch
// returns to Editing with the fields intact.
type ContactFlow struct {
	gateway Gateway

	mu     sync.Mutex
	state  ContactState
	fields ContactFields
}

func NewContactFlow(gw Gateway) *ContactFlow {
	return &ContactFlow{gateway: gw}
}

func (f *ContactFlow) SetFields(fields ContactFields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != ContactEditing {
		return
	}
	f.fields = fields
}

func (f *ContactFlow) Fields() ContactFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactFlow) State() ContactState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func validateContact(fields ContactFields) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(fields.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	email := strings.TrimSpace(fields.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email is not valid"})
	}
	if strings.TrimSpace(fields.Message) == "" {
		errs = append(errs, FieldError{Field: "message", Message: "message is required"})
	}
	return errs
}

// Submit validates and dispatches the inquiry. Exactly one dispatch per
// successful flow; concurrent submits and submits after success are
// rejected without touching the gateway.
func (f *ContactFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case ContactSubmitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case ContactSubmitted:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	fields := f.fields
	if errs := validateContact(fields); len(errs) > 0 {
		f.mu.Unlock()
		return &ValidationError{Fields: errs}
	}
	f.state = ContactSubmitting
	f.mu.Unlock()

	err := f.gateway.InvokeFunction(ctx, "send-contact-email", fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = ContactEditing
		return err
	}
	f.state = ContactSubmitted
	f.fields = ContactFields{}
	return nil
}

// Reset returns a submitted flow to a blank editing state.
func (f *ContactFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = ContactEditing
	f.fields = ContactFields{}
}
