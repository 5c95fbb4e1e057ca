package sdk

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var projectStatuses = map[string]bool{
	"Planning":    true,
	"In Progress": true,
	"Completed":   true,
	"On Hold":     true,
}

var invoiceStatuses = map[string]bool{
	"pending": true,
	"paid":    true,
	"overdue": true,
}

// canonicalDate normalizes user input to YYYY-MM-DD, defaulting empty
// input to today.
func canonicalDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(dateLayout), true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", false
	}
	return t.Format(dateLayout), true
}

// nullableRef turns an empty selection into an absent reference rather
// than an empty-string foreign key.
func nullableRef(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// ProjectDraft holds the editable fields of a project form. ID is empty
// for a new record.
type ProjectDraft struct {
	ID        string
	Name      string
	Status    string
	StartDate string
	ClientID  string
	URL       string
	Industry  string
}

// Validate canonicalizes the draft into an insert/update payload. Field
// errors are returned together so the caller can surface all of them.
func (d ProjectDraft) Validate(now time.Time) (map[string]interface{}, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}

	status := d.Status
	if status == "" {
		status = "Planning"
	}
	if !projectStatuses[status] {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}

	startDate, ok := canonicalDate(d.StartDate, now)
	if !ok {
		errs = append(errs, FieldError{Field: "start_date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	payload := map[string]interface{}{
		"name":       name,
		"status":     status,
		"start_date": startDate,
		"client_id":  nullableRef(d.ClientID),
	}
	if url := strings.TrimSpace(d.URL); url != "" {
		payload["url"] = url
	}
	if industry := strings.TrimSpace(d.Industry); industry != "" {
		payload["industry"] = industry
	}
	return payload, nil
}

// InvoiceDraft holds the editable fields of an invoice form.
type InvoiceDraft struct {
	ID       string
	ClientID string
	Amount   string
	Status   string
	DueDate  string
}

func (d InvoiceDraft) Validate(now time.Time) (map[string]interface{}, []FieldError) {
	var errs []FieldError

	if strings.TrimSpace(d.ClientID) == "" {
		errs = append(errs, FieldError{Field: "client_id", Message: "client is required"})
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(d.Amount))
	if err != nil {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be a number"})
	} else if amount.IsNegative() {
		errs = append(errs, FieldError{Field: "amount", Message: "amount cannot be negative"})
	}

	status := d.Status
	if status == "" {
		status = "pending"
	}
	if !invoiceStatuses[status] {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}

	dueDate, ok := canonicalDate(d.DueDate, now)
	if !ok {
		errs = append(errs, FieldError{Field: "due_date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return map[string]interface{}{
		"client_id": strings.TrimSpace(d.ClientID),
		"amount":    amount,
		"status":    status,
		"due_date":  dueDate,
	}, nil
}

// form carries the submit machinery shared by the entity forms: the
// auth check, the single in-flight guard, and cache invalidation.
type form struct {
	gateway Gateway
	cache   *QueryCache

	mu       sync.Mutex
	inFlight bool
}

func (f *form) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return ErrSubmitInFlight
	}
	f.inFlight = true
	return nil
}

func (f *form) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}

func (f *form) submit(ctx context.Context, collection, id string, payload map[string]interface{}) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	if _, err := f.gateway.CurrentUser(ctx); err != nil {
		return ErrAuth
	}

	var err error
	if id == "" {
		_, err = f.gateway.Insert(ctx, collection, payload)
	} else {
		_, err = f.gateway.Update(ctx, collection, id, payload)
	}
	if err != nil {
		return err
	}

	if f.cache != nil {
		f.cache.Invalidate(collection)
	}
	return nil
}

// ProjectForm submits project drafts. Draft state survives a failed
// submit so the user never loses input.
type ProjectForm struct {
	form
	Draft     ProjectDraft
	OnSuccess func()
}

func NewProjectForm(gw Gateway, cache *QueryCache) *ProjectForm {
	return &ProjectForm{form: form{gateway: gw, cache: cache}}
}

func (p *ProjectForm) Submit(ctx context.Context) error {
	payload, fieldErrs := p.Draft.Validate(time.Now())
	if len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}
	if err := p.submit(ctx, "projects", p.Draft.ID, payload); err != nil {
		return err
	}
	p.Draft = ProjectDraft{}
	if p.OnSuccess != nil {
		p.OnSuccess()
	}
	return nil
}

// InvoiceForm submits invoice drafts.
type InvoiceForm struct {
	form
	Draft     InvoiceDraft
	OnSuccess func()
}

func NewInvoiceForm(gw Gateway, cache *QueryCache) *InvoiceForm {
	return &InvoiceForm{form: form{gateway: gw, cache: cache}}
}

func (i *InvoiceForm) Submit(ctx context.Context) error {
	payload, fieldErrs := i.Draft.Validate(time.Now())
	if len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}
	if err := i.submit(ctx, "invoices", i.Draft.ID, payload); err != nil {
		return err
	}
	i.Draft = InvoiceDraft{}
	if i.OnSuccess != nil {
		i.OnSuccess()
	}
	return nil
}
