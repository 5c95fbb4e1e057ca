package sdk

import (
	"context"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
)

// ViewState is the load state of a snapshot list. Empty and Error are
// distinct: an empty result set is a successful load.
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewReady
	ViewEmpty
	ViewError
)

// InvoiceTotals are the derived aggregates over one loaded snapshot.
type InvoiceTotals struct {
	Pending decimal.Decimal
	Paid    decimal.Decimal
	Other   decimal.Decimal
	All     decimal.Decimal
	Count   int
}

// AggregateInvoices sums a snapshot by status bucket. The buckets are
// additive: Pending + Paid + Other always equals All.
func AggregateInvoices(records []InvoiceRecord) InvoiceTotals {
	t := InvoiceTotals{Count: len(records)}
	for _, r := range records {
		switch r.Status {
		case "pending":
			t.Pending = t.Pending.Add(r.Amount)
		case "paid":
			t.Paid = t.Paid.Add(r.Amount)
		default:
			t.Other = t.Other.Add(r.Amount)
		}
		t.All = t.All.Add(r.Amount)
	}
	return t
}

// FormatAmount renders a money value with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// InvoiceList is a snapshot view over the invoices collection. Ordering
// comes from the backend; the list never re-sorts locally.
type InvoiceList struct {
	gateway Gateway
	cache   *QueryCache

	mu      sync.Mutex
	state   ViewState
	records []InvoiceRecord
	totals  InvoiceTotals
	loadErr error
}

func NewInvoiceList(gw Gateway, cache *QueryCache) *InvoiceList {
	return &InvoiceList{gateway: gw, cache: cache, state: ViewLoading}
}

func invoiceQuery() QueryOptions {
	return QueryOptions{OrderBy: "due_date", Desc: true}
}

// Load fetches the snapshot, serving from the query cache when a previous
// load for the same query is still valid.
func (l *InvoiceList) Load(ctx context.Context) error {
	opts := invoiceQuery()

	raw, ok := l.cache.Get("invoices", opts)
	if !ok {
		fetched, err := l.gateway.Query(ctx, "invoices", opts)
		if err != nil {
			l.mu.Lock()
			l.state = ViewError
			l.records = nil
			l.totals = InvoiceTotals{}
			l.loadErr = err
			l.mu.Unlock()
			return err
		}
		l.cache.Put("invoices", opts, fetched)
		raw = fetched
	}

	var records []InvoiceRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		l.mu.Lock()
		l.state = ViewError
		l.records = nil
		l.totals = InvoiceTotals{}
		l.loadErr = err
		l.mu.Unlock()
		return err
	}

	l.mu.Lock()
	l.records = records
	l.totals = AggregateInvoices(records)
	l.loadErr = nil
	if len(records) == 0 {
		l.state = ViewEmpty
	} else {
		l.state = ViewReady
	}
	l.mu.Unlock()
	return nil
}

// Refresh drops the cached snapshot and reloads.
func (l *InvoiceList) Refresh(ctx context.Context) error {
	l.cache.Invalidate("invoices")
	return l.Load(ctx)
}

func (l *InvoiceList) State() ViewState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Records returns the loaded snapshot in backend order.
func (l *InvoiceList) Records() []InvoiceRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]InvoiceRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Totals returns the aggregates for the loaded snapshot. In the error
// state all totals are zero, never stale numbers from a prior load.
func (l *InvoiceList) Totals() InvoiceTotals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals
}

func (l *InvoiceList) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadErr
}
