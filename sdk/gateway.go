package sdk

import (
	"context"
	"encoding/json"
)

// QueryOptions narrows and orders a collection fetch. Ordering is applied by
// the backend; results are never re-sorted client-side.
type QueryOptions struct {
	Filter  map[string]string
	OrderBy string
	Desc    bool
}

// Gateway is the persistence/auth/notification backend as seen by the
// workflows. Implementations: HTTPGateway for the real API, mocks in tests.
type Gateway interface {
	// Query reads a collection, optionally joined with related reference
	// data (e.g. invoices with client display fields).
	Query(ctx context.Context, collection string, opts QueryOptions) (json.RawMessage, error)
	// Insert creates a record and returns the full saved record, including
	// the server-assigned id.
	Insert(ctx context.Context, collection string, record interface{}) (json.RawMessage, error)
	// Update applies a partial record scoped by id and returns the full
	// saved record.
	Update(ctx context.Context, collection, id string, partial interface{}) (json.RawMessage, error)
	// InvokeFunction calls a named server-side function.
	InvokeFunction(ctx context.Context, name string, payload interface{}) error
	// CurrentUser resolves the acting user's id; required before any
	// authenticated write.
	CurrentUser(ctx context.Context) (string, error)
}
