package sdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCache(t *testing.T) {
	cache := NewQueryCache()
	all := QueryOptions{}
	ordered := QueryOptions{OrderBy: "due_date", Desc: true}

	_, ok := cache.Get("invoices", all)
	assert.False(t, ok)

	cache.Put("invoices", all, json.RawMessage(`[1]`))
	cache.Put("invoices", ordered, json.RawMessage(`[2]`))
	cache.Put("projects", all, json.RawMessage(`[3]`))

	raw, ok := cache.Get("invoices", ordered)
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`[2]`), raw)

	// Different queries over the same collection are distinct entries.
	raw, ok = cache.Get("invoices", all)
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`[1]`), raw)

	cache.Invalidate("invoices")

	_, ok = cache.Get("invoices", all)
	assert.False(t, ok)
	_, ok = cache.Get("invoices", ordered)
	assert.False(t, ok)

	// Other collections are untouched.
	raw, ok = cache.Get("projects", all)
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`[3]`), raw)
}

func TestQueryCache_FilterKeyOrderIsStable(t *testing.T) {
	cache := NewQueryCache()
	a := QueryOptions{Filter: map[string]string{"status": "pending", "client_id": "c-1"}}
	b := QueryOptions{Filter: map[string]string{"client_id": "c-1", "status": "pending"}}

	cache.Put("invoices", a, json.RawMessage(`[1]`))

	raw, ok := cache.Get("invoices", b)
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`[1]`), raw)
}
