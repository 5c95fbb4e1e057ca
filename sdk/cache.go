package sdk

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// QueryCache keeps query results keyed by collection plus the serialized
// query. Mutations never patch entries in place; callers invalidate the
// touched collection and the next read refetches.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]json.RawMessage
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]json.RawMessage)}
}

func cacheKey(collection string, opts QueryOptions) string {
	var sb strings.Builder
	sb.WriteString(collection)
	sb.WriteByte('?')
	if opts.OrderBy != "" {
		sb.WriteString("order_by=")
		sb.WriteString(opts.OrderBy)
		if opts.Desc {
			sb.WriteString("&desc")
		}
	}
	keys := make([]string, 0, len(opts.Filter))
	for k := range opts.Filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteByte('&')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(opts.Filter[k])
	}
	return sb.String()
}

func (c *QueryCache) Get(collection string, opts QueryOptions) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[cacheKey(collection, opts)]
	return raw, ok
}

func (c *QueryCache) Put(collection string, opts QueryOptions, raw json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(collection, opts)] = raw
}

// Invalidate drops every cached query for the collection.
func (c *QueryCache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := collection + "?"
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
