package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// functionRoutes maps invokable function names to API endpoints.
var functionRoutes = map[string]string{
	"send-contact-email": "/api/v1/contact",
}

// HTTPGateway talks to the studio API. Collections map onto /api/v1/<name>.
type HTTPGateway struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewHTTPGateway(baseURL, token string) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// envelope mirrors the server's response shape.
type envelope struct {
	Code  int             `json:"code"`
	Data  json.RawMessage `json:"data"`
	Msg   string          `json:"msg"`
	Error string          `json:"error"`
}

func (g *HTTPGateway) Query(ctx context.Context, collection string, opts QueryOptions) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s", g.BaseURL, collection)

	params := url.Values{}
	for k, v := range opts.Filter {
		params.Set(k, v)
	}
	if opts.OrderBy != "" {
		params.Set("order_by", opts.OrderBy)
		if opts.Desc {
			params.Set("desc", "true")
		}
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	return g.do(ctx, http.MethodGet, endpoint, nil, "query", collection)
}

func (g *HTTPGateway) Insert(ctx context.Context, collection string, record interface{}) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s", g.BaseURL, collection)
	return g.do(ctx, http.MethodPost, endpoint, record, "insert", collection)
}

func (g *HTTPGateway) Update(ctx context.Context, collection, id string, partial interface{}) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s/%s", g.BaseURL, collection, id)
	return g.do(ctx, http.MethodPut, endpoint, partial, "update", collection)
}

// UpdateProjectNotes hits the dedicated notes path so an autosave commit
// never races the primary form over other columns.
func (g *HTTPGateway) UpdateProjectNotes(ctx context.Context, projectID, notes string) error {
	endpoint := fmt.Sprintf("%s/api/v1/projects/%s/notes", g.BaseURL, projectID)
	_, err := g.do(ctx, http.MethodPut, endpoint, map[string]string{"notes": notes}, "update", "projects")
	return err
}

func (g *HTTPGateway) InvokeFunction(ctx context.Context, name string, payload interface{}) error {
	route, ok := functionRoutes[name]
	if !ok {
		return &GatewayError{Op: "invoke", Collection: name, Message: "unknown function"}
	}
	_, err := g.do(ctx, http.MethodPost, g.BaseURL+route, payload, "invoke", name)
	return err
}

func (g *HTTPGateway) CurrentUser(ctx context.Context) (string, error) {
	raw, err := g.do(ctx, http.MethodGet, g.BaseURL+"/api/v1/me", nil, "query", "me")
	if err != nil {
		return "", err
	}
	var me struct {
		UserID string `json:"user_id"`
	}
	if err := sonic.Unmarshal(raw, &me); err != nil {
		return "", fmt.Errorf("decode current user: %w", err)
	}
	if me.UserID == "" {
		return "", ErrAuth
	}
	return me.UserID, nil
}

func (g *HTTPGateway) do(ctx context.Context, method, endpoint string, body interface{}, op, collection string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Op: op, Collection: collection, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Op: op, Collection: collection, Err: err}
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, &GatewayError{Op: op, Collection: collection, Err: fmt.Errorf("decode response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrAuth
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 400:
		return nil, &GatewayError{Op: op, Collection: collection, Message: env.Msg}
	}

	return env.Data, nil
}
