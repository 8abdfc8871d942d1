// Package lunarcrush is a read-only client for the LunarCrush public
// API (v4). Responses arrive as {"data": [...]} envelopes; list calls
// decode the envelope into model types and treat a missing or null
// data field as an empty list.
package lunarcrush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ddefia/defiav1/internal/model"
)

// maxBodySnippet caps how much of an error response body is kept for
// diagnostics.
const maxBodySnippet = 200

// Client talks to the LunarCrush public API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a LunarCrush client. baseURL defaults to the
// public v4 endpoint when empty; timeout defaults to 15s when
// non-positive.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://lunarcrush.com/api4/public"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// StatusError reports a non-2xx API response. Body holds at most the
// first 200 bytes of the response for diagnostics.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lunarcrush: %s status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("lunarcrush: %s status %d: %s", e.Path, e.Status, e.Body)
}

// TopicsList fetches the trending topics board in feed order.
// API: GET /topics/list/v1
func (c *Client) TopicsList(ctx context.Context) ([]model.Topic, error) {
	return fetchList[model.Topic](ctx, c, "/topics/list/v1")
}

// CategoriesList fetches the category boards in feed order.
// API: GET /categories/list/v1
func (c *Client) CategoriesList(ctx context.Context) ([]model.Category, error) {
	return fetchList[model.Category](ctx, c, "/categories/list/v1")
}

// CoinsList fetches tracked coins with market-attention metrics.
// API: GET /coins/list/v2
func (c *Client) CoinsList(ctx context.Context) ([]model.Coin, error) {
	return fetchList[model.Coin](ctx, c, "/coins/list/v2")
}

// TopicNews fetches recent news posts for a topic.
// API: GET /topic/{topic}/news/v1
func (c *Client) TopicNews(ctx context.Context, topic string) ([]model.Post, error) {
	return fetchList[model.Post](ctx, c, "/topic/"+url.PathEscape(topic)+"/news/v1")
}

// CategoryNews fetches recent news posts for a category.
// API: GET /category/{category}/news/v1
func (c *Client) CategoryNews(ctx context.Context, category string) ([]model.Post, error) {
	return fetchList[model.Post](ctx, c, "/category/"+url.PathEscape(category)+"/news/v1")
}

// CreatorPosts fetches recent posts by a single creator on a network
// (e.g. "twitter").
// API: GET /creator/{network}/{id}/posts/v1
func (c *Client) CreatorPosts(ctx context.Context, network, id string) ([]model.Post, error) {
	path := "/creator/" + url.PathEscape(network) + "/" + url.PathEscape(id) + "/posts/v1"
	return fetchList[model.Post](ctx, c, path)
}

// TopicWhatsup fetches the AI "what's up" summary for a topic. The
// endpoint is not part of the stable API surface, so the response is
// decoded leniently; an empty string means no summary was available.
// API: GET /topic/{topic}/whatsup/v1
func (c *Client) TopicWhatsup(ctx context.Context, topic string) (string, error) {
	path := "/topic/" + url.PathEscape(topic) + "/whatsup/v1"
	b, status, err := c.do(ctx, path)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &StatusError{Path: path, Status: status, Body: snippet(b)}
	}
	return whatsupText(b), nil
}

// ProbeResult captures one diagnostic request against the API.
type ProbeResult struct {
	Status int
	Items  int
	First  map[string]any
	Body   string
}

// Probe issues a GET against path and reports what came back without
// treating API-level failures as errors; a non-2xx status lands in
// the result with a body snippet. Transport failures are returned as
// errors, and a decode failure on a 2xx response returns the partial
// result alongside the error.
func (c *Client) Probe(ctx context.Context, path string) (ProbeResult, error) {
	b, status, err := c.do(ctx, path)
	if err != nil {
		return ProbeResult{}, err
	}
	res := ProbeResult{Status: status, Body: snippet(b)}
	if status < 200 || status >= 300 {
		return res, nil
	}
	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return res, fmt.Errorf("lunarcrush: decode %s: %w", path, err)
	}
	res.Items = len(env.Data)
	if len(env.Data) > 0 {
		res.First = env.Data[0]
	}
	return res, nil
}

// EndpointURL returns the absolute URL the client would call for path.
func (c *Client) EndpointURL(path string) string {
	return c.baseURL + path
}

func (c *Client) do(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	slog.Debug("lunarcrush: request", "path", path)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return b, resp.StatusCode, nil
}

func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	b, status, err := c.do(ctx, path)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &StatusError{Path: path, Status: status, Body: snippet(b)}
	}
	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("lunarcrush: decode %s: %w", path, err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return env.Data, nil
}

// whatsupText extracts a human-readable summary from a whatsup
// response body. It prefers a string "summary" field, then a string
// "data" field, then compacted JSON of whichever is present.
func whatsupText(b []byte) string {
	var env struct {
		Summary json.RawMessage `json:"summary"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return ""
	}
	for _, raw := range []json.RawMessage{env.Summary, env.Data} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
	}
	return ""
}

func snippet(b []byte) string {
	if len(b) > maxBodySnippet {
		b = b[:maxBodySnippet]
	}
	return strings.TrimSpace(string(b))
}
