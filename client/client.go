// Package client is a small typed client for the item endpoints of the Guild
// Wars 2 API. Responses are decoded through a gw2.Catalog.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/reoring/polyjson/gw2"
)

const (
	itemsPath    = "/v2/items"
	maxPageSize  = 200
	maxErrorBody = 64 << 10
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	URL        string
	// Text is the "text" field of the error body, or the raw body.
	Text string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gw2 api: %s: %d %s", e.URL, e.StatusCode, e.Text)
}

// Client fetches items. It is safe for concurrent use.
type Client struct {
	cfg     Config
	base    *url.URL
	http    *http.Client
	catalog *gw2.Catalog
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.logger = l } }

// New returns a client for cfg. A nil catalog builds the default one.
func New(cfg Config, catalog *gw2.Catalog, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		cfg.PageSize = maxPageSize
	}
	if catalog == nil {
		if catalog, err = gw2.NewCatalog(); err != nil {
			return nil, err
		}
	}
	c := &Client{
		cfg:     cfg,
		base:    base,
		http:    &http.Client{Timeout: cfg.Timeout},
		catalog: catalog,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Catalog returns the catalogue used for decoding.
func (c *Client) Catalog() *gw2.Catalog { return c.catalog }

// ItemIDs lists every item id.
func (c *Client) ItemIDs(ctx context.Context) ([]int, error) {
	body, err := c.get(ctx, itemsPath, nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	var ids []int
	if err := gojson.NewDecoder(body).Decode(&ids); err != nil {
		return nil, errors.Wrap(err, "decode item ids")
	}
	return ids, nil
}

// Item fetches one item.
func (c *Client) Item(ctx context.Context, id int) (gw2.Item, error) {
	body, err := c.get(ctx, itemsPath+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "read item %d", id)
	}
	it, err := c.catalog.DecodeItem(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode item %d", id)
	}
	return it, nil
}

// Items fetches the given ids, splitting them into pages. Ids the API does
// not know are skipped, as the API does for partial results. Each page is
// decoded while it streams in.
func (c *Client) Items(ctx context.Context, ids ...int) ([]gw2.Item, error) {
	out := make([]gw2.Item, 0, len(ids))
	for start := 0; start < len(ids); start += c.cfg.PageSize {
		end := min(start+c.cfg.PageSize, len(ids))
		parts := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			parts = append(parts, strconv.Itoa(id))
		}
		if err := c.page(ctx, strings.Join(parts, ","), func(_ int, it gw2.Item) error {
			out = append(out, it)
			return nil
		}); err != nil {
			return nil, errors.Wrapf(err, "items page at %d", start)
		}
	}
	return out, nil
}

func (c *Client) page(ctx context.Context, ids string, fn func(int, gw2.Item) error) error {
	body, err := c.get(ctx, itemsPath, url.Values{"ids": {ids}})
	if err != nil {
		return err
	}
	defer body.Close()
	return c.catalog.EachItem(body, fn)
}

// get issues a GET and returns the body of a 2xx response. Other statuses
// become *APIError.
func (c *Client) get(ctx context.Context, path string, q url.Values) (io.ReadCloser, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if q == nil {
		q = url.Values{}
	}
	if c.cfg.Lang != "" {
		q.Set("lang", c.cfg.Lang)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.SchemaVersion != "" {
		req.Header.Set("X-Schema-Version", c.cfg.SchemaVersion)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", u.Path)
	}
	c.logger.Debug("gw2 api request", slog.String("path", u.Path), slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, URL: u.Path, Text: errorText(raw)}
	}
	return resp.Body, nil
}

// errorText extracts {"text": "..."} from an error body.
func errorText(raw []byte) string {
	var msg struct {
		Text string `json:"text"`
	}
	if err := gojson.Unmarshal(raw, &msg); err == nil && msg.Text != "" {
		return msg.Text
	}
	return strings.TrimSpace(string(raw))
}
