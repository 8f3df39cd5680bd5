package quotable

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

	"github.com/rs/zerolog"
)

// Client represents a Quotable API client
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ API = (*Client)(nil)

// NewClient creates a new Quotable client. An empty baseURL selects DefaultBaseURL.
// No request is made until an operation is called.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// Ensure base URL ends without slash
	baseURL = strings.TrimRight(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL must be http or https, got %q", ErrInvalidConfig, baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: base URL has no host: %q", ErrInvalidConfig, baseURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  o.userAgent,
		httpClient: o.buildHTTPClient(),
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Quote fetches a quote by id. A missing quote reported as an empty or null
// body yields (nil, nil).
func (c *Client) Quote(ctx context.Context, id string) (*Quote, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return execute[Quote](ctx, c, QuoteEndpoint(id))
}

// Quotes fetches one page of quotes matching opts.
func (c *Client) Quotes(ctx context.Context, opts ListOptions) (*Quotes, error) {
	return execute[Quotes](ctx, c, QuotesEndpoint(opts))
}

// AllQuotes fetches the first page of quotes with no filters.
func (c *Client) AllQuotes(ctx context.Context) (*Quotes, error) {
	return c.Quotes(ctx, ListOptions{})
}

// RandomQuote fetches one random quote matching f.
func (c *Client) RandomQuote(ctx context.Context, f Filter) (*Quote, error) {
	return execute[Quote](ctx, c, RandomEndpoint(f))
}

// Ping checks that the service answers a random quote request.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.RandomQuote(ctx, Filter{})
	return err
}

// newRequest builds the GET request for ep.
func (c *Client) newRequest(ctx context.Context, ep Endpoint) (*http.Request, error) {
	requestURL, err := ep.URL(c.baseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// execute performs the request described by ep and decodes the body into T.
// Both calling conventions go through here.
func execute[T any](ctx context.Context, c *Client, ep Endpoint) (*T, error) {
	req, err := c.newRequest(ctx, ep)
	if err != nil {
		return nil, err
	}

	requestURL := req.URL.String()
	c.logger.Debug().
		Str("resource", ep.Resource.String()).
		Str("url", requestURL).
		Msg("Making Quotable API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: requestURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("resource", ep.Resource.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Quotable API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newProtocolError(resp.StatusCode, body, requestURL)
	}

	return decode[T](body)
}

// decode treats an empty or null body as absence. A body that decodes but
// lacks required fields is a DecodingError.
func decode[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, &DecodingError{
			Target: fmt.Sprintf("%T", result),
			Body:   string(body),
			Err:    err,
		}
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, &DecodingError{
				Target: fmt.Sprintf("%T", result),
				Body:   string(body),
				Err:    err,
			}
		}
	}
	return &result, nil
}
