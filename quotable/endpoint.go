package quotable

import (
	"fmt"
	"net/url"
	"strings"
)

// Resource identifies the remote resource an Endpoint targets.
type Resource int

const (
	ResourceQuote Resource = iota
	ResourceQuotes
	ResourceRandom
)

// String returns a short name for logs.
func (r Resource) String() string {
	switch r {
	case ResourceQuote:
		return "quote"
	case ResourceQuotes:
		return "quotes"
	case ResourceRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Endpoint describes one request before it is turned into an *http.Request.
type Endpoint struct {
	Resource Resource
	// ID is the path parameter of ResourceQuote.
	ID    string
	Query []QueryParameter
}

// QuoteEndpoint targets a single quote. It carries no query parameters.
func QuoteEndpoint(id string) Endpoint {
	return Endpoint{Resource: ResourceQuote, ID: id}
}

// QuotesEndpoint targets the quote list with the full parameter set.
func QuotesEndpoint(opts ListOptions) Endpoint {
	return Endpoint{Resource: ResourceQuotes, Query: opts.Parameters()}
}

// RandomEndpoint targets the random quote with the filter subset only.
func RandomEndpoint(f Filter) Endpoint {
	return Endpoint{Resource: ResourceRandom, Query: f.Parameters()}
}

// Path returns the resource path relative to the API root.
func (e Endpoint) Path() string {
	switch e.Resource {
	case ResourceQuote:
		return "/quotes/" + url.PathEscape(e.ID)
	case ResourceQuotes:
		return "/quotes"
	case ResourceRandom:
		return "/random"
	default:
		return "/"
	}
}

// Parameters returns a copy of the query parameters.
func (e Endpoint) Parameters() []QueryParameter {
	if len(e.Query) == 0 {
		return nil
	}
	out := make([]QueryParameter, len(e.Query))
	copy(out, e.Query)
	return out
}

// RawQuery percent-encodes the parameters in descriptor order.
func (e Endpoint) RawQuery() string {
	if len(e.Query) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range e.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(string(p.Name)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// URL joins baseURL, the resource path and the encoded query.
func (e Endpoint) URL(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + e.Path())
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = e.RawQuery()

	return u.String(), nil
}

// ParseQuery splits a raw query string back into ordered parameters.
// Unknown names are kept as-is.
func ParseQuery(rawQuery string) ([]QueryParameter, error) {
	if rawQuery == "" {
		return nil, nil
	}

	pairs := strings.Split(rawQuery, "&")
	params := make([]QueryParameter, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("invalid query key %q: %w", key, err)
		}
		val, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("invalid query value for %s: %w", name, err)
		}
		params = append(params, QueryParameter{Name: ParamName(name), Value: val})
	}
	return params, nil
}
