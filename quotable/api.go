package quotable

import (
	"context"
)

// API defines the interface for Quotable operations
type API interface {
	// Quote fetches a single quote by id
	Quote(ctx context.Context, id string) (*Quote, error)
	QuoteAsync(ctx context.Context, id string, done Callback[Quote])

	// Quotes fetches one filtered page of quotes
	Quotes(ctx context.Context, opts ListOptions) (*Quotes, error)
	QuotesAsync(ctx context.Context, opts ListOptions, done Callback[Quotes])

	// AllQuotes fetches the first page of quotes with no filters
	AllQuotes(ctx context.Context) (*Quotes, error)
	AllQuotesAsync(ctx context.Context, done Callback[Quotes])

	// RandomQuote fetches one random quote matching the filter
	RandomQuote(ctx context.Context, f Filter) (*Quote, error)
	RandomQuoteAsync(ctx context.Context, f Filter, done Callback[Quote])

	// Ping verifies the client can reach the service
	Ping(ctx context.Context) error
}
