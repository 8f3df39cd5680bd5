package quotable

import "context"

// Callback receives the outcome of an asynchronous call. It is invoked
// exactly once, from a goroutine owned by the call. A nil result with a nil
// error means the resource was absent.
type Callback[T any] func(result *T, err error)

// dispatch runs call on a new goroutine and hands its outcome to done.
func dispatch[T any](ctx context.Context, call func(context.Context) (*T, error), done Callback[T]) {
	go func() {
		result, err := call(ctx)
		if done != nil {
			done(result, err)
		}
	}()
}

// QuoteAsync is the callback form of Quote.
func (c *Client) QuoteAsync(ctx context.Context, id string, done Callback[Quote]) {
	dispatch(ctx, func(ctx context.Context) (*Quote, error) {
		return c.Quote(ctx, id)
	}, done)
}

// QuotesAsync is the callback form of Quotes.
func (c *Client) QuotesAsync(ctx context.Context, opts ListOptions, done Callback[Quotes]) {
	dispatch(ctx, func(ctx context.Context) (*Quotes, error) {
		return c.Quotes(ctx, opts)
	}, done)
}

// AllQuotesAsync is the callback form of AllQuotes.
func (c *Client) AllQuotesAsync(ctx context.Context, done Callback[Quotes]) {
	dispatch(ctx, c.AllQuotes, done)
}

// RandomQuoteAsync is the callback form of RandomQuote.
func (c *Client) RandomQuoteAsync(ctx context.Context, f Filter, done Callback[Quote]) {
	dispatch(ctx, func(ctx context.Context) (*Quote, error) {
		return c.RandomQuote(ctx, f)
	}, done)
}
