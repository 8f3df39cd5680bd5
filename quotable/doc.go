// Package quotable provides a client for the Quotable quotation API.
//
// The client builds GET requests for three resources (a single quote by id,
// a filtered and paginated list of quotes, and a random quote), encodes the
// optional filter arguments into a canonical query string, and decodes the
// JSON responses into typed values.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := quotable.NewClient("", logger, quotable.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	quotes, err := client.Quotes(ctx, quotable.ListOptions{
//		Filter: quotable.Filter{
//			MinLength: quotable.Int(100),
//			Tags:      []string{"famous-quotes", "success"},
//			TagMode:   quotable.TagsAll,
//		},
//		Limit: 5,
//		Page:  2,
//	})
//
// Every operation also has a callback form that returns immediately and
// delivers the result exactly once:
//
//	client.RandomQuoteAsync(ctx, quotable.Filter{}, func(q *quotable.Quote, err error) {
//		// ...
//	})
//
// # Optional arguments
//
// Integer bounds are pointers; nil means the parameter is not sent. Empty
// tag and author lists are not sent. The zero SortField and SortOrder are
// not sent. Limit and Page always go out on list requests, falling back to
// DefaultLimit and DefaultPage when below 1.
//
// TagsAny joins tags with a comma, which the service reads as OR; TagsAll
// joins them with a pipe.
//
// # Errors
//
// A quote that does not exist may come back as an empty or null body, which
// is reported as a nil result with a nil error. A body missing the quote's
// _id, or a list missing results, is a *DecodingError. Failures are one of:
//
//   - *TransportError: the request never produced a response
//   - *ProtocolError: the service answered with a non-2xx status
//   - *DecodingError: the body did not match the expected shape
//
// Nothing is retried.
package quotable
