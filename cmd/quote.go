package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/s0up4200/quotekit/quotable"
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <id>...",
	Short: "Fetch quotes by id",
	Long: `Fetch one or more quotes by their id. Ids are fetched concurrently and
printed in the order they were given. An id that does not exist is reported
and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuote,
}

type quoteResult struct {
	quote *quotable.Quote
	err   error
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]quoteResult, len(args))
	var wg sync.WaitGroup
	for i, id := range args {
		i, id := i, id
		wg.Add(1)
		client.QuoteAsync(ctx, id, func(q *quotable.Quote, err error) {
			defer wg.Done()
			results[i] = quoteResult{quote: q, err: err}
		})
	}
	wg.Wait()

	var (
		found  []quotable.Quote
		failed int
	)
	for i, r := range results {
		var perr *quotable.ProtocolError
		switch {
		case errors.As(r.err, &perr) && perr.IsNotFound():
			logger.Warn().Str("id", args[i]).Msg("Quote not found")
			failed++
		case r.err != nil:
			logger.Error().Err(r.err).Str("id", args[i]).Msg("Failed to fetch quote")
			failed++
		case r.quote == nil:
			logger.Warn().Str("id", args[i]).Msg("Quote not found")
			failed++
		default:
			found = append(found, *r.quote)
		}
	}

	if len(found) > 0 {
		if err := render(found); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d quotes could not be fetched", failed, len(args))
	}
	return nil
}
