package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/quotekit/quotable"
)

var (
	randomFilter filterFlags
	randomWhere  whereFlags
	randomCount  int
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Fetch random quotes",
	Long: `Fetch one or more random quotes matching the given length, tag and author
filters. With --count, requests run concurrently up to random.max_concurrency.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomFilter.register(randomCmd.Flags())
	randomWhere.register(randomCmd.Flags())
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of random quotes to fetch")
}

func runRandom(cmd *cobra.Command, args []string) error {
	if randomCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	f, err := randomFilter.build(cmd.Flags())
	if err != nil {
		return err
	}

	match, err := randomWhere.matcher()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	quotes, err := fetchRandom(ctx, client, f, randomCount, cfg.Random.MaxConcurrency)
	if err != nil {
		return err
	}

	var selected []quotable.Quote
	for _, q := range quotes {
		if q != nil && match(*q) {
			selected = append(selected, *q)
		}
	}

	if len(selected) == 0 {
		fmt.Println("No quotes found matching the filter criteria.")
		return nil
	}

	return render(selected)
}

// fetchRandom draws count random quotes with at most limit requests in
// flight. The first failure cancels the rest.
func fetchRandom(ctx context.Context, api quotable.API, f quotable.Filter, count, limit int) ([]*quotable.Quote, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	quotes := make([]*quotable.Quote, count)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			q, err := api.RandomQuote(ctx, f)
			if err != nil {
				return err
			}
			quotes[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Int("count", count).Msg("Fetched random quotes")
	return quotes, nil
}
