package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/quotekit/filter"
	"github.com/s0up4200/quotekit/quotable"
)

var (
	listFilter filterFlags
	listWhere  whereFlags
	listSortBy string
	listOrder  string
	listLimit  int
	listPage   int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes page by page",
	Long: `List one page of quotes. Length, tag and author filters are applied by
the service; --where and --preset narrow the returned page locally.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listFilter.register(listCmd.Flags())
	listWhere.register(listCmd.Flags())
	listCmd.Flags().StringVar(&listSortBy, "sort-by", "", "sort by dateAdded, dateModified, author or content")
	listCmd.Flags().StringVar(&listOrder, "order", "", "sort order: asc or desc")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", quotable.DefaultLimit, "quotes per page")
	listCmd.Flags().IntVar(&listPage, "page", quotable.DefaultPage, "page number")
}

// listOptions builds the request options from the list flags
func listOptions(cmd *cobra.Command) (quotable.ListOptions, error) {
	f, err := listFilter.build(cmd.Flags())
	if err != nil {
		return quotable.ListOptions{}, err
	}

	sortBy, err := quotable.ParseSortField(listSortBy)
	if err != nil {
		return quotable.ListOptions{}, err
	}
	order, err := quotable.ParseSortOrder(listOrder)
	if err != nil {
		return quotable.ListOptions{}, err
	}

	if listLimit < 1 {
		return quotable.ListOptions{}, fmt.Errorf("--limit must be at least 1")
	}
	if listPage < 1 {
		return quotable.ListOptions{}, fmt.Errorf("--page must be at least 1")
	}

	return quotable.ListOptions{
		Filter: f,
		SortBy: sortBy,
		Order:  order,
		Limit:  listLimit,
		Page:   listPage,
	}, nil
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}

	match, err := listWhere.matcher()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug().Int("page", opts.Page).Int("limit", opts.Limit).Msg("Listing quotes")

	page, err := client.Quotes(ctx, opts)
	if err != nil {
		return err
	}
	if page == nil {
		fmt.Println("No quotes returned.")
		return nil
	}

	page.Results = filter.Apply(page.Results, match)
	page.Count = len(page.Results)

	return render(page)
}
