package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the Quotable API",
	Long:  `Test the connection to the configured Quotable endpoint by requesting a random quote.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Quotable at %s...\n", client.BaseURL())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Timeout: %s\n", cfg.Quotable.Timeout)
	fmt.Printf("- Output format: %s\n", formatOrAuto(cfg.Output.Format))
	fmt.Printf("- Filter presets: %d\n", len(cfg.Filter.Presets))

	return nil
}

func formatOrAuto(format string) string {
	if format == "" {
		return "auto"
	}
	return format
}
