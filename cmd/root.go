package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/quotekit/config"
	"github.com/s0up4200/quotekit/output"
	"github.com/s0up4200/quotekit/quotable"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	client       *quotable.Client
	outputFormat string

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quotekit",
	Short: "Browse quotations from the Quotable API",
	Long: `quotekit is a CLI for the Quotable quotation service. It fetches quotes
by id, lists quotes page by page with length, tag and author filters, and
draws random quotes. Results can be narrowed further with filter expressions.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion sets the version information shown by the version command
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, wide, json or yaml")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		if _, err := output.ParseFormat(outputFormat); err != nil {
			return err
		}
		cfg.Output.Format = outputFormat
	}

	opts := []quotable.Option{quotable.WithTimeout(cfg.Quotable.Timeout)}
	if cfg.Quotable.UserAgent != "" {
		opts = append(opts, quotable.WithUserAgent(cfg.Quotable.UserAgent))
	}
	if cfg.Quotable.InsecureSkipVerify {
		logger.Warn().Msg("TLS certificate verification is disabled")
		opts = append(opts, quotable.WithInsecureSkipVerify())
	}

	client, err = quotable.NewClient(cfg.Quotable.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Quotable client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when stderr is a terminal
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(writer).With().Timestamp().Logger()
}

// render writes data to stdout in the configured format
func render(data any) error {
	return output.NewFormatter(output.DetectFormat(cfg.Output.Format)).Format(os.Stdout, data)
}
