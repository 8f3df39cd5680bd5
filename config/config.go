package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. QUOTEKIT_QUOTABLE_URL.
const EnvPrefix = "QUOTEKIT"

// Load loads the configuration from file, .env files and the environment.
// A missing config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	// .env.local overrides .env; neither overrides variables already set
	loadEnvFiles(".env.local", ".env")

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".quotekit"))
		}

		// Check /etc
		v.AddConfigPath("/etc/quotekit/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFiles loads the first-listed files with the highest precedence.
func loadEnvFiles(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Quotable defaults
	v.SetDefault("quotable.url", "https://api.quotable.io")
	v.SetDefault("quotable.timeout", "30s")
	v.SetDefault("quotable.user_agent", "quotekit")
	v.SetDefault("quotable.insecure_skip_verify", false)

	v.SetDefault("output.format", "")

	v.SetDefault("filter.default_expression", "")

	v.SetDefault("random.max_concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Quotable.URL == "" {
		return fmt.Errorf("quotable.url is required")
	}
	if !strings.HasPrefix(cfg.Quotable.URL, "http://") && !strings.HasPrefix(cfg.Quotable.URL, "https://") {
		return fmt.Errorf("quotable.url must start with http:// or https://: %s", cfg.Quotable.URL)
	}

	if cfg.Quotable.Timeout < 0 {
		return fmt.Errorf("quotable.timeout must not be negative: %s", cfg.Quotable.Timeout)
	}

	if cfg.Random.MaxConcurrency < 1 {
		return fmt.Errorf("random.max_concurrency must be at least 1: %d", cfg.Random.MaxConcurrency)
	}

	validOutputs := map[string]bool{
		"":      true,
		"table": true,
		"wide":  true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[strings.ToLower(cfg.Output.Format)] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	for name, preset := range cfg.Filter.Presets {
		if strings.TrimSpace(preset.Expression) == "" {
			return fmt.Errorf("filter preset '%s' has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
