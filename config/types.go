package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Quotable QuotableConfig `mapstructure:"quotable"`
	Output   OutputConfig   `mapstructure:"output"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Random   RandomConfig   `mapstructure:"random"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// QuotableConfig holds Quotable API connection details
type QuotableConfig struct {
	URL                string        `mapstructure:"url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	UserAgent          string        `mapstructure:"user_agent"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Format is one of table, wide, json, yaml; empty picks table for a
	// terminal and json otherwise.
	Format string `mapstructure:"format"`
}

// FilterConfig contains client-side filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]PresetConfig `mapstructure:"presets"`
}

// PresetConfig is a named filter expression
type PresetConfig struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// RandomConfig tunes the random command
type RandomConfig struct {
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
