package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Quotable: QuotableConfig{URL: "https://api.quotable.io", Timeout: 30 * time.Second},
		Random:   RandomConfig{MaxConcurrency: 4},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Quotable.URL = "" },
			wantErr: "quotable.url is required",
		},
		{
			name:    "non http url",
			mutate:  func(c *Config) { c.Quotable.URL = "api.quotable.io" },
			wantErr: "must start with http",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Quotable.Timeout = -time.Second },
			wantErr: "quotable.timeout",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Random.MaxConcurrency = 0 },
			wantErr: "random.max_concurrency",
		},
		{
			name:    "unknown output",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:   "output is case insensitive",
			mutate: func(c *Config) { c.Output.Format = "YAML" },
		},
		{
			name: "empty preset",
			mutate: func(c *Config) {
				c.Filter.Presets = map[string]PresetConfig{"short": {Expression: " "}}
			},
			wantErr: "filter preset 'short'",
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level",
		},
		{
			name: "level and format are case insensitive",
			mutate: func(c *Config) {
				c.Logging.Level = "DEBUG"
				c.Logging.Format = "JSON"
			},
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads file and fills defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
quotable:
  url: http://localhost:4000
  timeout: 5s
filter:
  presets:
    short:
      expression: "Length < 80"
logging:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4000", cfg.Quotable.URL)
		assert.Equal(t, 5*time.Second, cfg.Quotable.Timeout)
		assert.Equal(t, "quotekit", cfg.Quotable.UserAgent)
		assert.Equal(t, "Length < 80", cfg.Filter.Presets["short"].Expression)
		assert.Equal(t, 4, cfg.Random.MaxConcurrency)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("quotable:\n  url: http://localhost:4000\n"), 0o600))
		t.Setenv("QUOTEKIT_QUOTABLE_URL", "https://quotes.internal")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://quotes.internal", cfg.Quotable.URL)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
