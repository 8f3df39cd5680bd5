package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/quotekit/config"
	"github.com/s0up4200/quotekit/quotable"
)

func parseFilterFlags(t *testing.T, args ...string) (quotable.Filter, error) {
	t.Helper()
	var ff filterFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	ff.register(fs)
	require.NoError(t, fs.Parse(args))
	return ff.build(fs)
}

func TestFilterFlags(t *testing.T) {
	t.Run("unset bounds are not forwarded", func(t *testing.T) {
		f, err := parseFilterFlags(t)
		require.NoError(t, err)
		assert.Nil(t, f.MinLength)
		assert.Nil(t, f.MaxLength)
		assert.Empty(t, f.Parameters())
	})

	t.Run("explicit zero is forwarded", func(t *testing.T) {
		f, err := parseFilterFlags(t, "--min-length", "0")
		require.NoError(t, err)
		require.NotNil(t, f.MinLength)
		assert.Equal(t, 0, *f.MinLength)
	})

	t.Run("tags and authors", func(t *testing.T) {
		f, err := parseFilterFlags(t, "-t", "wisdom", "-t", "life", "--tag-mode", "any", "-a", "albert-einstein")
		require.NoError(t, err)
		assert.Equal(t, []string{"wisdom", "life"}, f.Tags)
		assert.Equal(t, quotable.TagsAny, f.TagMode)
		assert.Equal(t, []string{"albert-einstein"}, f.Authors)
	})

	t.Run("invalid tag mode", func(t *testing.T) {
		_, err := parseFilterFlags(t, "--tag-mode", "xor")
		assert.Error(t, err)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := parseFilterFlags(t, "--min-length", "200", "--max-length", "100")
		assert.Error(t, err)
	})
}

func TestWhereFlagsResolve(t *testing.T) {
	cfg = &config.Config{Filter: config.FilterConfig{
		DefaultExpression: "Length < 100",
		Presets: map[string]config.PresetConfig{
			"short": {Expression: "Length < 50"},
		},
	}}
	t.Cleanup(func() { cfg = nil })

	tests := []struct {
		name    string
		flags   whereFlags
		want    string
		wantErr bool
	}{
		{name: "default", want: "Length < 100"},
		{name: "preset", flags: whereFlags{preset: "short"}, want: "Length < 50"},
		{name: "expression wins", flags: whereFlags{expression: "Author == 'Yoda'", preset: "short"}, want: "Author == 'Yoda'"},
		{name: "missing preset", flags: whereFlags{preset: "nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.resolve()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchRandom(t *testing.T) {
	var calls, inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		assert.Equal(t, "/random", r.URL.Path)
		assert.Equal(t, "tags=wisdom", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"abc","content":"Be.","author":"Someone","length":3,"tags":["wisdom"]}`))
	}))
	defer srv.Close()

	c, err := quotable.NewClient(srv.URL, zerolog.Nop())
	require.NoError(t, err)

	quotes, err := fetchRandom(context.Background(), c, quotable.Filter{Tags: []string{"wisdom"}}, 5, 2)
	require.NoError(t, err)
	assert.Len(t, quotes, 5)
	assert.Equal(t, int32(5), calls.Load())
	assert.LessOrEqual(t, peak.Load(), int32(2))
	for _, q := range quotes {
		require.NotNil(t, q)
		assert.Equal(t, "abc", q.ID)
	}
}

func TestFetchRandomStopsOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := quotable.NewClient(srv.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = fetchRandom(context.Background(), c, quotable.Filter{}, 3, 1)
	var perr *quotable.ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.IsRateLimited())
}

func TestSetupLoggerLevelIgnoresCase(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	setupLogger(config.LoggingConfig{Level: "DEBUG", Format: "console"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
