package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/s0up4200/quotekit/filter"
	"github.com/s0up4200/quotekit/quotable"
)

// filterFlags are the server-side filter flags shared by list and random
type filterFlags struct {
	minLength int
	maxLength int
	tags      []string
	tagMode   string
	authors   []string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.minLength, "min-length", 0, "minimum quote length in characters")
	fs.IntVar(&f.maxLength, "max-length", 0, "maximum quote length in characters")
	fs.StringSliceVarP(&f.tags, "tag", "t", nil, "filter by tag (repeatable)")
	fs.StringVar(&f.tagMode, "tag-mode", "all", "combine tags with all (AND) or any (OR)")
	fs.StringSliceVarP(&f.authors, "author", "a", nil, "filter by author slug (repeatable)")
}

// build turns the flags into a quotable.Filter. Length bounds are only
// forwarded when set on the command line.
func (f *filterFlags) build(fs *pflag.FlagSet) (quotable.Filter, error) {
	mode, err := quotable.ParseTagCombinator(f.tagMode)
	if err != nil {
		return quotable.Filter{}, err
	}

	qf := quotable.Filter{
		Tags:    f.tags,
		TagMode: mode,
		Authors: f.authors,
	}
	if fs.Changed("min-length") {
		qf.MinLength = quotable.Int(f.minLength)
	}
	if fs.Changed("max-length") {
		qf.MaxLength = quotable.Int(f.maxLength)
	}
	if qf.MinLength != nil && qf.MaxLength != nil && *qf.MinLength > *qf.MaxLength {
		return quotable.Filter{}, fmt.Errorf("--min-length %d is greater than --max-length %d", *qf.MinLength, *qf.MaxLength)
	}

	return qf, nil
}

// whereFlags select a client-side filter expression
type whereFlags struct {
	expression string
	preset     string
}

func (w *whereFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&w.expression, "where", "w", "", "client-side filter expression")
	fs.StringVarP(&w.preset, "preset", "p", "", "use a preset filter from config")
}

// resolve determines the filter expression to use.
// Priority: command line expression > preset > configured default.
func (w *whereFlags) resolve() (string, error) {
	if w.expression != "" {
		return w.expression, nil
	}

	if w.preset != "" {
		if p, ok := cfg.Filter.Presets[w.preset]; ok {
			return p.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", w.preset)
	}

	return cfg.Filter.DefaultExpression, nil
}

// matcher compiles the resolved expression. An empty expression matches
// every quote.
func (w *whereFlags) matcher() (func(quotable.Quote) bool, error) {
	expr, err := w.resolve()
	if err != nil {
		return nil, err
	}
	if expr != "" {
		logger.Debug().Str("filter", expr).Msg("Applying client-side filter")
	}

	match, err := filter.ParseAndCreateFilter(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return match, nil
}
