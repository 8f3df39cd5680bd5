package filter

import (
	"strings"

	"github.com/s0up4200/quotekit/quotable"
)

var defaultCompiler = NewExprCompiler(WithCache(64))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// ParseAndCreateFilter parses a filter expression and returns a filter function.
// An empty expression matches every quote.
func ParseAndCreateFilter(expression string) (func(quotable.Quote) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(quotable.Quote) bool { return true }, nil
	}

	f, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return f.Evaluate, nil
}

// Apply returns the quotes accepted by match, keeping their order
func Apply(quotes []quotable.Quote, match func(quotable.Quote) bool) []quotable.Quote {
	matched := make([]quotable.Quote, 0, len(quotes))
	for _, q := range quotes {
		if match(q) {
			matched = append(matched, q)
		}
	}
	return matched
}
