package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/quotekit/quotable"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newFilterCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any, 16),
	}
	addHelperFunctions(c.helperFuncs)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *filterCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	// Type-check against a zero quote so unknown fields fail at compile time
	env := createEnvironment(quotable.Quote{}, c.helperFuncs)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.put(expression, f)
	}

	return f, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.size()
	}
	return 0
}

// Evaluate evaluates the filter against a quote. Runtime errors count as no match.
func (f *exprFilter) Evaluate(quote quotable.Quote) bool {
	result, err := expr.Run(f.program, createEnvironment(quote, f.helpers))
	if err != nil {
		return false
	}

	// AsBool() at compile time guarantees the type
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the quote-independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Case-insensitive string helpers; expr's contains/startsWith/endsWith
	// operators are case-sensitive
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["words"] = func(str string) int {
		return len(strings.Fields(str))
	}
}

// createEnvironment builds the evaluation environment for one quote
func createEnvironment(quote quotable.Quote, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+12)
	maps.Copy(env, helpers)

	env["Quote"] = quote
	env["hasTag"] = createHasTagFunc(quote.Tags)
	env["byAuthor"] = createByAuthorFunc(quote.Author, quote.AuthorSlug)

	// Direct quote properties for convenience
	env["ID"] = quote.ID
	env["Content"] = quote.Content
	env["Author"] = quote.Author
	env["AuthorSlug"] = quote.AuthorSlug
	env["Length"] = quote.Length
	env["Tags"] = quote.Tags
	env["DateAdded"] = quote.DateAdded
	env["DateModified"] = quote.DateModified

	return env
}

func createHasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		return slices.Contains(lowerTags, strings.ToLower(tag))
	}
}

func createByAuthorFunc(author, slug string) func(string) bool {
	return func(name string) bool {
		return strings.EqualFold(author, name) || (slug != "" && strings.EqualFold(slug, name))
	}
}
