package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/monta/monta"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
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
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
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
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Operation fields are declared with zero values so type errors such as
	// Body == "yes" surface at compile time.
	env := createRuntimeEnvironment(monta.Operation{})
	maps.Copy(env, c.helperFuncs)

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

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against an operation
func (f *exprFilter) Evaluate(op monta.Operation) bool {
	ok, err := f.Match(op)
	return err == nil && ok
}

// Match evaluates the filter and reports runtime errors
func (f *exprFilter) Match(op monta.Operation) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(op))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Operation:  op.Name,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 8)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds the case-insensitive string helpers
func addHelperFunctions(env map[string]any) {
	env["hasText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// createRuntimeEnvironment exposes one catalog operation to an expression
func createRuntimeEnvironment(op monta.Operation) map[string]any {
	env := make(map[string]any, 24)

	addHelperFunctions(env)

	placeholders := op.Placeholders()
	query := op.Query
	if query == nil {
		query = []string{}
	}
	if placeholders == nil {
		placeholders = []string{}
	}

	env["Name"] = op.Name
	env["Domain"] = op.Domain
	env["Method"] = op.Method.String()
	env["Path"] = op.Path
	env["Query"] = query
	env["Placeholders"] = placeholders
	env["Body"] = op.Body
	env["Description"] = op.Description

	env["hasQuery"] = createHasFunc(query)
	env["hasPlaceholder"] = createHasFunc(placeholders)
	env["isRead"] = func() bool { return op.Method == monta.MethodGet }
	env["isWrite"] = func() bool { return op.Method != monta.MethodGet }

	return env
}

func createHasFunc(names []string) func(string) bool {
	lower := make([]string, len(names))
	for i, name := range names {
		lower[i] = strings.ToLower(name)
	}
	return func(name string) bool {
		return slices.Contains(lower, strings.ToLower(name))
	}
}
