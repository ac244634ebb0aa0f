package filter

import (
	"github.com/s0up4200/monta/monta"
)

// Filter defines the basic interface for operation filters
type Filter interface {
	// Evaluate checks if an operation matches the filter criteria. An
	// expression that fails at runtime does not match.
	Evaluate(op monta.Operation) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate, reporting runtime failures as *EvaluationError
	Match(op monta.Operation) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
