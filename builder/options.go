// SPDX-License-Identifier: MIT
// Package: asctree/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before tree construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex label generator: idx -> label.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbNumb is shorthand for WithIDScheme(SymbolNumberIDFn(prefix)).
// Panics on an empty prefix.
func WithSymbNumb(prefix string) BuilderOption {
	if prefix == "" {
		panic("builder: WithSymbNumb(\"\")")
	}
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithAllOrderings makes every constructor insert all orderings of each face.
func WithAllOrderings() BuilderOption {
	return func(c *builderConfig) {
		c.allOrderings = true
	}
}
