// Package builder provides reusable "functional-options"-style constructors
// that populate a core.Tree with common simplicial complexes. It centralizes
// vertex-label schemes, ordering policy and parameter validation so that tests,
// examples and the command line assemble complexes the same way.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildTree:         creates a tree, resolves options, runs constructors in order.
//     – Constructor:       a function that mutates a tree using builderConfig.
//   - Constructors:
//     – Faces:             insert explicit faces.
//     – Simplex:           every non-empty subset of n vertices.
//     – Skeleton:          every subset of n vertices with at most k members.
//     – HollowSimplex:     the boundary of the n-vertex simplex.
//   - Configuration primitives:
//     – BuilderOption:     WithIDScheme, WithSymbNumb, WithAllOrderings.
//   - Vertex-label schemes (IDFn implementations):
//     – DefaultIDFn, SymbolIDFn, SymbolNumberIDFn, NamedIDFn.
//   - Reference fixtures:
//     – MammalFaces:       the 4-clique on Cow, Rabbit, Horse, Dog.
//     – KingdomFaces:      an 11-vertex complex with three components.
//
// Guarantees:
//
//   - Idempotent construction: re-running a constructor on the same tree adds nothing.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping ErrTooFewVertices, ErrTooManyVertices
//     and ErrConstructFailed, prefixed by the Method* token of the constructor.
//   - Deterministic insertion order for equal inputs.
package builder
