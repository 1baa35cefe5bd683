// Package matrix provides the dense numeric surface used by the complex
// analysis: a row-major Dense matrix, GF(2) kernels (reduction, addition,
// product, rank by XOR elimination), a real-field rank routine, and the
// Boundary Matrix Builder.
//
// The boundary operator ∂ₖ is a BoundaryMatrix whose rows are the faces with
// k-1 vertices and whose columns are the faces with k vertices; entry (i, j)
// is 1 exactly when row face i is column face j with one vertex omitted.
// Row and column faces are returned in canonical order so callers can read
// entries back as incidences.
//
// Every routine that combines entries reduces the result modulo 2 before it
// is stored. Rank accepts arbitrary finite values; RankMod2 reads every entry
// as a gf2.Element and eliminates with row XOR.
//
// Errors are package-level sentinels ("matrix: ...") wrapped with the
// operation name; match them with errors.Is.
package matrix
