// Package builder defines shared constants used by complex builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodFaces is the canonical name for the Faces constructor.
	MethodFaces = "Faces"
	// MethodSimplex is the canonical name for the Simplex constructor.
	MethodSimplex = "Simplex"
	// MethodSkeleton is the canonical name for the Skeleton constructor.
	MethodSkeleton = "Skeleton"
	// MethodHollowSimplex is the canonical name for the HollowSimplex constructor.
	MethodHollowSimplex = "HollowSimplex"
)

//-----------------------------------------------------------------------------
// Size limits
//-----------------------------------------------------------------------------

// MinSimplexVertices is the smallest vertex count accepted by Simplex and Skeleton.
const MinSimplexVertices = 1

// MinHollowVertices is the smallest vertex count for HollowSimplex.
// The boundary of a single vertex is empty, so at least an edge is required.
const MinHollowVertices = 2

// MaxSimplexVertices bounds Simplex/Skeleton: 2^n subsets are enumerated.
const MaxSimplexVertices = 20

// MaxOrderedFaceSize bounds the face size accepted under WithAllOrderings,
// since a face of size s expands into s! insertions.
const MaxOrderedFaceSize = 8
