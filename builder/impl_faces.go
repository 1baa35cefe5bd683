// SPDX-License-Identifier: MIT
// Package: asctree/builder
//
// impl_faces.go - implementation of Faces(faces...).
//
// Contract:
//   - Faces are inserted in the given order; labels are used verbatim.
//   - Empty faces or labels are rejected by the tree (ErrConstructFailed wraps the cause).
//   - WithAllOrderings inserts every ordering of each face.
//
// Complexity:
//   - Time: Σ O(|f|), or Σ O(|f|·|f|!) with all orderings.

package builder

import (
	"github.com/katalvlaran/asctree/core"
)

// Faces returns a Constructor that inserts the given faces as root-to-node paths.
// The input slice is copied so later mutation by the caller has no effect.
func Faces(faces ...core.Face) Constructor {
	cp := make([]core.Face, len(faces))
	for i, f := range faces {
		cp[i] = f.Clone()
	}

	return func(t *core.Tree, cfg builderConfig) error {
		for _, f := range cp {
			if err := insertFace(MethodFaces, t, cfg, f); err != nil {
				return err
			}
		}

		return nil
	}
}
