// SPDX-License-Identifier: MIT
// Package: asctree/builder
//
// fixtures.go - reference complexes used by tests, examples and the CLI.
//
// Both fixtures list edges before triangles. Vertices are never inserted on
// their own; they appear as prefixes or, with vertex mirroring, as mirrors.

package builder

import (
	"github.com/katalvlaran/asctree/core"
)

// Reference fixture names accepted by Fixture.
const (
	FixtureMammal  = "mammal"
	FixtureKingdom = "kingdom"
)

// MammalFaces returns the 4-clique on Cow, Rabbit, Horse and Dog: all 6 edges
// and all 4 triangles. The tetrahedron itself is absent.
func MammalFaces() []core.Face {
	return []core.Face{
		{"Cow", "Rabbit"}, {"Cow", "Horse"}, {"Cow", "Dog"},
		{"Rabbit", "Horse"}, {"Rabbit", "Dog"}, {"Horse", "Dog"},
		{"Cow", "Rabbit", "Horse"}, {"Cow", "Rabbit", "Dog"},
		{"Cow", "Horse", "Dog"}, {"Rabbit", "Horse", "Dog"},
	}
}

// KingdomFaces returns an 11-vertex complex made of three components:
// the mammal 4-clique, the Fish/Dolphin/Oyster triangle and the
// Broccoli/Fern/Onion/Apple 4-clique.
func KingdomFaces() []core.Face {
	return []core.Face{
		{"Cow", "Rabbit"}, {"Cow", "Horse"}, {"Cow", "Dog"},
		{"Rabbit", "Horse"}, {"Rabbit", "Dog"}, {"Horse", "Dog"},
		{"Fish", "Dolphin"}, {"Fish", "Oyster"}, {"Dolphin", "Oyster"},
		{"Broccoli", "Fern"}, {"Broccoli", "Onion"}, {"Broccoli", "Apple"},
		{"Fern", "Onion"}, {"Fern", "Apple"}, {"Onion", "Apple"},

		{"Cow", "Rabbit", "Horse"}, {"Cow", "Rabbit", "Dog"},
		{"Cow", "Horse", "Dog"}, {"Rabbit", "Horse", "Dog"},
		{"Fish", "Dolphin", "Oyster"},
		{"Broccoli", "Fern", "Onion"}, {"Broccoli", "Fern", "Apple"},
		{"Broccoli", "Onion", "Apple"}, {"Fern", "Onion", "Apple"},
	}
}

// Fixture resolves a fixture by name. The boolean is false for unknown names.
func Fixture(name string) ([]core.Face, bool) {
	switch name {
	case FixtureMammal:
		return MammalFaces(), true
	case FixtureKingdom:
		return KingdomFaces(), true
	default:
		return nil, false
	}
}

// FixtureNames lists the names accepted by Fixture.
func FixtureNames() []string {
	return []string{FixtureMammal, FixtureKingdom}
}
