// Package components defines ECS components for the ambient creature field.
package components

import "gonum.org/v1/gonum/spatial/r3"

// Species identifies a fish archetype with fixed size and speed.
type Species uint8

const (
	SpeciesClownfish Species = iota
	SpeciesAngelfish
	SpeciesJellyfish
	SpeciesShark
)

// String returns the species name.
func (s Species) String() string {
	switch s {
	case SpeciesClownfish:
		return "clownfish"
	case SpeciesAngelfish:
		return "angelfish"
	case SpeciesJellyfish:
		return "jellyfish"
	case SpeciesShark:
		return "shark"
	}
	return "unknown"
}

// SpeciesTraits holds the fixed movement limits and body size for a species.
type SpeciesTraits struct {
	Size     float64 // body length in world units
	MaxSpeed float64 // velocity clamp in units per second
}

var speciesTraits = [...]SpeciesTraits{
	SpeciesClownfish: {Size: 0.8, MaxSpeed: 9.0},
	SpeciesAngelfish: {Size: 1.1, MaxSpeed: 7.5},
	SpeciesJellyfish: {Size: 1.4, MaxSpeed: 3.0},
	SpeciesShark:     {Size: 4.5, MaxSpeed: 11.0},
}

// Traits returns the fixed traits for the species.
func (s Species) Traits() SpeciesTraits {
	if int(s) >= len(speciesTraits) {
		return speciesTraits[SpeciesClownfish]
	}
	return speciesTraits[s]
}

// Position is an entity's world position.
type Position struct {
	r3.Vec
}

// Velocity is an entity's velocity.
type Velocity struct {
	r3.Vec
}

// Fish holds per-fish state for the flocking field.
type Fish struct {
	ID      uint32
	Species Species
	Phase   float64 // swim animation phase, advances with speed
}
