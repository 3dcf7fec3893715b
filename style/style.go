// Package style maps block kinds to their visual scale. A style sheet
// assigns each kind a line-height multiplier; the layout index turns
// those multipliers into pixel heights.
package style

import "github.com/dshills/textgeom/core"

// Map assigns a line-height multiplier to each block kind.
// The zero value is usable: every kind falls back to multiplier 1.
type Map struct {
	multipliers map[core.BlockKind]float64
}

// NewMap creates a style map from explicit kind multipliers.
// Non-positive multipliers are dropped and fall back to 1.
func NewMap(multipliers map[core.BlockKind]float64) Map {
	m := make(map[core.BlockKind]float64, len(multipliers))
	for kind, mult := range multipliers {
		if mult > 0 {
			m[kind] = mult
		}
	}
	return Map{multipliers: m}
}

// Default returns a typical editor sheet: headings scale up, body
// kinds render at 1.
func Default() Map {
	return NewMap(map[core.BlockKind]float64{
		core.KindHeading1: 2.0,
		core.KindHeading2: 1.5,
		core.KindHeading3: 1.25,
	})
}

// Multiplier returns the multiplier for a kind. Kinds the map does not
// name multiply by 1.
func (m Map) Multiplier(kind core.BlockKind) float64 {
	if mult, ok := m.multipliers[kind]; ok {
		return mult
	}
	return 1
}

// With returns a copy of the map with one multiplier replaced.
func (m Map) With(kind core.BlockKind, mult float64) Map {
	next := make(map[core.BlockKind]float64, len(m.multipliers)+1)
	for k, v := range m.multipliers {
		next[k] = v
	}
	next[kind] = mult
	return NewMap(next)
}
