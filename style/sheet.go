package style

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textgeom/core"
)

// Errors returned by style sheet parsing.
var (
	// ErrBadSheet indicates the sheet failed to decode or validate.
	ErrBadSheet = errors.New("invalid style sheet")

	// ErrUnknownKind indicates a multiplier names a block kind that
	// does not exist.
	ErrUnknownKind = errors.New("unknown block kind")
)

// Sheet is the TOML document describing block styling.
//
//	line_height = 20.0
//
//	[multipliers]
//	heading1 = 2.0
//	code = 1.1
//
// A zero LineHeight means the sheet does not override the caller's
// line height.
type Sheet struct {
	LineHeight  float64            `toml:"line_height"`
	Multipliers map[string]float64 `toml:"multipliers"`
}

// ParseSheet decodes and validates a TOML style sheet.
func ParseSheet(data []byte) (Sheet, error) {
	var s Sheet
	if err := toml.Unmarshal(data, &s); err != nil {
		return Sheet{}, fmt.Errorf("%w: %v", ErrBadSheet, err)
	}
	if err := s.validate(); err != nil {
		return Sheet{}, err
	}
	return s, nil
}

// LoadSheet reads and decodes a TOML style sheet from disk.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("reading style sheet %s: %w", path, err)
	}
	s, err := ParseSheet(data)
	if err != nil {
		return Sheet{}, fmt.Errorf("parsing style sheet %s: %w", path, err)
	}
	return s, nil
}

func (s Sheet) validate() error {
	if s.LineHeight < 0 {
		return fmt.Errorf("%w: line_height %v is negative", ErrBadSheet, s.LineHeight)
	}
	for name, mult := range s.Multipliers {
		if _, ok := core.KindFromString(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}
		if mult <= 0 {
			return fmt.Errorf("%w: multiplier for %q must be positive, got %v",
				ErrBadSheet, name, mult)
		}
	}
	return nil
}

// Map converts the sheet's multipliers into a style map.
func (s Sheet) Map() Map {
	kinds := make(map[core.BlockKind]float64, len(s.Multipliers))
	for name, mult := range s.Multipliers {
		if kind, ok := core.KindFromString(name); ok {
			kinds[kind] = mult
		}
	}
	return NewMap(kinds)
}
