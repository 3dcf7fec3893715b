// Package coords converts between flat text offsets, 1-based
// line/column positions, and pixel coordinates. Every function is pure:
// text and glyph measurement come in as arguments, geometry comes out.
//
// Glyph widths are supplied by the host through a MeasureFunc, so the
// same math serves canvas, terminal, and headless rendering.
package coords

import "github.com/rivo/uniseg"

// MeasureFunc returns the advance width of a string in pixels.
//
// Implementations must be deterministic and monotone: appending text
// never shrinks the width. The column search assumes both properties;
// a measure that violates them produces undefined column results, and
// no detection is attempted.
type MeasureFunc func(s string) float64

// FixedMeasure returns a measure where every rune advances by w.
func FixedMeasure(w float64) MeasureFunc {
	return func(s string) float64 {
		return float64(len([]rune(s))) * w
	}
}

// MonospaceMeasure returns a measure for terminal-style rendering:
// grapheme clusters advance by whole cells and East Asian wide glyphs
// take two. cell is the pixel width of one cell.
func MonospaceMeasure(cell float64) MeasureFunc {
	return func(s string) float64 {
		return float64(uniseg.StringWidth(s)) * cell
	}
}
