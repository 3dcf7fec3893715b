package coords

import (
	"math"

	"github.com/dshills/textgeom/core"
)

// Caret is the pixel-space rectangle of a text cursor.
type Caret struct {
	X      float64
	Y      float64
	Height float64
}

// Metrics converts between text positions and pixel coordinates for a
// run of lines sharing one line height and one measure.
//
// Measure must be set before any pixel conversion. A nil measure is a
// host wiring bug; a silent fixed-width substitute would misplace
// every caret, so the conversion panics instead.
type Metrics struct {
	LineHeight  float64
	PaddingLeft float64
	PaddingTop  float64
	Measure     MeasureFunc
}

func (m Metrics) width(s string) float64 {
	if m.Measure == nil {
		panic("textgeom/coords: Metrics.Measure is nil")
	}
	return m.Measure(s)
}

// CaretAt returns the caret rectangle for a position. lineText is the
// full text of the line the position refers to; columns beyond it
// clamp to the line end.
func (m Metrics) CaretAt(lineText string, pos core.Position) Caret {
	runes := []rune(lineText)
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	line := pos.Line
	if line < 1 {
		line = 1
	}
	return Caret{
		X:      m.PaddingLeft + m.width(string(runes[:col])),
		Y:      m.PaddingTop + float64(line-1)*m.LineHeight,
		Height: m.LineHeight,
	}
}

// ColumnAtX returns the 1-based column whose caret slot is nearest to
// the horizontal offset x, measured in pixels from the line start
// (padding already removed). The search is a binary search over rune
// boundaries comparing x against each glyph's midpoint, so clicks in
// the right half of a glyph land after it. At most O(log n) measure
// calls per lookup.
func (m Metrics) ColumnAtX(lineText string, x float64) int {
	runes := []rune(lineText)
	if len(runes) == 0 || x <= 0 {
		return 1
	}
	if x >= m.width(lineText) {
		return len(runes) + 1
	}
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi) / 2
		before := m.width(string(runes[:mid]))
		after := m.width(string(runes[:mid+1]))
		if x > (before+after)/2 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo + 1
}

// PositionFor maps viewport-local pixel coordinates to a document
// position. scrollTop is the document offset of the viewport's top
// edge; lines holds the text of every document line. Coordinates
// outside the text clamp to the nearest position.
func (m Metrics) PositionFor(lines []string, x, y, scrollTop float64) core.Position {
	if len(lines) == 0 {
		return core.Position{Line: 1, Column: 1}
	}
	line := 0
	if m.LineHeight > 0 {
		line = int(math.Floor((y + scrollTop - m.PaddingTop) / m.LineHeight))
	}
	if line < 0 {
		line = 0
	}
	if line > len(lines)-1 {
		line = len(lines) - 1
	}
	col := m.ColumnAtX(lines[line], x-m.PaddingLeft)
	return core.Position{Line: line + 1, Column: col}
}
