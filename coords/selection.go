package coords

import "github.com/dshills/textgeom/core"

// SelectionRect is one rectangle of a multi-line selection highlight.
type SelectionRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SelectionRects decomposes the selection between start and end into
// per-line rectangles: the first line from the start column to the
// line end, full intermediate lines, and the last line up to the end
// column. Reversed selections produce the same rectangles as their
// forward equivalents, and lines where the selection covers no runes
// produce no rectangle.
//
// lines holds the text of the document's lines, addressed 1-based by
// core.Position.Line; rectangles come out in the same document space
// CaretAt uses.
func (m Metrics) SelectionRects(lines []string, start, end core.Position) []SelectionRect {
	if end.Before(start) {
		start, end = end, start
	}

	first := start.Line
	if first < 1 {
		first = 1
	}
	last := end.Line
	if last > len(lines) {
		last = len(lines)
	}

	var rects []SelectionRect
	for line := first; line <= last; line++ {
		runes := []rune(lines[line-1])

		colStart := 1
		if line == start.Line {
			colStart = start.Column
		}
		colEnd := len(runes) + 1
		if line == end.Line && end.Column < colEnd {
			colEnd = end.Column
		}
		if colStart < 1 {
			colStart = 1
		}
		if colStart > len(runes)+1 {
			colStart = len(runes) + 1
		}
		if colEnd <= colStart {
			continue
		}

		x0 := m.PaddingLeft + m.width(string(runes[:colStart-1]))
		x1 := m.PaddingLeft + m.width(string(runes[:colEnd-1]))
		rects = append(rects, SelectionRect{
			X:      x0,
			Y:      m.PaddingTop + float64(line-1)*m.LineHeight,
			Width:  x1 - x0,
			Height: m.LineHeight,
		})
	}
	return rects
}
