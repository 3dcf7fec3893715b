package coords

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/textgeom/core"
)

// PositionAt converts a flat rune offset into a 1-based line/column
// position. Offsets past the end of the text clamp to the position
// after the final rune; negative offsets clamp to the start.
func PositionAt(text string, offset int) core.Position {
	if offset < 0 {
		offset = 0
	}
	line, col := 1, 1
	count := 0
	for _, r := range text {
		if count == offset {
			return core.Position{Line: line, Column: col}
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		count++
	}
	return core.Position{Line: line, Column: col}
}

// OffsetAt converts a 1-based line/column position into a flat rune
// offset. Lines and columns outside the text clamp to the nearest
// valid location, so OffsetAt(PositionAt(text, o)) == o for every
// offset o in [0, rune count].
func OffsetAt(text string, pos core.Position) int {
	lines := strings.Split(text, "\n")
	line := pos.Line
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	offset := 0
	for i := 0; i < line-1; i++ {
		offset += utf8.RuneCountInString(lines[i]) + 1 // +1 for the newline
	}

	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	if n := utf8.RuneCountInString(lines[line-1]); col > n {
		col = n
	}
	return offset + col
}
