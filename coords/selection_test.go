package coords

import (
	"testing"

	"github.com/dshills/textgeom/core"
)

func TestSelectionRectsTwoLines(t *testing.T) {
	m := testMetrics() // 8px runes, 20px lines
	lines := []string{"Hello", "World"}

	rects := m.SelectionRects(lines,
		core.Position{Line: 1, Column: 3},
		core.Position{Line: 2, Column: 4})

	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}

	// Line 1: columns 3..6 (to line end), x from 16, width 24.
	want0 := SelectionRect{X: 16, Y: 0, Width: 24, Height: 20}
	if rects[0] != want0 {
		t.Errorf("rect 0 = %+v, want %+v", rects[0], want0)
	}

	// Line 2: columns 1..4, width 24.
	want1 := SelectionRect{X: 0, Y: 20, Width: 24, Height: 20}
	if rects[1] != want1 {
		t.Errorf("rect 1 = %+v, want %+v", rects[1], want1)
	}
}

func TestSelectionRectsReversedIdentical(t *testing.T) {
	m := testMetrics()
	lines := []string{"Hello", "World"}
	start := core.Position{Line: 1, Column: 3}
	end := core.Position{Line: 2, Column: 4}

	forward := m.SelectionRects(lines, start, end)
	reversed := m.SelectionRects(lines, end, start)

	if len(forward) != len(reversed) {
		t.Fatalf("forward %d rects, reversed %d", len(forward), len(reversed))
	}
	for i := range forward {
		if forward[i] != reversed[i] {
			t.Errorf("rect %d: forward %+v, reversed %+v", i, forward[i], reversed[i])
		}
	}
}

func TestSelectionRectsSingleLine(t *testing.T) {
	m := testMetrics()
	lines := []string{"Hello World"}

	rects := m.SelectionRects(lines,
		core.Position{Line: 1, Column: 7},
		core.Position{Line: 1, Column: 12})

	if len(rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(rects))
	}
	want := SelectionRect{X: 48, Y: 0, Width: 40, Height: 20}
	if rects[0] != want {
		t.Errorf("rect = %+v, want %+v", rects[0], want)
	}
}

func TestSelectionRectsSkipsEmptyCoverage(t *testing.T) {
	m := testMetrics()

	// Collapsed selection: no rects.
	rects := m.SelectionRects([]string{"abc"},
		core.Position{Line: 1, Column: 2},
		core.Position{Line: 1, Column: 2})
	if len(rects) != 0 {
		t.Errorf("collapsed selection: expected 0 rects, got %d", len(rects))
	}

	// Middle line is empty: it covers no runes, so it emits nothing.
	rects = m.SelectionRects([]string{"ab", "", "cd"},
		core.Position{Line: 1, Column: 1},
		core.Position{Line: 3, Column: 2})
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	if rects[0].Y != 0 || rects[1].Y != 40 {
		t.Errorf("expected rects on lines 1 and 3, got y %v and %v", rects[0].Y, rects[1].Y)
	}
}

func TestSelectionRectsFullMiddleLine(t *testing.T) {
	m := testMetrics()
	lines := []string{"one", "stretch", "three"}

	rects := m.SelectionRects(lines,
		core.Position{Line: 1, Column: 2},
		core.Position{Line: 3, Column: 3})

	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	if rects[1].X != 0 {
		t.Errorf("middle line should start at x 0, got %v", rects[1].X)
	}
	if rects[1].Width != 56 {
		t.Errorf("middle line should span all 7 runes (56px), got %v", rects[1].Width)
	}
}

func TestSelectionRectsClampsOutOfRangeLines(t *testing.T) {
	m := testMetrics()
	lines := []string{"only"}

	rects := m.SelectionRects(lines,
		core.Position{Line: -2, Column: 1},
		core.Position{Line: 9, Column: 9})

	if len(rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(rects))
	}
	if rects[0].Width != 32 {
		t.Errorf("expected full line width 32, got %v", rects[0].Width)
	}
}
