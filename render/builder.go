// Package render assembles per-block draw descriptors for a visible
// range and hands them to a drawing backend. It computes geometry
// only; rasterization belongs to Backend implementations.
package render

import (
	"github.com/dshills/textgeom/blocklayout"
	"github.com/dshills/textgeom/core"
)

// BlockInfo describes where one block renders. Descriptors are created
// fresh on every build and never mutated afterwards, so backends and
// caches may hold them without copying.
type BlockInfo struct {
	// Block is the index into the document's block list.
	Block int
	// StartLine is the 0-based document line index of the block's
	// first line.
	StartLine int
	// LineCount is the block's physical line count.
	LineCount int
	// Y is the block's top edge. Whether it is a document offset or
	// relative to the first visible block depends on the builder mode;
	// one build never mixes the two.
	Y float64
	// Height is the block's pixel height.
	Height float64
}

// Builder assembles BlockInfo slices for visible ranges.
//
// With document coordinates enabled, Y values are absolute document
// offsets for sticky or fixed-viewport rendering. Otherwise the first
// visible block starts at Y 0 and the host stacks the slice below the
// top spacer.
type Builder struct {
	lineHeight float64
	docCoords  bool
}

// NewBuilder creates a builder. lineHeight prices lines whenever no
// layout index covers a block; documentCoordinates selects absolute Y
// values as described on Builder.
func NewBuilder(lineHeight float64, documentCoordinates bool) Builder {
	if lineHeight < 0 {
		lineHeight = 0
	}
	return Builder{lineHeight: lineHeight, docCoords: documentCoordinates}
}

// Build returns draw descriptors for the blocks in rng.
//
// When a layout index is supplied it is the authoritative geometry:
// y, height, and line numbers are read from it per visible block in
// O(log n) + O(k). Passing a nil layout selects the degraded
// fixed-height path, which prices every line at the builder's uniform
// line height, ignores kind multipliers, and walks the blocks before
// the range to locate it (O(start + k)). The same fixed path repairs
// the tail when the layout covers fewer blocks than the document,
// continuing y and line numbering from the last indexed block instead
// of failing the frame.
//
// Both paths produce identical StartLine numbering; y and height
// drift apart in degraded mode when multipliers are non-trivial.
// Identical inputs always produce identical output.
func (b Builder) Build(rng core.Range, layout *blocklayout.Index, blocks []core.Block) []BlockInfo {
	rng = rng.Clamp(len(blocks))
	if rng.IsEmpty() {
		return nil
	}

	indexed := 0
	if layout != nil {
		indexed = layout.Len()
	}

	var origin float64
	if !b.docCoords {
		origin, _ = b.seam(rng.Start, layout, blocks)
	}

	infos := make([]BlockInfo, 0, rng.Len())
	for i := rng.Start; i < rng.End && i < indexed; i++ {
		infos = append(infos, BlockInfo{
			Block:     i,
			StartLine: layout.StartLine(i),
			LineCount: layout.Lines(i),
			Y:         layout.Y(i) - origin,
			Height:    layout.Height(i),
		})
	}

	if rng.End > indexed {
		tail := rng.Start
		if tail < indexed {
			tail = indexed
		}
		y, line := b.seam(tail, layout, blocks)
		for i := tail; i < rng.End; i++ {
			n := blocks[i].PhysicalLines()
			h := float64(n) * b.lineHeight
			infos = append(infos, BlockInfo{
				Block:     i,
				StartLine: line,
				LineCount: n,
				Y:         y - origin,
				Height:    h,
			})
			y += h
			line += n
		}
	}
	return infos
}

// seam returns the document y offset and first line index of block i,
// reading indexed blocks from the layout and pricing the rest at the
// fixed line height.
func (b Builder) seam(i int, layout *blocklayout.Index, blocks []core.Block) (float64, int) {
	var y float64
	line := 0
	from := 0
	if layout != nil {
		if i <= layout.Len() {
			return layout.PrefixSum(i), layout.StartLine(i)
		}
		y = layout.Total()
		line = layout.LineCount()
		from = layout.Len()
	}
	for j := from; j < i && j < len(blocks); j++ {
		n := blocks[j].PhysicalLines()
		y += float64(n) * b.lineHeight
		line += n
	}
	return y, line
}
