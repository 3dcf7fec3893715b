// Package blocklayout is the single source of truth for block
// geometry. A block's height is its line count times the base line
// height times its kind's style multiplier; the index stores one
// cumulative-height entry per physical line, so both block-level and
// line-level vertical queries stay O(log n).
//
// Rebuild policy: a full Rebuild is required whenever the block count,
// any block's kind, or the configuration changes. Content edits that
// keep a block's kind and line count go through UpdateBlock without
// touching any other block. Like the underlying height index, this
// type is not synchronized.
package blocklayout

import (
	"sort"

	"github.com/dshills/textgeom/core"
	"github.com/dshills/textgeom/heightindex"
	"github.com/dshills/textgeom/style"
)

// Config holds the global layout inputs.
type Config struct {
	LineHeight float64
	Styles     style.Map
}

// ConfigFromSheet builds a Config from a parsed style sheet, falling
// back to the given line height when the sheet does not set one.
func ConfigFromSheet(sheet style.Sheet, fallbackLineHeight float64) Config {
	lh := sheet.LineHeight
	if lh <= 0 {
		lh = fallbackLineHeight
	}
	return Config{LineHeight: lh, Styles: sheet.Map()}
}

type blockMeta struct {
	kind      core.BlockKind
	lineCount int
	startLine int
}

// Index maps blocks to vertical pixel space.
// Create one with New, then Rebuild it with the document's blocks.
type Index struct {
	cfg   Config
	meta  []blockMeta
	lines *heightindex.Index
}

// New creates an empty index with the given configuration.
func New(cfg Config) *Index {
	if cfg.LineHeight < 0 {
		cfg.LineHeight = 0
	}
	return &Index{
		cfg:   cfg,
		lines: heightindex.New(0),
	}
}

func (ix *Index) lineHeightFor(kind core.BlockKind) float64 {
	return ix.cfg.LineHeight * ix.cfg.Styles.Multiplier(kind)
}

// Rebuild recomputes the whole index from the given blocks in O(n).
// Call it after inserting or removing blocks, changing a block's kind,
// or any other edit UpdateBlock reports as structural.
func (ix *Index) Rebuild(blocks []core.Block) {
	meta := make([]blockMeta, len(blocks))
	totalLines := 0
	for i, b := range blocks {
		n := b.PhysicalLines()
		meta[i] = blockMeta{kind: b.Kind, lineCount: n, startLine: totalLines}
		totalLines += n
	}

	heights := make([]float64, 0, totalLines)
	for _, m := range meta {
		h := ix.lineHeightFor(m.kind)
		for l := 0; l < m.lineCount; l++ {
			heights = append(heights, h)
		}
	}

	ix.meta = meta
	ix.lines = heightindex.FromHeights(heights)
}

// Reconfigure swaps the configuration and rebuilds. Line height and
// style changes move every block, so there is no partial path.
func (ix *Index) Reconfigure(cfg Config, blocks []core.Block) {
	if cfg.LineHeight < 0 {
		cfg.LineHeight = 0
	}
	ix.cfg = cfg
	ix.Rebuild(blocks)
}

// UpdateBlock applies a content edit to block i. When the edit left
// the block's structure (kind and line count) intact it refreshes the
// block's line entries in O(lines · log n) and returns true; no other
// block's geometry is touched. It returns false when the change is
// structural or i is out of range, in which case the caller must
// Rebuild with the full block list.
func (ix *Index) UpdateBlock(i int, blk core.Block) bool {
	if i < 0 || i >= len(ix.meta) {
		return false
	}
	m := ix.meta[i]
	if blk.Kind != m.kind || blk.PhysicalLines() != m.lineCount {
		return false
	}
	h := ix.lineHeightFor(m.kind)
	for l := 0; l < m.lineCount; l++ {
		ix.lines.Set(m.startLine+l, h)
	}
	return true
}

// Config returns the active configuration.
func (ix *Index) Config() Config {
	return ix.cfg
}

// Len returns the number of blocks.
func (ix *Index) Len() int {
	return len(ix.meta)
}

// LineCount returns the number of physical lines across all blocks.
func (ix *Index) LineCount() int {
	return ix.lines.Len()
}

// Total returns the document's full pixel height in O(1).
func (ix *Index) Total() float64 {
	return ix.lines.Total()
}

// PrefixSum returns the summed height of blocks [0, end): the document
// y offset at which block end begins.
func (ix *Index) PrefixSum(end int) float64 {
	if end <= 0 {
		return 0
	}
	if end >= len(ix.meta) {
		return ix.lines.Total()
	}
	return ix.lines.PrefixSum(ix.meta[end].startLine)
}

// IndexAt returns the index of the block containing the vertical
// offset, or Len() when the offset is at or past the total height.
func (ix *Index) IndexAt(y float64) int {
	line := ix.lines.IndexAt(y)
	if line >= ix.lines.Len() {
		return len(ix.meta)
	}
	return ix.BlockForLine(line)
}

// Height returns the pixel height of block i, or 0 out of range.
func (ix *Index) Height(i int) float64 {
	if i < 0 || i >= len(ix.meta) {
		return 0
	}
	m := ix.meta[i]
	return ix.lines.RangeSum(m.startLine, m.startLine+m.lineCount)
}

// Y returns the document y offset of block i's top edge.
func (ix *Index) Y(i int) float64 {
	return ix.PrefixSum(i)
}

// StartLine returns the document line index (0-based) of block i's
// first line. Past-the-end blocks report the total line count.
func (ix *Index) StartLine(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(ix.meta) {
		return ix.lines.Len()
	}
	return ix.meta[i].startLine
}

// Lines returns the line count of block i, or 0 out of range.
func (ix *Index) Lines(i int) int {
	if i < 0 || i >= len(ix.meta) {
		return 0
	}
	return ix.meta[i].lineCount
}

// Kind returns the kind of block i; out-of-range blocks read as
// paragraphs.
func (ix *Index) Kind(i int) core.BlockKind {
	if i < 0 || i >= len(ix.meta) {
		return core.KindParagraph
	}
	return ix.meta[i].kind
}

// BlockForLine returns the index of the block containing the given
// document line, or Len() when the line is past the end.
func (ix *Index) BlockForLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= ix.lines.Len() {
		return len(ix.meta)
	}
	return sort.Search(len(ix.meta), func(b int) bool {
		return ix.meta[b].startLine+ix.meta[b].lineCount > line
	})
}

// LineY returns the document y offset of the given line's top edge.
func (ix *Index) LineY(line int) float64 {
	return ix.lines.PrefixSum(line)
}

// LineHeightAt returns the rendered height of the given line, which is
// the base line height scaled by its block's multiplier.
func (ix *Index) LineHeightAt(line int) float64 {
	return ix.lines.Get(line)
}
