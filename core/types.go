// Package core provides shared types for the layout engine.
// This package breaks import cycles between the index, coordinate,
// and render packages.
package core

import "strings"

// BlockKind identifies the visual category of a content block.
type BlockKind int

// Block kinds understood by the layout engine.
const (
	KindParagraph BlockKind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindCode
	KindQuote
	KindList
)

var kindNames = map[BlockKind]string{
	KindParagraph: "paragraph",
	KindHeading1:  "heading1",
	KindHeading2:  "heading2",
	KindHeading3:  "heading3",
	KindCode:      "code",
	KindQuote:     "quote",
	KindList:      "list",
}

var namesToKind = map[string]BlockKind{}

func init() {
	for k, name := range kindNames {
		namesToKind[name] = k
	}
}

// String returns the canonical name of the kind.
func (k BlockKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "paragraph"
}

// KindFromString returns the kind with the given canonical name.
// The second result is false for unknown names.
func KindFromString(s string) (BlockKind, bool) {
	k, ok := namesToKind[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Block is a unit of document content with a visual kind.
// The layout engine reads blocks; ownership stays with the document model.
type Block struct {
	Kind      BlockKind
	Content   string
	LineCount int
}

// NewBlock creates a block, deriving the line count from the content.
// Empty content still occupies one line.
func NewBlock(kind BlockKind, content string) Block {
	return Block{
		Kind:      kind,
		Content:   content,
		LineCount: strings.Count(content, "\n") + 1,
	}
}

// Lines splits the block content into its physical lines.
func (b Block) Lines() []string {
	return strings.Split(b.Content, "\n")
}

// PhysicalLines returns the block's line count, trusting LineCount
// when set and deriving it from Content otherwise. A block is never
// shorter than one line.
func (b Block) PhysicalLines() int {
	if b.LineCount >= 1 {
		return b.LineCount
	}
	return strings.Count(b.Content, "\n") + 1
}

// Range is a half-open interval [Start, End) over block or line indices.
type Range struct {
	Start int
	End   int
}

// NewRange creates a range, swapping the bounds if they arrive reversed.
func NewRange(start, end int) Range {
	if end < start {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no indices.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Contains returns true if i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Clamp returns the range restricted to [0, n].
func (r Range) Clamp(n int) Range {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	return Range{Start: start, End: end}
}

// Equals returns true if two ranges cover the same interval.
func (r Range) Equals(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

// Position is a 1-based line and column location in text.
// Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// NewPosition creates a position from 1-based line and column.
func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Before returns true if p precedes other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Equals returns true if two positions are the same location.
func (p Position) Equals(other Position) bool {
	return p.Line == other.Line && p.Column == other.Column
}

// Viewport describes the visible region the host is presenting.
// Offsets and sizes are pixels in document space.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Bottom returns the document-space y coordinate of the lower edge.
func (v Viewport) Bottom() float64 {
	return v.OffsetY + v.Height
}

// Right returns the document-space x coordinate of the right edge.
func (v Viewport) Right() float64 {
	return v.OffsetX + v.Width
}
