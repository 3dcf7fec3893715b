package textgeom

import (
	"github.com/google/uuid"

	"github.com/dshills/textgeom/blocklayout"
	"github.com/dshills/textgeom/core"
	"github.com/dshills/textgeom/render"
	"github.com/dshills/textgeom/viewport"
)

// Option configures a Session at construction time.
type Option func(*Session)

// WithOverscan sets how many extra blocks are rendered on each side of
// the strictly visible range. The default is viewport.DefaultOverscan.
func WithOverscan(n int) Option {
	return func(s *Session) { s.overscan = n }
}

// WithDocumentCoordinates makes Frame emit absolute document y values
// instead of values relative to the first visible block.
func WithDocumentCoordinates(enabled bool) Option {
	return func(s *Session) { s.docCoords = enabled }
}

// Session owns the layout state for one open document: the block
// geometry index, the visibility calculator, and the render builder.
// Create one per document and discard it when the document closes.
//
// Sessions are not internally synchronized. Hosts that mutate and read
// from different goroutines must serialize the calls themselves, and
// coalescing of superseded recomputes (fast typing, debounce) is the
// host's job: a Session always reflects exactly the blocks last given
// to it.
type Session struct {
	id        uuid.UUID
	blocks    []core.Block
	layout    *blocklayout.Index
	calc      viewport.Calculator
	builder   render.Builder
	overscan  int
	docCoords bool
}

// NewSession creates a session for the given document blocks. The
// block slice is copied; later edits flow in through UpdateBlock and
// ReplaceDocument.
func NewSession(cfg blocklayout.Config, blocks []core.Block, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New(),
		overscan: viewport.DefaultOverscan,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.blocks = append([]core.Block(nil), blocks...)
	s.layout = blocklayout.New(cfg)
	s.layout.Rebuild(s.blocks)
	s.calc = viewport.NewCalculator(s.overscan)
	s.builder = render.NewBuilder(s.layout.Config().LineHeight, s.docCoords)
	return s
}

// ID returns the session's unique identity, suitable for keying
// host-side memoization caches.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the active layout configuration.
func (s *Session) Config() blocklayout.Config {
	return s.layout.Config()
}

// Layout exposes the geometry index for direct queries such as
// BlockForLine or LineY.
func (s *Session) Layout() *blocklayout.Index {
	return s.layout
}

// BlockCount returns the number of blocks in the document.
func (s *Session) BlockCount() int {
	return s.layout.Len()
}

// TotalHeight returns the document's full pixel height.
func (s *Session) TotalHeight() float64 {
	return s.layout.Total()
}

// LineTop returns the document y offset of the given 0-based line.
func (s *Session) LineTop(line int) float64 {
	return s.layout.LineY(line)
}

// ReplaceDocument swaps in a new block list and rebuilds all geometry.
func (s *Session) ReplaceDocument(blocks []core.Block) {
	s.blocks = append([]core.Block(nil), blocks...)
	s.layout.Rebuild(s.blocks)
}

// UpdateBlock applies an edit to block i. Content-only edits refresh
// just that block; structural edits (kind or line count changes) fall
// back to a full rebuild transparently. Out-of-range indices are
// ignored; block insertion and removal go through ReplaceDocument.
func (s *Session) UpdateBlock(i int, blk core.Block) {
	if i < 0 || i >= len(s.blocks) {
		return
	}
	s.blocks[i] = blk
	if !s.layout.UpdateBlock(i, blk) {
		s.layout.Rebuild(s.blocks)
	}
}

// Reconfigure applies a new line height or style map and rebuilds.
func (s *Session) Reconfigure(cfg blocklayout.Config) {
	s.layout.Reconfigure(cfg, s.blocks)
	s.builder = render.NewBuilder(s.layout.Config().LineHeight, s.docCoords)
}

// Frame computes one render pass: the draw descriptors for the blocks
// visible in vp plus the spacer metrics around them. It mutates
// nothing, so identical calls return identical results until the next
// edit.
func (s *Session) Frame(vp core.Viewport) ([]render.BlockInfo, viewport.Metrics) {
	m := s.calc.Visible(s.layout, vp.OffsetY, vp.Height)
	infos := s.builder.Build(m.Range, s.layout, s.blocks)
	return infos, m
}

// Render runs Frame and feeds the descriptors to the backend.
func (s *Session) Render(vp core.Viewport, b render.Backend) viewport.Metrics {
	infos, m := s.Frame(vp)
	render.Draw(b, infos)
	return m
}
