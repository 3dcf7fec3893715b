// Package textgeom is the layout and coordinate engine for
// editor-style UIs: virtualized block lists, caret placement, and
// selection geometry over documents with per-kind block heights.
//
// The engine is responsible for:
//   - Cumulative block/line heights with O(log n) updates and queries
//   - Offset, line/column, and pixel coordinate conversion
//   - Visible-range and spacer computation for virtualized scrolling
//   - Per-block render descriptors for any drawing backend
//
// It deliberately does no drawing, highlighting, or text mutation;
// hosts bring their own document model and rasterizer.
//
// Architecture:
//
//	┌───────────────────────────────────────────────┐
//	│               Session (facade)                │
//	├───────────────┬──────────────┬────────────────┤
//	│  blocklayout  │   viewport   │     render     │
//	│  geometry     │  visibility  │  descriptors   │
//	├───────────────┴──────────────┴────────────────┤
//	│  heightindex (Fenwick cumulative heights)     │
//	│  coords (offset / position / pixel mapping)   │
//	│  style (kind multipliers, TOML sheets)        │
//	└───────────────────────────────────────────────┘
//
// Usage:
//
//	cfg := blocklayout.Config{LineHeight: 20, Styles: style.Default()}
//	s := textgeom.NewSession(cfg, blocks)
//	infos, m := s.Frame(core.Viewport{OffsetY: scroll, Height: 600})
//	// stack m.TopSpacer, then infos, then m.BottomSpacer
//
// Everything is synchronous and none of it is internally locked: hosts
// embedding the engine in concurrent code must serialize mutating
// calls against readers.
package textgeom
