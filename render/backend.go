package render

// Backend consumes one build's descriptors. Implementations draw
// blocks on whatever surface they own; the engine never depends on a
// concrete backend type.
type Backend interface {
	// DrawBlock renders one block at the geometry in info.
	DrawBlock(info BlockInfo)
}

// Draw feeds every descriptor to the backend in document order.
func Draw(b Backend, infos []BlockInfo) {
	for _, info := range infos {
		b.DrawBlock(info)
	}
}

// NullBackend is a no-op backend recording draw calls for tests.
type NullBackend struct {
	drawn []BlockInfo
}

var _ Backend = (*NullBackend)(nil)

// NewNullBackend creates an empty recorder.
func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

// DrawBlock records the descriptor.
func (b *NullBackend) DrawBlock(info BlockInfo) {
	b.drawn = append(b.drawn, info)
}

// Drawn returns the descriptors received so far, in draw order.
func (b *NullBackend) Drawn() []BlockInfo {
	return b.drawn
}

// Reset clears the recording.
func (b *NullBackend) Reset() {
	b.drawn = nil
}
