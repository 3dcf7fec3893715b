package render

import (
	"testing"

	"github.com/dshills/textgeom/core"
)

func TestDrawFeedsBackendInOrder(t *testing.T) {
	layout, blocks := testLayout()
	b := NewBuilder(20, false)
	infos := b.Build(core.Range{Start: 0, End: 4}, layout, blocks)

	backend := NewNullBackend()
	Draw(backend, infos)

	drawn := backend.Drawn()
	if len(drawn) != len(infos) {
		t.Fatalf("expected %d draws, got %d", len(infos), len(drawn))
	}
	for i := range infos {
		if drawn[i] != infos[i] {
			t.Errorf("draw %d: got %+v, want %+v", i, drawn[i], infos[i])
		}
	}
}

func TestNullBackendReset(t *testing.T) {
	backend := NewNullBackend()
	backend.DrawBlock(BlockInfo{Block: 1})
	backend.DrawBlock(BlockInfo{Block: 2})

	if len(backend.Drawn()) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(backend.Drawn()))
	}
	backend.Reset()
	if len(backend.Drawn()) != 0 {
		t.Errorf("expected empty recording after reset, got %d", len(backend.Drawn()))
	}
}

func TestDrawEmpty(t *testing.T) {
	backend := NewNullBackend()
	Draw(backend, nil)
	if len(backend.Drawn()) != 0 {
		t.Errorf("expected no draws, got %d", len(backend.Drawn()))
	}
}
