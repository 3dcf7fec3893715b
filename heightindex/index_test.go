package heightindex

import (
	"math"
	"math/rand"
	"testing"
)

// naive is the reference implementation: a plain slice summed on demand.
type naive struct {
	vals []float64
}

func (n *naive) set(i int, h float64) {
	if i < 0 || i >= len(n.vals) {
		return
	}
	if h < 0 {
		h = 0
	}
	n.vals[i] = h
}

func (n *naive) prefix(end int) float64 {
	if end > len(n.vals) {
		end = len(n.vals)
	}
	var sum float64
	for i := 0; i < end; i++ {
		sum += n.vals[i]
	}
	return sum
}

func (n *naive) indexAt(offset float64) int {
	if offset <= 0 {
		return 0
	}
	var sum float64
	for i, h := range n.vals {
		if offset < sum+h {
			return i
		}
		sum += h
	}
	return len(n.vals)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewIsZeroed(t *testing.T) {
	ix := New(5)
	if ix.Len() != 5 {
		t.Errorf("expected len 5, got %d", ix.Len())
	}
	if ix.Total() != 0 {
		t.Errorf("expected total 0, got %v", ix.Total())
	}
	for i := 0; i < 5; i++ {
		if ix.Get(i) != 0 {
			t.Errorf("entry %d: expected 0, got %v", i, ix.Get(i))
		}
	}
}

func TestFromHeights(t *testing.T) {
	ix := FromHeights([]float64{20, 40, 20})
	if ix.Len() != 3 {
		t.Fatalf("expected len 3, got %d", ix.Len())
	}
	if !almostEqual(ix.Total(), 80) {
		t.Errorf("expected total 80, got %v", ix.Total())
	}
	if !almostEqual(ix.PrefixSum(2), 60) {
		t.Errorf("expected PrefixSum(2) 60, got %v", ix.PrefixSum(2))
	}
	if !almostEqual(ix.Get(1), 40) {
		t.Errorf("expected height 40, got %v", ix.Get(1))
	}
}

func TestSetUpdatesSums(t *testing.T) {
	ix := FromHeights([]float64{20, 20, 20, 20})
	ix.Set(1, 50)

	if !almostEqual(ix.Get(1), 50) {
		t.Errorf("expected height 50, got %v", ix.Get(1))
	}
	if !almostEqual(ix.Total(), 110) {
		t.Errorf("expected total 110, got %v", ix.Total())
	}
	if !almostEqual(ix.PrefixSum(1), 20) {
		t.Errorf("expected PrefixSum(1) 20, got %v", ix.PrefixSum(1))
	}
	if !almostEqual(ix.PrefixSum(2), 70) {
		t.Errorf("expected PrefixSum(2) 70, got %v", ix.PrefixSum(2))
	}
}

func TestOutOfRangeDegradesSilently(t *testing.T) {
	ix := FromHeights([]float64{10, 10})

	if got := ix.Get(-1); got != 0 {
		t.Errorf("Get(-1): expected 0, got %v", got)
	}
	if got := ix.Get(2); got != 0 {
		t.Errorf("Get(2): expected 0, got %v", got)
	}

	ix.Set(-1, 99)
	ix.Set(5, 99)
	if !almostEqual(ix.Total(), 20) {
		t.Errorf("out-of-range Set changed total: %v", ix.Total())
	}

	if got := ix.PrefixSum(-3); got != 0 {
		t.Errorf("PrefixSum(-3): expected 0, got %v", got)
	}
	if got := ix.PrefixSum(99); !almostEqual(got, 20) {
		t.Errorf("PrefixSum(99): expected 20, got %v", got)
	}
}

func TestNegativeHeightClamps(t *testing.T) {
	ix := FromHeights([]float64{10, -5, 10})
	if !almostEqual(ix.Total(), 20) {
		t.Errorf("expected total 20, got %v", ix.Total())
	}
	ix.Set(0, -1)
	if got := ix.Get(0); got != 0 {
		t.Errorf("expected clamped height 0, got %v", got)
	}
	if !almostEqual(ix.Total(), 10) {
		t.Errorf("expected total 10, got %v", ix.Total())
	}
}

func TestIndexAtContainingEntry(t *testing.T) {
	ix := FromHeights([]float64{20, 20, 20, 20, 20})

	tests := []struct {
		offset float64
		want   int
	}{
		{-5, 0},
		{0, 0},
		{19.9, 0},
		{20, 1},
		{55, 2},
		{99.9, 4},
		{100, 5}, // at total: one past the last entry
		{250, 5},
	}

	for _, tt := range tests {
		if got := ix.IndexAt(tt.offset); got != tt.want {
			t.Errorf("IndexAt(%v) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestIndexAtSkipsZeroHeightEntries(t *testing.T) {
	ix := FromHeights([]float64{20, 0, 20})
	// Offset 20 is the boundary: the zero-height entry 1 has no extent
	// there, so the lookup resolves to entry 2.
	if got := ix.IndexAt(20); got != 2 {
		t.Errorf("IndexAt(20) = %d, want 2", got)
	}
	if got := ix.IndexAt(10); got != 0 {
		t.Errorf("IndexAt(10) = %d, want 0", got)
	}
}

func TestIndexAtEmptyIndex(t *testing.T) {
	ix := New(0)
	if got := ix.IndexAt(10); got != 0 {
		t.Errorf("IndexAt on empty index = %d, want 0", got)
	}
}

func TestRangeSumLaw(t *testing.T) {
	ix := FromHeights([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	n := ix.Len()
	for a := 0; a <= n; a++ {
		for b := a; b <= n; b++ {
			want := ix.PrefixSum(b) - ix.PrefixSum(a)
			if got := ix.RangeSum(a, b); !almostEqual(got, want) {
				t.Errorf("RangeSum(%d,%d) = %v, want %v", a, b, got, want)
			}
		}
	}
	if got := ix.RangeSum(5, 2); got != 0 {
		t.Errorf("inverted range: expected 0, got %v", got)
	}
}

func TestResizeGrowAndShrink(t *testing.T) {
	ix := FromHeights([]float64{10, 20, 30})

	ix.Resize(5, 7)
	if ix.Len() != 5 {
		t.Fatalf("expected len 5, got %d", ix.Len())
	}
	if !almostEqual(ix.Get(1), 20) {
		t.Errorf("existing height lost: got %v", ix.Get(1))
	}
	if !almostEqual(ix.Get(4), 7) {
		t.Errorf("expected default height 7, got %v", ix.Get(4))
	}
	if !almostEqual(ix.Total(), 74) {
		t.Errorf("expected total 74, got %v", ix.Total())
	}

	ix.Resize(2, 7)
	if ix.Len() != 2 {
		t.Fatalf("expected len 2, got %d", ix.Len())
	}
	if !almostEqual(ix.Total(), 30) {
		t.Errorf("expected total 30, got %v", ix.Total())
	}
}

func TestHeightsReturnsCopy(t *testing.T) {
	ix := FromHeights([]float64{1, 2, 3})
	h := ix.Heights()
	h[0] = 99
	if !almostEqual(ix.Get(0), 1) {
		t.Error("mutating the returned slice changed the index")
	}
}

// TestAgainstNaiveReference drives the tree and a plain slice through
// the same random update sequence and checks every query agrees.
func TestAgainstNaiveReference(t *testing.T) {
	const size = 257 // off power-of-two to exercise partial tree levels
	rng := rand.New(rand.NewSource(42))

	ix := New(size)
	ref := &naive{vals: make([]float64, size)}

	for step := 0; step < 2000; step++ {
		i := rng.Intn(size)
		h := math.Floor(rng.Float64()*100) / 2
		ix.Set(i, h)
		ref.set(i, h)

		end := rng.Intn(size + 1)
		if got, want := ix.PrefixSum(end), ref.prefix(end); !almostEqual(got, want) {
			t.Fatalf("step %d: PrefixSum(%d) = %v, want %v", step, end, got, want)
		}

		offset := rng.Float64() * (ref.prefix(size) + 10)
		if got, want := ix.IndexAt(offset), ref.indexAt(offset); got != want {
			t.Fatalf("step %d: IndexAt(%v) = %d, want %d", step, offset, got, want)
		}
	}

	if got, want := ix.Total(), ref.prefix(size); !almostEqual(got, want) {
		t.Errorf("final total %v, want %v", got, want)
	}
}
