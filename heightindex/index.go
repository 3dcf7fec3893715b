// Package heightindex maintains cumulative heights for a sequence of
// lines or blocks. Point updates and prefix sums run in O(log n), so
// scroll math stays cheap on documents with hundreds of thousands of
// entries.
//
// The index is a Fenwick tree (binary indexed tree) over float64
// heights, walked iteratively with the usual low-bit trick. It is not
// synchronized; callers serialize access themselves.
package heightindex

import "math/bits"

// Index stores per-entry heights and answers cumulative queries.
// The zero value holds no entries; use New or FromHeights.
type Index struct {
	tree  []float64 // 1-based Fenwick array
	vals  []float64 // raw heights, 0-based
	total float64
}

// New creates an index holding size entries, all with height 0.
func New(size int) *Index {
	if size < 0 {
		size = 0
	}
	return &Index{
		tree: make([]float64, size+1),
		vals: make([]float64, size),
	}
}

// FromHeights creates an index populated with the given heights.
// Construction is O(n). Negative heights are treated as 0.
func FromHeights(heights []float64) *Index {
	ix := New(len(heights))
	for i, h := range heights {
		if h < 0 {
			h = 0
		}
		ix.vals[i] = h
		ix.total += h
	}
	for i := 1; i <= len(ix.vals); i++ {
		ix.tree[i] += ix.vals[i-1]
		if parent := i + (i & -i); parent <= len(ix.vals) {
			ix.tree[parent] += ix.tree[i]
		}
	}
	return ix
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.vals)
}

// Total returns the summed height of all entries in O(1).
func (ix *Index) Total() float64 {
	return ix.total
}

// Get returns the height of entry i, or 0 if i is out of range.
// Out-of-range reads happen mid-edit, before the owner resizes the
// index; they must not crash a render pass.
func (ix *Index) Get(i int) float64 {
	if i < 0 || i >= len(ix.vals) {
		return 0
	}
	return ix.vals[i]
}

// Set updates the height of entry i in O(log n). Out-of-range indices
// are ignored and negative heights are treated as 0.
func (ix *Index) Set(i int, h float64) {
	if i < 0 || i >= len(ix.vals) {
		return
	}
	if h < 0 {
		h = 0
	}
	delta := h - ix.vals[i]
	if delta == 0 {
		return
	}
	ix.vals[i] = h
	ix.total += delta
	for j := i + 1; j <= len(ix.vals); j += j & -j {
		ix.tree[j] += delta
	}
}

// PrefixSum returns the summed height of entries [0, end) in O(log n).
// The bound is clamped to the valid range.
func (ix *Index) PrefixSum(end int) float64 {
	if end <= 0 {
		return 0
	}
	if end >= len(ix.vals) {
		return ix.total
	}
	var sum float64
	for j := end; j > 0; j -= j & -j {
		sum += ix.tree[j]
	}
	return sum
}

// RangeSum returns the summed height of entries [start, end).
// An empty or inverted range sums to 0.
func (ix *Index) RangeSum(start, end int) float64 {
	if end <= start {
		return 0
	}
	return ix.PrefixSum(end) - ix.PrefixSum(start)
}

// IndexAt returns the index of the entry containing the vertical
// offset, in O(log n) via binary descent over the tree. Offsets at or
// below 0 map to entry 0; offsets at or past Total() map to Len(), one
// past the last entry. An offset on an entry boundary belongs to the
// entry starting there; zero-height entries at that boundary are
// skipped in favor of the first entry with extent.
func (ix *Index) IndexAt(offset float64) int {
	n := len(ix.vals)
	if n == 0 || offset <= 0 {
		return 0
	}
	if offset >= ix.total {
		return n
	}
	pos := 0
	rem := offset
	for bit := 1 << (bits.Len(uint(n)) - 1); bit > 0; bit >>= 1 {
		next := pos + bit
		if next <= n && ix.tree[next] <= rem {
			pos = next
			rem -= ix.tree[pos]
		}
	}
	return pos
}

// Resize changes the entry count to n, keeping existing heights and
// filling new entries with def. The tree is rebuilt in O(n); resizes
// follow structural edits, which already cost O(n) upstream.
func (ix *Index) Resize(n int, def float64) {
	if n < 0 {
		n = 0
	}
	if def < 0 {
		def = 0
	}
	vals := make([]float64, n)
	kept := copy(vals, ix.vals)
	for i := kept; i < n; i++ {
		vals[i] = def
	}
	*ix = *FromHeights(vals)
}

// Heights returns a copy of the raw per-entry heights.
func (ix *Index) Heights() []float64 {
	out := make([]float64, len(ix.vals))
	copy(out, ix.vals)
	return out
}
