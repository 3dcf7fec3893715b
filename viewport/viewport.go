// Package viewport computes which entries of a height-indexed sequence
// are visible for a given scroll offset, plus the spacer heights a
// virtualized view needs above and below the rendered slice.
package viewport

import "github.com/dshills/textgeom/core"

// HeightSource answers cumulative-height queries for a sequence of
// blocks or lines. Both heightindex.Index and blocklayout.Index
// satisfy it.
type HeightSource interface {
	// Len returns the number of entries.
	Len() int
	// Total returns the summed height of all entries.
	Total() float64
	// PrefixSum returns the summed height of entries [0, end).
	PrefixSum(end int) float64
	// IndexAt returns the entry containing the vertical offset, or
	// Len() when the offset is at or past Total().
	IndexAt(offset float64) int
}

// Metrics describes one virtualized frame: the half-open range of
// entries to render and the unrendered space above and below it.
//
// TopSpacer is always PrefixSum(Range.Start) and BottomSpacer is
// always Total - PrefixSum(Range.End), so stacking
// TopSpacer + rendered entries + BottomSpacer reproduces the full
// document height.
type Metrics struct {
	Range        core.Range
	TopSpacer    float64
	BottomSpacer float64
	Total        float64
}

// DefaultOverscan is the margin Calculator users typically want: two
// extra entries rendered on each side of the strictly visible range,
// absorbing pop-in during fast scrolling at negligible render cost.
const DefaultOverscan = 2

// Calculator computes visible ranges. It holds only the overscan
// margin, so values are cheap to copy and safe to share.
type Calculator struct {
	overscan int
}

// NewCalculator creates a calculator rendering overscan extra entries
// on each side of the strict range. Negative margins clamp to 0.
func NewCalculator(overscan int) Calculator {
	if overscan < 0 {
		overscan = 0
	}
	return Calculator{overscan: overscan}
}

// Overscan returns the configured margin.
func (c Calculator) Overscan() int {
	return c.overscan
}

// Visible returns the frame metrics for the given scroll offset and
// viewport height. The strict range starts at the largest entry whose
// top edge is at or above the scroll offset and ends before the first
// entry fully below the viewport; the overscan margin then widens both
// sides. Identical inputs always produce identical metrics.
func (c Calculator) Visible(src HeightSource, scrollTop, height float64) Metrics {
	count := src.Len()
	total := src.Total()
	if scrollTop < 0 {
		scrollTop = 0
	}
	if height < 0 {
		height = 0
	}

	start := src.IndexAt(scrollTop)

	bottom := scrollTop + height
	var end int
	if bottom >= total {
		end = count
	} else {
		end = src.IndexAt(bottom)
		if src.PrefixSum(end) < bottom {
			end++
		}
	}

	rng := core.Range{Start: start - c.overscan, End: end + c.overscan}.Clamp(count)

	return Metrics{
		Range:        rng,
		TopSpacer:    src.PrefixSum(rng.Start),
		BottomSpacer: total - src.PrefixSum(rng.End),
		Total:        total,
	}
}
