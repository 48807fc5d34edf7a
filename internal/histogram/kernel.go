// Package histogram implements a single-pass N-dimensional histogram kernel.
//
// For every D-dimensional sample point the kernel resolves one bin per
// dimension on a uniform grid, composes the row-major cell offset and adds
// 1 to the count histogram and the sample's weight to the cumulative
// histogram. Samples outside the grid, or rejected by weight thresholds,
// are skipped.
//
// Sample coordinates and weights can each be float64, float32 or int32.
// Accumulate covers all nine pairings at compile time; AccumulateRaw
// dispatches on runtime dtype tags for type-erased buffers.
package histogram

import (
	"fmt"
	"math"

	"github.com/born-ml/histnd/internal/tensor"
)

// Accumulate bins sample into out.
//
// sample is a flat buffer of n_elem points with layout.NDim() coordinates
// each; point i, dimension d lives at sample[i*ndim+d]. weights is either
// nil (every point weighs 1 and weight thresholds are ignored) or holds one
// weight per point. A NaN weight fails any active threshold; without
// thresholds it is binned and turns its Cumul cell into NaN.
//
// Preconditions: out.Histo and out.Cumul have layout.Size() elements and were
// zeroed by the caller before the first call.
// Postcondition: each included point added exactly 1 to one Histo cell and
// its weight, widened to float64, to the same Cumul cell. Nothing else in
// out changes.
//
// The layout and buffer sizes are validated before any point is processed;
// on error out is left untouched. Points are processed in input order.
func Accumulate[S, W tensor.Number](sample []S, weights []W, layout Layout, out Output, opts Options[W]) error {
	axes, err := layout.compile()
	if err != nil {
		return err
	}

	nDim := len(axes)
	switch {
	case sample == nil:
		return fmt.Errorf("sample: %w", ErrNilBuffer)
	case out.Histo == nil:
		return fmt.Errorf("histogram output: %w", ErrNilBuffer)
	case out.Cumul == nil:
		return fmt.Errorf("cumulative output: %w", ErrNilBuffer)
	}
	if len(sample)%nDim != 0 {
		return fmt.Errorf("%w: sample length %d is not a multiple of %d dimensions", ErrSizeMismatch, len(sample), nDim)
	}
	nElem := len(sample) / nDim
	if weights != nil && len(weights) != nElem {
		return fmt.Errorf("%w: %d weights for %d points", ErrSizeMismatch, len(weights), nElem)
	}
	size := layout.Size()
	if len(out.Histo) != size || len(out.Cumul) != size {
		return fmt.Errorf("%w: outputs have %d and %d cells, layout has %d",
			ErrSizeMismatch, len(out.Histo), len(out.Cumul), size)
	}

	var dropped Dropped
	weighted := weights != nil
	filterMin := weighted && opts.FilterWeightMin
	filterMax := weighted && opts.FilterWeightMax

	for i := 0; i < nElem; i++ {
		weight := 1.0
		if weighted {
			w := weights[i]
			if (filterMin && !(w >= opts.WeightMin)) || (filterMax && !(w <= opts.WeightMax)) {
				dropped.Weight++
				continue
			}
			weight = float64(w)
		}

		offset, ok := binOffset(sample[i*nDim:(i+1)*nDim], axes, opts.LastBinClosed)
		if !ok {
			dropped.Range++
			continue
		}

		out.Histo[offset]++
		out.Cumul[offset] += weight
	}

	if out.Dropped != nil {
		out.Dropped.add(dropped)
	}
	return nil
}

// binOffset resolves every coordinate of one point and composes the
// row-major offset. ok is false if any dimension falls outside its range.
func binOffset[S tensor.Number](point []S, axes []axis, lastBinClosed bool) (offset int, ok bool) {
	for d := range axes {
		bin, inside := axes[d].bin(float64(point[d]), lastBinClosed)
		if !inside {
			return 0, false
		}
		offset = offset*axes[d].bins + bin
	}
	return offset, true
}

// bin resolves coordinate x to a bin index of the axis.
// Bins are half-open [edge_k, edge_k+1); x == hi belongs to the last bin only
// when lastBinClosed is set. NaN is never inside.
func (a *axis) bin(x float64, lastBinClosed bool) (int, bool) {
	if !(x >= a.lo) {
		return 0, false
	}
	if x >= a.hi {
		if lastBinClosed && x == a.hi {
			return a.bins - 1, true
		}
		return 0, false
	}

	// Rounding can push x just below hi onto index bins.
	idx := int(math.Floor((x - a.lo) / a.width))
	if idx >= a.bins {
		idx = a.bins - 1
	}
	return idx, true
}
