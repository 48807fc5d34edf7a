package histogram

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/born-ml/histnd/internal/tensor"
)

// Layout describes the uniform binning grid.
//
// Ranges holds one (min, max) pair per dimension, flattened:
//
//	Ranges: []float64{xmin, xmax, ymin, ymax}
//	Bins:   []int{10, 20}
//
// Each dimension d is split into Bins[d] equal-width bins covering
// [Ranges[2d], Ranges[2d+1]). Whether the upper edge itself is inside the
// last bin is decided per call by Options.LastBinClosed.
type Layout struct {
	Ranges []float64
	Bins   []int
}

// axis is the validated, precomputed form of one layout dimension.
type axis struct {
	lo, hi float64
	width  float64
	bins   int
}

// NDim returns the number of dimensions.
func (l Layout) NDim() int {
	return len(l.Bins)
}

// Shape returns the output histogram shape (one entry per dimension).
func (l Layout) Shape() tensor.Shape {
	return tensor.Shape(l.Bins).Clone()
}

// Size returns the number of bin cells, the length both output buffers must have.
func (l Layout) Size() int {
	if len(l.Bins) == 0 {
		return 0
	}
	return l.Shape().NumElements()
}

// Min returns the lower range bound of dimension dim.
func (l Layout) Min(dim int) float64 {
	return l.Ranges[2*dim]
}

// Max returns the upper range bound of dimension dim.
func (l Layout) Max(dim int) float64 {
	return l.Ranges[2*dim+1]
}

// Width returns the bin width of dimension dim.
func (l Layout) Width(dim int) float64 {
	return (l.Max(dim) - l.Min(dim)) / float64(l.Bins[dim])
}

// Edges returns the Bins[dim]+1 bin edges of dimension dim.
// The first edge is exactly the range minimum and the last exactly the maximum.
func (l Layout) Edges(dim int) []float64 {
	n := l.Bins[dim]
	lo, hi := l.Min(dim), l.Max(dim)
	w := l.Width(dim)

	edges := make([]float64, n+1)
	for k := 0; k < n; k++ {
		edges[k] = lo + float64(k)*w
	}
	edges[n] = hi
	return edges
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	return Layout{
		Ranges: append([]float64(nil), l.Ranges...),
		Bins:   append([]int(nil), l.Bins...),
	}
}

// Validate checks the layout. Every failing dimension is reported;
// use errors.Is with the sentinel errors or StatusOf to classify the result.
func (l Layout) Validate() error {
	_, err := l.compile()
	return err
}

// compile validates the layout and precomputes per-dimension bin widths.
// The product of all bin counts must fit in an int.
func (l Layout) compile() ([]axis, error) {
	if l.Bins == nil {
		return nil, fmt.Errorf("bin counts: %w", ErrNilBuffer)
	}
	if l.Ranges == nil {
		return nil, fmt.Errorf("ranges: %w", ErrNilBuffer)
	}
	if len(l.Bins) == 0 {
		return nil, ErrInvalidDimension
	}
	if len(l.Ranges) != 2*len(l.Bins) {
		return nil, fmt.Errorf("%w: %d range values for %d dimensions", ErrSizeMismatch, len(l.Ranges), len(l.Bins))
	}

	axes := make([]axis, len(l.Bins))
	size := 1
	var errs error
	for d, n := range l.Bins {
		lo, hi := l.Ranges[2*d], l.Ranges[2*d+1]

		if n <= 0 {
			errs = multierr.Append(errs, &DimensionError{
				Dim:    d,
				Err:    ErrInvalidBinCount,
				Detail: fmt.Sprintf("got %d bins", n),
			})
			continue
		}

		if size > math.MaxInt/n {
			errs = multierr.Append(errs, &DimensionError{
				Dim:    d,
				Err:    ErrInvalidBinCount,
				Detail: fmt.Sprintf("%d bins overflow the total cell count", n),
			})
			continue
		}
		size *= n

		w := (hi - lo) / float64(n)
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(w > 0) || math.IsInf(w, 0) {
			errs = multierr.Append(errs, &DimensionError{
				Dim:    d,
				Err:    ErrInvalidRange,
				Detail: fmt.Sprintf("range [%v, %v] with %d bins", lo, hi, n),
			})
			continue
		}

		axes[d] = axis{lo: lo, hi: hi, width: w, bins: n}
	}
	if errs != nil {
		return nil, errs
	}
	return axes, nil
}
