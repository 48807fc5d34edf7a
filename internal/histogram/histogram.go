package histogram

import (
	"github.com/born-ml/histnd/internal/tensor"
)

// Histogram owns a pair of output buffers and accumulates successive sample
// chunks into them with Fill.
//
// Example:
//
//	h, _ := histogram.New(histogram.Layout{Ranges: []float64{0, 10}, Bins: []int{5}})
//	for chunk := range chunks {
//	    _ = histogram.Fill[float64, float64](h, chunk, nil, histogram.Options[float64]{})
//	}
//	counts := h.Counts()
type Histogram struct {
	layout  Layout
	shape   tensor.Shape
	histo   *tensor.RawTensor // uint32
	cumul   *tensor.RawTensor // float64
	dropped Dropped
}

// New validates layout and allocates zeroed outputs for it.
// The layout is copied; later changes to the caller's slices have no effect.
func New(layout Layout) (*Histogram, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	layout = layout.Clone()
	shape := layout.Shape()

	histo, err := tensor.NewRaw(shape, tensor.Uint32)
	if err != nil {
		return nil, err
	}
	cumul, err := tensor.NewRaw(shape, tensor.Float64)
	if err != nil {
		return nil, err
	}
	return &Histogram{
		layout: layout,
		shape:  shape,
		histo:  histo,
		cumul:  cumul,
	}, nil
}

// Fill accumulates one chunk of samples into h. See Accumulate for the
// buffer conventions. Filling chunks one after another gives the same result
// as a single Accumulate over their concatenation, in any order.
func Fill[S, W tensor.Number](h *Histogram, sample []S, weights []W, opts Options[W]) error {
	return Accumulate(sample, weights, h.layout, h.output(), opts)
}

// FillRaw is Fill for type-erased sample and weight buffers.
func (h *Histogram) FillRaw(sample, weights *tensor.RawTensor, opts RawOptions) error {
	return AccumulateRaw(sample, weights, h.layout, RawOutput{Histo: h.histo, Cumul: h.cumul, Dropped: &h.dropped}, opts)
}

func (h *Histogram) output() Output {
	return Output{Histo: h.histo.AsUint32(), Cumul: h.cumul.AsFloat64(), Dropped: &h.dropped}
}

// Layout returns a copy of the histogram's layout.
func (h *Histogram) Layout() Layout {
	return h.layout.Clone()
}

// Shape returns the histogram shape.
func (h *Histogram) Shape() tensor.Shape {
	return h.shape.Clone()
}

// Counts returns the occurrence counts, flattened row-major.
// The slice aliases the histogram's storage.
func (h *Histogram) Counts() []uint32 {
	return h.histo.AsUint32()
}

// Cumul returns the weighted sums, flattened row-major.
// The slice aliases the histogram's storage.
func (h *Histogram) Cumul() []float64 {
	return h.cumul.AsFloat64()
}

// CountsTensor returns the counts as a Uint32 tensor shaped like the layout.
func (h *Histogram) CountsTensor() *tensor.RawTensor {
	return h.histo
}

// CumulTensor returns the weighted sums as a Float64 tensor shaped like the layout.
func (h *Histogram) CumulTensor() *tensor.RawTensor {
	return h.cumul
}

// Edges returns the bin edges of every dimension.
func (h *Histogram) Edges() [][]float64 {
	edges := make([][]float64, h.layout.NDim())
	for d := range edges {
		edges[d] = h.layout.Edges(d)
	}
	return edges
}

// At returns the count and weighted sum of the cell at the given multi-index.
func (h *Histogram) At(idx ...int) (uint32, float64, error) {
	off, err := h.shape.FlatIndex(idx)
	if err != nil {
		return 0, 0, err
	}
	return h.Counts()[off], h.Cumul()[off], nil
}

// Total returns the number of samples binned so far.
func (h *Histogram) Total() uint64 {
	var n uint64
	for _, c := range h.Counts() {
		n += uint64(c)
	}
	return n
}

// Dropped returns how many samples were excluded so far.
func (h *Histogram) Dropped() Dropped {
	return h.dropped
}

// Reset zeroes both outputs and the drop counters.
func (h *Histogram) Reset() {
	h.histo.Zero()
	h.cumul.Zero()
	h.dropped = Dropped{}
}
