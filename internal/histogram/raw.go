package histogram

import (
	"fmt"
	"math"

	"github.com/born-ml/histnd/internal/tensor"
)

// RawOptions configures AccumulateRaw. Thresholds are converted to the weight
// tensor's element type before comparison, so an int32 weight buffer compares
// against truncated thresholds.
type RawOptions struct {
	Flags     Flags
	WeightMin float64
	WeightMax float64
}

// RawOutput holds type-erased output buffers.
// Histo must be Uint32 and Cumul Float64, both shaped like Layout.Shape().
type RawOutput struct {
	Histo   *tensor.RawTensor
	Cumul   *tensor.RawTensor
	Dropped *Dropped
}

// AccumulateRaw is Accumulate over type-erased buffers. It dispatches on the
// sample and weight dtypes to the matching generic instantiation.
//
// sample is either [n_elem, ndim] or a flat 1-D buffer of n_elem*ndim values;
// n_elem may be zero. weights may be nil.
func AccumulateRaw(sample, weights *tensor.RawTensor, layout Layout, out RawOutput, opts RawOptions) error {
	if sample == nil {
		return fmt.Errorf("sample: %w", ErrNilBuffer)
	}
	if out.Histo == nil || out.Cumul == nil {
		return fmt.Errorf("output: %w", ErrNilBuffer)
	}
	if err := layout.Validate(); err != nil {
		return err
	}

	if !sample.DType().IsInput() {
		return fmt.Errorf("sample: %w: %s", ErrUnsupportedType, sample.DType())
	}
	if weights != nil && !weights.DType().IsInput() {
		return fmt.Errorf("weights: %w: %s", ErrUnsupportedType, weights.DType())
	}
	if out.Histo.DType() != tensor.Uint32 {
		return fmt.Errorf("histogram output: %w: %s (want uint32)", ErrUnsupportedType, out.Histo.DType())
	}
	if out.Cumul.DType() != tensor.Float64 {
		return fmt.Errorf("cumulative output: %w: %s (want float64)", ErrUnsupportedType, out.Cumul.DType())
	}

	switch s := sample.Shape(); len(s) {
	case 1:
	case 2:
		if s[1] != layout.NDim() {
			return fmt.Errorf("%w: sample shape %v for %d dimensions", ErrSizeMismatch, s, layout.NDim())
		}
	default:
		return fmt.Errorf("%w: sample must be 1-D or 2-D, got shape %v", ErrSizeMismatch, s)
	}
	shape := layout.Shape()
	if !out.Histo.Shape().Equal(shape) || !out.Cumul.Shape().Equal(shape) {
		return fmt.Errorf("%w: output shapes %v and %v, layout shape %v",
			ErrSizeMismatch, out.Histo.Shape(), out.Cumul.Shape(), shape)
	}

	o := Output{Histo: out.Histo.AsUint32(), Cumul: out.Cumul.AsFloat64(), Dropped: out.Dropped}
	switch sample.DType() {
	case tensor.Float64:
		return accumulateWeights(sample.AsFloat64(), weights, layout, o, opts)
	case tensor.Float32:
		return accumulateWeights(sample.AsFloat32(), weights, layout, o, opts)
	default:
		return accumulateWeights(sample.AsInt32(), weights, layout, o, opts)
	}
}

// accumulateWeights completes the dispatch on the weight dtype.
func accumulateWeights[S tensor.Number](sample []S, weights *tensor.RawTensor, layout Layout, out Output, opts RawOptions) error {
	if weights == nil {
		return Accumulate[S, float64](sample, nil, layout, out, OptionsFromFlags(opts.Flags, opts.WeightMin, opts.WeightMax))
	}

	switch weights.DType() {
	case tensor.Float64:
		return Accumulate(sample, weights.AsFloat64(), layout, out,
			OptionsFromFlags(opts.Flags, opts.WeightMin, opts.WeightMax))
	case tensor.Float32:
		return Accumulate(sample, weights.AsFloat32(), layout, out,
			OptionsFromFlags(opts.Flags, float32(opts.WeightMin), float32(opts.WeightMax)))
	default:
		return Accumulate(sample, weights.AsInt32(), layout, out,
			OptionsFromFlags(opts.Flags, toInt32(opts.WeightMin), toInt32(opts.WeightMax)))
	}
}

// toInt32 truncates toward zero and saturates at the int32 limits.
func toInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}
