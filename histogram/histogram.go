// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package histogram

import (
	"github.com/born-ml/histnd/internal/histogram"
	"github.com/born-ml/histnd/tensor"
)

// Type aliases for public API

// Layout describes the uniform binning grid: flattened (min, max) pairs and
// a bin count per dimension.
type Layout = histogram.Layout

// Options configures one call. W is the weight element type.
type Options[W tensor.Number] = histogram.Options[W]

// Output holds the caller-owned count and cumulative buffers.
type Output = histogram.Output

// Dropped counts excluded samples.
type Dropped = histogram.Dropped

// Flags is the bitset form of Options.
type Flags = histogram.Flags

// Option bits.
const (
	FlagNone          Flags = histogram.FlagNone
	FlagWeightMin     Flags = histogram.FlagWeightMin
	FlagWeightMax     Flags = histogram.FlagWeightMax
	FlagLastBinClosed Flags = histogram.FlagLastBinClosed
)

// RawOptions configures AccumulateRaw.
type RawOptions = histogram.RawOptions

// RawOutput holds type-erased output buffers.
type RawOutput = histogram.RawOutput

// Histogram owns output buffers and accumulates sample chunks into them.
type Histogram = histogram.Histogram

// Status is the status-code view of a call result.
type Status = histogram.Status

// Status codes.
const (
	StatusOK               Status = histogram.StatusOK
	StatusInvalidDimension Status = histogram.StatusInvalidDimension
	StatusInvalidRange     Status = histogram.StatusInvalidRange
	StatusInvalidBinCount  Status = histogram.StatusInvalidBinCount
	StatusNilBuffer        Status = histogram.StatusNilBuffer
	StatusSizeMismatch     Status = histogram.StatusSizeMismatch
	StatusUnsupportedType  Status = histogram.StatusUnsupportedType
	StatusUnknown          Status = histogram.StatusUnknown
)

// DimensionError reports a failure tied to one layout dimension.
type DimensionError = histogram.DimensionError

// Errors returned by this package.
var (
	ErrInvalidDimension = histogram.ErrInvalidDimension
	ErrInvalidRange     = histogram.ErrInvalidRange
	ErrInvalidBinCount  = histogram.ErrInvalidBinCount
	ErrNilBuffer        = histogram.ErrNilBuffer
	ErrSizeMismatch     = histogram.ErrSizeMismatch
	ErrUnsupportedType  = histogram.ErrUnsupportedType
)

// Accumulate bins sample (flat, NDim coordinates per point) into out.
// weights is nil or holds one weight per point. Outputs are added into.
//
// Example:
//
//	layout := histogram.Layout{Ranges: []float64{0, 10}, Bins: []int{5}}
//	out := histogram.Output{Histo: make([]uint32, 5), Cumul: make([]float64, 5)}
//	err := histogram.Accumulate(values, weights, layout, out, histogram.Options[float32]{LastBinClosed: true})
func Accumulate[S, W tensor.Number](sample []S, weights []W, layout Layout, out Output, opts Options[W]) error {
	return histogram.Accumulate(sample, weights, layout, out, opts)
}

// AccumulateRaw is Accumulate for type-erased buffers; it dispatches on their dtypes.
func AccumulateRaw(sample, weights *tensor.RawTensor, layout Layout, out RawOutput, opts RawOptions) error {
	return histogram.AccumulateRaw(sample, weights, layout, out, opts)
}

// OptionsFromFlags converts a flag bitset and thresholds into Options.
func OptionsFromFlags[W tensor.Number](f Flags, weightMin, weightMax W) Options[W] {
	return histogram.OptionsFromFlags(f, weightMin, weightMax)
}

// New creates a Histogram with zeroed outputs for layout.
func New(layout Layout) (*Histogram, error) {
	return histogram.New(layout)
}

// Fill accumulates one chunk of samples into h.
//
// Example:
//
//	h, _ := histogram.New(layout)
//	_ = histogram.Fill(h, chunk1, weights1, opts)
//	_ = histogram.Fill(h, chunk2, weights2, opts)
func Fill[S, W tensor.Number](h *Histogram, sample []S, weights []W, opts Options[W]) error {
	return histogram.Fill(h, sample, weights, opts)
}

// StatusOf maps an error returned by this package to its status code.
func StatusOf(err error) Status {
	return histogram.StatusOf(err)
}
