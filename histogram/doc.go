// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package histogram computes N-dimensional histograms of D-dimensional samples.
//
// # Overview
//
// One pass over the samples fills two outputs of identical shape:
//   - a uint32 occurrence count per bin
//   - a float64 sum of sample weights per bin (the cumulative histogram)
//
// Each dimension is split into equal-width bins over a [min, max) range.
// Bins are half-open; set Options.LastBinClosed to also count samples equal
// to max in the last bin.
//
// # Basic Usage
//
//	layout := histogram.Layout{
//	    Ranges: []float64{0, 10, -1, 1}, // (min, max) per dimension
//	    Bins:   []int{5, 4},
//	}
//	out := histogram.Output{
//	    Histo: make([]uint32, layout.Size()),
//	    Cumul: make([]float64, layout.Size()),
//	}
//	sample := []float32{0.5, 0.1, 9.9, -0.7} // two 2-D points
//	err := histogram.Accumulate[float32, float64](sample, nil, layout, out, histogram.Options[float64]{})
//
// # Weights and Filters
//
// Weights may be nil (every point weighs 1). When present, FilterWeightMin and
// FilterWeightMax drop points whose weight lies outside [WeightMin, WeightMax].
// Bounds are inclusive and compared in the weight's element type.
//
// # Accumulation
//
// Outputs are added into, never cleared. Zero them once, then call
// Accumulate repeatedly with successive chunks to build a running histogram.
// Histogram wraps this pattern and owns its buffers.
//
// # Errors
//
// Invalid layouts or buffers fail before any point is processed. Use
// errors.Is with the Err* values, or StatusOf for a status code. Samples
// outside the grid are not errors; they are skipped and optionally counted
// in Output.Dropped.
package histogram
