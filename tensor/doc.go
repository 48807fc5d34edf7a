// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public buffer types consumed by the histogram kernel.
//
// # Overview
//
// The histogram kernel reads sample and weight buffers and writes count and
// cumulative buffers. This package provides:
//   - Generic element constraint (Number) for compile-time dispatch
//   - Runtime dtype tags (DataType) for type-erased buffers
//   - Row-major shapes with stride and flat-index helpers
//
// # Supported Data Types
//
// Samples and weights may each be:
//   - float64, float32 (floating-point)
//   - int32 (signed integers)
//
// Histogram counts are always uint32 and cumulative sums always float64.
//
// # Memory Layout
//
// All buffers are row-major: dimension 0 varies slowest.
//
//	s := tensor.Shape{2, 3}
//	s.ComputeStrides()         // [3 1]
//	s.FlatIndex([]int{1, 2})   // 5
package tensor
