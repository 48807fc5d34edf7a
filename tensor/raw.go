// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/histnd/internal/tensor"
)

// RawTensor is the type-erased buffer representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Zero-copy typed access via AsFloat64(), AsFloat32(), AsInt32(), AsUint32()
//   - In-place clearing via Zero()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()  // Zero-copy access
type RawTensor = tensor.RawTensor

// NewRaw creates a new zero-filled raw tensor with the given shape and dtype.
// The leading dimension may be zero for an empty batch.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a raw tensor from a Go slice. The data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
func FromSlice[T Number](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}
