// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public buffer types consumed by the histogram kernel.
//
// The package defines:
//   - Number: constraint for sample and weight element types
//   - DataType: runtime element type tag
//   - Shape: row-major dimensions
//   - RawTensor: type-erased buffer with shape and dtype
//
// Example:
//
//	sample, _ := tensor.FromSlice([]float32{0.1, 0.2, 0.3, 0.4}, tensor.Shape{2, 2})
//	counts, _ := tensor.NewRaw(tensor.Shape{4, 4}, tensor.Uint32)
package tensor

import (
	"github.com/born-ml/histnd/internal/tensor"
)

// Type aliases for public API

// Number is a constraint for sample and weight element types.
// Supported types: float64, float32, int32.
type Number = tensor.Number

// DataType represents the element type of a buffer.
type DataType = tensor.DataType

// Data type constants.
const (
	Float64 DataType = tensor.Float64
	Float32 DataType = tensor.Float32
	Int32   DataType = tensor.Int32
	Uint32  DataType = tensor.Uint32
)

// Shape represents the dimensions of a buffer.
// Example: Shape{2, 3, 4} represents a 3D buffer with dimensions 2×3×4.
type Shape = tensor.Shape

// ParseDataType converts a type name ("float64", "double", "float32",
// "float", "int32", "uint32") to a DataType.
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// DataTypeOf returns the DataType of the type parameter.
//
// Example:
//
//	tensor.DataTypeOf[float32]() // tensor.Float32
func DataTypeOf[T Number]() DataType {
	return tensor.DataTypeOf[T]()
}
