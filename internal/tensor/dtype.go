// Package tensor provides the element types, shapes and raw buffers that the
// histogram kernel consumes.
package tensor

import (
	"fmt"
	"strings"
)

// Number is a constraint for sample and weight element types.
// It uses Go generics so that every sample/weight pairing is type-checked at compile time.
// Only the exact types are allowed, so every Number has a DataType.
type Number interface {
	float64 | float32 | int32
}

// DataType represents runtime type information for buffers.
type DataType int

// Supported data types.
const (
	Float64 DataType = iota
	Float32
	Int32
	Uint32 // histogram counts only
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32, Uint32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	default:
		return "unknown"
	}
}

// IsInput reports whether dt can be used for sample coordinates or weights.
func (dt DataType) IsInput() bool {
	return dt == Float64 || dt == Float32 || dt == Int32
}

// ParseDataType converts a type name to a DataType.
// Accepts the Go names and the C-style aliases "double", "float" and "int32_t".
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float64", "double":
		return Float64, nil
	case "float32", "float":
		return Float32, nil
	case "int32", "int32_t":
		return Int32, nil
	case "uint32", "uint32_t":
		return Uint32, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", s)
	}
}

// DataTypeOf infers the DataType from a type parameter.
func DataTypeOf[T Number]() DataType {
	var dummy T
	return inferDataType(dummy)
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Number](dummy T) DataType {
	switch any(dummy).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case int32:
		return Int32
	default:
		panic("unsupported type")
	}
}
