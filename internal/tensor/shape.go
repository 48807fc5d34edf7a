package tensor

import "fmt"

// Shape represents the dimensions of a buffer.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex converts a multi-index to a row-major flat offset.
//
// Dimension 0 varies slowest:
//
//	Shape{2, 3}.FlatIndex([]int{1, 2}) // 1*3 + 2 = 5
//
// Returns an error if the index rank or any component is out of bounds.
func (s Shape) FlatIndex(idx []int) (int, error) {
	if len(idx) != len(s) {
		return 0, fmt.Errorf("index rank %d does not match shape rank %d", len(idx), len(s))
	}
	strides := s.ComputeStrides()
	offset := 0
	for d, i := range idx {
		if i < 0 || i >= s[d] {
			return 0, fmt.Errorf("index %d out of bounds for dimension %d of size %d", i, d, s[d])
		}
		offset += i * strides[d]
	}
	return offset, nil
}

// Unravel converts a row-major flat offset back into a multi-index.
// It is the inverse of FlatIndex for offsets in [0, NumElements()).
func (s Shape) Unravel(offset int) []int {
	idx := make([]int, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		idx[d] = offset % s[d]
		offset /= s[d]
	}
	return idx
}
