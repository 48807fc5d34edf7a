package tensor

import (
	"testing"
)

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float64, 8},
		{Float32, 4},
		{Int32, 4},
		{Uint32, 4},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float64, "float64"},
		{Float32, "float32"},
		{Int32, "int32"},
		{Uint32, "uint32"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestDataTypeIsInput(t *testing.T) {
	for _, dt := range []DataType{Float64, Float32, Int32} {
		if !dt.IsInput() {
			t.Errorf("%s.IsInput() = false, want true", dt)
		}
	}
	if Uint32.IsInput() {
		t.Error("uint32 must not be accepted as an input type")
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"float64", Float64},
		{"double", Float64},
		{" Float32 ", Float32},
		{"float", Float32},
		{"int32", Int32},
		{"int32_t", Int32},
		{"uint32", Uint32},
	}

	for _, tt := range tests {
		got, err := ParseDataType(tt.in)
		if err != nil {
			t.Fatalf("ParseDataType(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDataType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDataType("complex128"); err == nil {
		t.Error("ParseDataType(complex128) should fail")
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := DataTypeOf[float32](); dt != Float32 {
		t.Errorf("DataTypeOf[float32]() = %v, want Float32", dt)
	}
	if dt := DataTypeOf[float64](); dt != Float64 {
		t.Errorf("DataTypeOf[float64]() = %v, want Float64", dt)
	}
	if dt := DataTypeOf[int32](); dt != Int32 {
		t.Errorf("DataTypeOf[int32]() = %v, want Int32", dt)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{1},
		{3, 4},
		{2, 3, 4},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{0},
		{3, 0},
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Fatalf("Shape%v.ComputeStrides() length = %d, want %d", tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides()[%d] = %d, want %d", tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestFlatIndexMatchesStrides(t *testing.T) {
	s := Shape{2, 3, 4}
	strides := s.ComputeStrides()

	for off := 0; off < s.NumElements(); off++ {
		idx := s.Unravel(off)

		got, err := s.FlatIndex(idx)
		if err != nil {
			t.Fatalf("FlatIndex(%v) failed: %v", idx, err)
		}
		if got != off {
			t.Errorf("FlatIndex(Unravel(%d)) = %d", off, got)
		}

		viaStrides := 0
		for d := range idx {
			viaStrides += idx[d] * strides[d]
		}
		if viaStrides != off {
			t.Errorf("stride offset for %v = %d, want %d", idx, viaStrides, off)
		}
	}
}

func TestFlatIndexErrors(t *testing.T) {
	s := Shape{2, 3}
	if _, err := s.FlatIndex([]int{1}); err == nil {
		t.Error("FlatIndex with wrong rank should fail")
	}
	if _, err := s.FlatIndex([]int{2, 0}); err == nil {
		t.Error("FlatIndex with out-of-bounds index should fail")
	}
	if _, err := s.FlatIndex([]int{0, -1}); err == nil {
		t.Error("FlatIndex with negative index should fail")
	}
}
