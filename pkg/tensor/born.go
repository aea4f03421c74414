package tensor

import (
	// Packages
	borntensor "github.com/born-ml/born/tensor"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// FromTensor builds an input from a multi-dimensional array, deriving
// the shape from the source so it cannot disagree with the element
// count. The element data is copied; the source array is not aliased.
func FromTensor[T borntensor.DType, B borntensor.Backend](name string, t *borntensor.Tensor[T, B]) *Input {
	var data Data
	switch v := any(t.Data()).(type) {
	case []bool:
		data = Bool(append([]bool(nil), v...))
	case []uint8:
		data = Uint8(append([]uint8(nil), v...))
	case []int32:
		data = Int32(append([]int32(nil), v...))
	case []int64:
		data = Int64(append([]int64(nil), v...))
	case []float32:
		data = Float32(append([]float32(nil), v...))
	case []float64:
		data = Float64(append([]float64(nil), v...))
	}
	return &Input{
		Name:  name,
		Shape: append([]int(nil), t.Shape()...),
		Data:  data,
	}
}
