package tensor_test

import (
	"math"
	"testing"

	// Packages
	tensor "github.com/mutablelogic/go-triton/pkg/tensor"
	assert "github.com/stretchr/testify/assert"
)

func Test_bf16_001(t *testing.T) {
	assert := assert.New(t)

	// Values exactly representable in bfloat16 survive the round-trip
	values := []float32{0, 1, -1, 0.5, -2.5, 256}
	storage := tensor.BFloat16FromFloat32s(values)
	assert.Equal("BF16", storage.Datatype())
	assert.Equal(values, storage.Float32s())
}

func Test_bf16_002(t *testing.T) {
	assert := assert.New(t)

	// 1.0 in bfloat16 is the upper half of the float32 layout
	storage := tensor.BFloat16FromFloat32s([]float32{1.0})
	assert.Equal(tensor.BFloat16{0x3f80}, storage)

	// Rounding is to nearest, and infinities are preserved
	inf := tensor.BFloat16FromFloat32s([]float32{float32(math.Inf(1))})
	assert.Equal(tensor.BFloat16{0x7f80}, inf)

	// NaN stays NaN rather than rounding to infinity
	nan := tensor.BFloat16FromFloat32s([]float32{float32(math.NaN())})
	out := nan.Float32s()
	assert.True(math.IsNaN(float64(out[0])))
}
