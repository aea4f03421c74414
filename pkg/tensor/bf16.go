package tensor

import (
	"math"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// BFloat16FromFloat32s converts float32 values into bfloat16 raw
// storage, rounding to nearest-even. A bfloat16 is the upper sixteen
// bits of the IEEE-754 single-precision layout.
func BFloat16FromFloat32s(values []float32) BFloat16 {
	out := make(BFloat16, len(values))
	for i, value := range values {
		out[i] = bf16frombits(math.Float32bits(value))
	}
	return out
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Float32s expands bfloat16 raw storage back to float32 values.
func (v BFloat16) Float32s() []float32 {
	out := make([]float32, len(v))
	for i, bits := range v {
		out[i] = math.Float32frombits(uint32(bits) << 16)
	}
	return out
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func bf16frombits(bits uint32) uint16 {
	// NaN payloads must not round to infinity
	if bits&0x7fffffff > 0x7f800000 {
		return uint16(bits>>16) | 0x0040
	}
	round := (bits >> 16) & 1
	return uint16((bits + 0x7fff + round) >> 16)
}
