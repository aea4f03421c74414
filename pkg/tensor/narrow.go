package tensor

import (
	"math"
)

// Checked narrowing casts from the base representation an element is
// parsed into (int64, uint64 or float64) down to the target element
// width. An element which does not fit is reported rather than
// wrapped, and the codec drops it. The lossy policy lives here and
// nowhere else.

func narrowInt[T ~int8 | ~int16 | ~int32 | ~int64](v int64) (T, bool) {
	t := T(v)
	if int64(t) != v {
		return 0, false
	}
	return t, true
}

func narrowUint[T ~uint8 | ~uint16 | ~uint64](v uint64) (T, bool) {
	t := T(v)
	if uint64(t) != v {
		return 0, false
	}
	return t, true
}

func narrowFloat[T ~float32 | ~float64](v float64) (T, bool) {
	t := T(v)
	// a finite value which overflows the target width is dropped
	if math.IsInf(float64(t), 0) && !math.IsInf(v, 0) {
		return 0, false
	}
	return t, true
}
