package chart

import "math"

// Scale maps v linearly from [inLo, inHi] onto [outLo, outHi]. Values
// outside the input range extrapolate. A degenerate input range maps to
// outLo.
func Scale(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// ScaleCell is Scale rounded and clamped to an integer cell range.
func ScaleCell(v, inLo, inHi float64, outLo, outHi int) int {
	f := math.Round(Scale(v, inLo, inHi, float64(outLo), float64(outHi)))
	lo, hi := outLo, outHi
	if lo > hi {
		lo, hi = hi, lo
	}
	if f < float64(lo) {
		return lo
	}
	if f > float64(hi) {
		return hi
	}
	return int(f)
}
