package vm

import "math"

func mathMod(l, r float64) float64 {
	return math.Mod(l, r)
}

func mathPow(l, r float64) float64 {
	return math.Pow(l, r)
}
