package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ExpApproach returns the blend factor for exponential approach at rate over dt seconds
// Frame-rate independent: two half-steps equal one full step
func ExpApproach(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// RandRange maps a uniform sample u in [0,1) onto [lo, hi)
func RandRange(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
