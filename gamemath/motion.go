package gamemath

import "math"

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates linearly between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SpinAngle returns the rotation in radians of an entity that has been
// spinning at ratePerSec radians per second for elapsed seconds. The
// result is reduced to [0, 2π) so it stays stable over long sessions.
func SpinAngle(elapsedSec, ratePerSec float64) float64 {
	a := math.Mod(elapsedSec*ratePerSec, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// WeightedIndex picks an index from weights using roll in [0, 1).
// It walks the entries subtracting each weight from the scaled roll until
// the roll goes below zero. Non-positive weights never win. An empty or
// all-non-positive slice returns -1.
func WeightedIndex(weights []float64, roll float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	r := roll * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		r -= w
		if r < 0 {
			return i
		}
	}
	// roll == 1.0 or float dust: fall back to the last positive entry.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
