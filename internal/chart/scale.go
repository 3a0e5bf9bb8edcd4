package chart

import "math"

// linearScale maps a data interval onto a pixel interval.
type linearScale struct {
	dMin, dMax float64
	pMin, pMax float64
}

func (s linearScale) at(v float64) float64 {
	if s.dMax == s.dMin {
		return s.pMin
	}
	return s.pMin + (v-s.dMin)/(s.dMax-s.dMin)*(s.pMax-s.pMin)
}

// niceTicks returns evenly spaced round tick values covering [0, max] with
// roughly n intervals. The last tick is >= max.
func niceTicks(max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		max = 1
	}
	step := niceStep(max / float64(n))
	count := int(math.Ceil(max/step-1e-9)) + 1
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = float64(i) * step
	}
	return ticks
}

// niceStep rounds raw up to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	frac := raw / base
	switch {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 2.5:
		return 2.5 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}
