package domain

import "sort"

// Threshold bounds for the minimum-magnitude filter, matching the UI slider.
const (
	MinThreshold = 0.0
	MaxThreshold = 6.0
)

// ClampThreshold forces a threshold into [MinThreshold, MaxThreshold].
func ClampThreshold(t float64) float64 {
	if t < MinThreshold {
		return MinThreshold
	}
	if t > MaxThreshold {
		return MaxThreshold
	}
	return t
}

// FilterByMagnitude returns the order-preserving subset of quakes whose
// effective magnitude meets the threshold. Pure; the input is never modified.
func FilterByMagnitude(quakes []Quake, threshold float64) []Quake {
	out := make([]Quake, 0, len(quakes))
	for _, q := range quakes {
		if EffectiveMagnitude(q) >= threshold {
			out = append(out, q)
		}
	}
	return out
}

// SortByMagnitudeDesc returns a copy sorted by effective magnitude,
// descending. The sort is stable, so ties keep their feed order.
func SortByMagnitudeDesc(quakes []Quake) []Quake {
	out := make([]Quake, len(quakes))
	copy(out, quakes)
	sort.SliceStable(out, func(i, j int) bool {
		return EffectiveMagnitude(out[i]) > EffectiveMagnitude(out[j])
	})
	return out
}
