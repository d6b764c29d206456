package domain

import "math"

// minMarkerRadius is the floor for rendered markers so small and unmeasured
// quakes stay clickable.
const minMarkerRadius = 4.0

// ColorUnknown is the neutral token for quakes with no measured magnitude.
const ColorUnknown = "#9e9e9e"

// colorScale maps inclusive magnitude lower bounds to color tokens, checked
// in descending order with first match winning. Tokens run darkest (high
// magnitude) to lightest (low).
var colorScale = []struct {
	min   float64
	token string
}{
	{5, "#bd0026"},
	{4, "#f03b20"},
	{3, "#fd8d3c"},
	{2, "#feb24c"},
	{1, "#fed976"},
}

// colorBelowOne covers everything under the lowest bound, including
// negative magnitudes, which the feed does report for micro-quakes.
const colorBelowOne = "#ffffb2"

// MarkerRadius maps magnitude to a rendered radius. Growth is exponential:
// every ~1.4 of magnitude doubles the radius. Unmeasured magnitudes get the
// minimum radius.
func MarkerRadius(magnitude *float64) float64 {
	if magnitude == nil {
		return minMarkerRadius
	}
	return math.Max(minMarkerRadius, math.Exp2(*magnitude/1.4))
}

// ColorBucket maps magnitude to a fixed color token. Total over the real
// line: six contiguous buckets plus the unknown case.
func ColorBucket(magnitude *float64) string {
	if magnitude == nil {
		return ColorUnknown
	}
	for _, b := range colorScale {
		if *magnitude >= b.min {
			return b.token
		}
	}
	return colorBelowOne
}
