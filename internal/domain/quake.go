package domain

import "time"

// Quake is the flat, normalized representation of one feed feature.
// Pointer fields model values the feed reports as null or omits.
type Quake struct {
	ID        string   `json:"id"`
	Magnitude *float64 `json:"magnitude"`
	Place     string   `json:"place"`
	Time      int64    `json:"time"` // epoch milliseconds
	URL       string   `json:"url"`
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Depth     *float64 `json:"depth"` // kilometers
}

// OriginTime returns the quake's origin time as a UTC time.Time.
func (q Quake) OriginTime() time.Time {
	return time.UnixMilli(q.Time).UTC()
}

// EffectiveMagnitude returns the magnitude used for threshold comparison and
// ordering: the measured value, or 0 when the feed reported none. Treating
// "unknown" as 0 means unmeasured quakes are hidden at any positive
// threshold; the stored Magnitude stays nil for display.
func EffectiveMagnitude(q Quake) float64 {
	if q.Magnitude == nil {
		return 0
	}
	return *q.Magnitude
}
