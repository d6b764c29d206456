// Package view composes the filtered, display-ready projection of a quake
// snapshot: sorted list entries, marker descriptors for the map widget, and
// the padded bounding region to frame it to.
package view

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/domain"
)

// boundsPadding expands the fitted region by half a degree on every side so
// edge markers are not flush against the viewport.
const boundsPadding = 0.5

// placeholder is the display token for values the feed reported as null.
const placeholder = "—"

// Marker is one map marker descriptor consumed by the frontend widget.
type Marker struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	Color     string  `json:"color"`
	Popup     Popup   `json:"popup"`
}

// Popup is the pre-rendered popup payload for a marker. All fields are
// display tokens; missing magnitude and depth degrade to a placeholder.
type Popup struct {
	Place     string `json:"place"`
	Magnitude string `json:"magnitude"`
	Depth     string `json:"depth"`
	Time      string `json:"time"`
	URL       string `json:"url"`
}

// ListEntry is one row of the sidebar list, ordered by magnitude descending.
type ListEntry struct {
	ID        string `json:"id"`
	Place     string `json:"place"`
	Magnitude string `json:"magnitude"`
	Time      string `json:"time"`
	URL       string `json:"url"`
}

// Bounds is the region containing every filtered quake, already padded.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// View is the derived projection for one threshold. Bounds is nil when no
// quake matches, in which case the map keeps its previous framing.
type View struct {
	Threshold float64     `json:"threshold"`
	Total     int         `json:"total"`
	Matched   int         `json:"matched"`
	Markers   []Marker    `json:"markers"`
	List      []ListEntry `json:"list"`
	Bounds    *Bounds     `json:"bounds"`
}

// Compose filters the snapshot by threshold and derives the full display
// projection. Pure and synchronous; every call recomputes from scratch so no
// partial update is ever observable.
func Compose(quakes []domain.Quake, threshold float64) View {
	filtered := domain.FilterByMagnitude(quakes, threshold)
	sorted := domain.SortByMagnitudeDesc(filtered)

	markers := make([]Marker, len(sorted))
	list := make([]ListEntry, len(sorted))
	for i, q := range sorted {
		markers[i] = Marker{
			ID:        q.ID,
			Latitude:  q.Latitude,
			Longitude: q.Longitude,
			Radius:    domain.MarkerRadius(q.Magnitude),
			Color:     domain.ColorBucket(q.Magnitude),
			Popup: Popup{
				Place:     q.Place,
				Magnitude: formatMagnitude(q.Magnitude),
				Depth:     formatDepth(q.Depth),
				Time:      q.OriginTime().Format(time.RFC3339),
				URL:       q.URL,
			},
		}
		list[i] = ListEntry{
			ID:        q.ID,
			Place:     q.Place,
			Magnitude: formatMagnitude(q.Magnitude),
			Time:      q.OriginTime().Format(time.RFC3339),
			URL:       q.URL,
		}
	}

	return View{
		Threshold: threshold,
		Total:     len(quakes),
		Matched:   len(sorted),
		Markers:   markers,
		List:      list,
		Bounds:    fitBounds(filtered),
	}
}

// fitBounds computes the padded region containing every filtered quake, or
// nil for an empty set (framing is skipped and the map keeps its view).
func fitBounds(quakes []domain.Quake) *Bounds {
	if len(quakes) == 0 {
		return nil
	}

	points := make(orb.MultiPoint, len(quakes))
	for i, q := range quakes {
		points[i] = orb.Point{q.Longitude, q.Latitude}
	}

	b := points.Bound().Pad(boundsPadding)
	return &Bounds{
		MinLat: b.Min.Lat(),
		MinLon: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLon: b.Max.Lon(),
	}
}

func formatMagnitude(m *float64) string {
	if m == nil {
		return placeholder
	}
	return fmt.Sprintf("%.1f", *m)
}

func formatDepth(d *float64) string {
	if d == nil {
		return placeholder
	}
	return fmt.Sprintf("%.1f km", *d)
}
