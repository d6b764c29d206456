package domain

import (
	"encoding/json"
	"fmt"
)

// Raw GeoJSON feed shapes. Only the fields the visualizer consumes are
// decoded; everything else in the feed is ignored.

type feedCollection struct {
	Features []feedFeature `json:"features"`
}

type feedFeature struct {
	ID         string         `json:"id"`
	Properties feedProperties `json:"properties"`
	Geometry   feedGeometry   `json:"geometry"`
}

type feedProperties struct {
	Mag   *float64 `json:"mag"`
	Place string   `json:"place"`
	Time  int64    `json:"time"`
	URL   string   `json:"url"`
}

type feedGeometry struct {
	// [longitude, latitude, depth-km]; depth may be absent.
	Coordinates []float64 `json:"coordinates"`
}

// ParseFeed decodes a GeoJSON FeatureCollection and normalizes each feature
// into a Quake. Output length and order match the feed; IDs and property
// values are copied verbatim without validation. An empty or absent features
// array yields an empty slice.
func ParseFeed(data []byte) ([]Quake, error) {
	var fc feedCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	quakes := make([]Quake, len(fc.Features))
	for i, f := range fc.Features {
		quakes[i] = normalizeFeature(f)
	}
	return quakes, nil
}

func normalizeFeature(f feedFeature) Quake {
	q := Quake{
		ID:        f.ID,
		Magnitude: f.Properties.Mag,
		Place:     f.Properties.Place,
		Time:      f.Properties.Time,
		URL:       f.Properties.URL,
	}
	if len(f.Geometry.Coordinates) >= 2 {
		q.Longitude = f.Geometry.Coordinates[0]
		q.Latitude = f.Geometry.Coordinates[1]
	}
	if len(f.Geometry.Coordinates) >= 3 {
		depth := f.Geometry.Coordinates[2]
		q.Depth = &depth
	}
	return q
}
