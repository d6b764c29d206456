// Package domain models USGS earthquake feed data and the pure
// transformations applied to it before display.
//
// # Data Source
//
// Quakes originate from the USGS real-time GeoJSON summary feeds, documented
// at https://earthquake.usgs.gov/earthquakes/feed/v1.0/geojson.php. The
// service fetches the "all earthquakes, past day" feed once per session. The
// feed is a GeoJSON FeatureCollection; each feature carries:
//
//	id                     USGS event identifier, unique within a feed
//	properties.mag         seismic magnitude; JSON null when not yet measured
//	properties.place       human-readable location, e.g. "12 km SSW of Ridgecrest, CA"
//	properties.time        origin time, milliseconds since the Unix epoch
//	properties.url         USGS event page
//	geometry.coordinates   [longitude, latitude, depth-km]; depth may be absent
//
// # Normalization
//
// [ParseFeed] flattens each feature into a [Quake] preserving feed order and
// count. Field values are copied verbatim; no validation is applied, so
// malformed entries propagate and the display layer tolerates missing
// magnitude and depth.
//
// # Magnitude policy
//
// A quake with no measured magnitude compares as magnitude 0 for filtering
// and sorting, so it disappears once the threshold exceeds 0. The stored
// value stays nil and is displayed as a placeholder, never as 0. The policy
// lives in [EffectiveMagnitude]; every comparison goes through it.
//
// # Visual encoding
//
// [MarkerRadius] maps magnitude to a marker radius with exponential growth:
// a magnitude difference of ~1.4 doubles the radius. This is a perceptual
// scaling heuristic, not a physical one. [ColorBucket] maps magnitude onto a
// six-bucket discrete scale with inclusive lower bounds {>=5, >=4, >=3, >=2,
// >=1, <1}, lightest token for low magnitudes and darkest for high.
package domain
