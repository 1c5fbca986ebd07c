// Package geo provides the great-circle distance calculation and the
// proximity ranking used by every located-entity listing. The ranking is a
// pure projection: stored entities are never mutated, distances are
// recomputed on every call.
package geo

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// FarAwayKm is the sentinel distance assigned to entities without
// coordinates when an origin is supplied. It keeps them in the result set
// but sorts them after everything with a real distance.
const FarAwayKm = 999999

// Distance returns the haversine great-circle distance in kilometers
// between two points given in decimal degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Origin is a reference point supplied by the caller, typically from a
// browser geolocation API.
type Origin struct {
	Lat float64
	Lon float64
}

// ParseOrigin parses a coordinate pair from query-string values. Absent or
// non-numeric input is not an error: it yields ok=false and callers fall
// back to the secondary ordering.
func ParseOrigin(latStr, lonStr string) (Origin, bool) {
	latStr = strings.TrimSpace(latStr)
	lonStr = strings.TrimSpace(lonStr)
	if latStr == "" || lonStr == "" {
		return Origin{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return Origin{}, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return Origin{}, false
	}

	return Origin{Lat: lat, Lon: lon}, true
}

// Locatable is the shape shared by every entity that can be ranked by
// proximity.
type Locatable interface {
	// Coordinates returns the entity's position; ok must be false when
	// either half of the pair is missing.
	Coordinates() (lat, lon float64, ok bool)

	// SortName is the name used for alphabetical fallback ordering.
	SortName() string

	// Preferred entities sort ahead of the rest within the fallback
	// ordering and on distance ties.
	Preferred() bool
}

// Ranked is the read-only projection produced by Rank. The wrapped entity
// is left untouched.
type Ranked[T Locatable] struct {
	Entity T

	// DistanceKm is the distance from the origin, or FarAwayKm when the
	// entity has no coordinates. Zero when ranking without an origin.
	DistanceKm float64

	// HasDistance reports whether DistanceKm was actually computed from
	// the entity's coordinates.
	HasDistance bool
}

// Rank orders entities by distance to origin. With a nil origin, or for
// entities tied on distance, the secondary ordering applies: preferred
// entities first, then alphabetical by name. The sort is stable, so
// repeated calls on unchanged input produce identical output.
func Rank[T Locatable](entities []T, origin *Origin) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(entities))
	for _, e := range entities {
		r := Ranked[T]{Entity: e}
		if origin != nil {
			r.DistanceKm = FarAwayKm
			if lat, lon, ok := e.Coordinates(); ok {
				r.DistanceKm = Distance(origin.Lat, origin.Lon, lat, lon)
				r.HasDistance = true
			}
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if origin != nil && ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}

		return secondaryLess(ranked[i].Entity, ranked[j].Entity)
	})

	return ranked
}

// secondaryLess is the deterministic fallback ordering: preferred entities
// first, then case-insensitive alphabetical by name.
func secondaryLess(a, b Locatable) bool {
	if a.Preferred() != b.Preferred() {
		return a.Preferred()
	}

	return strings.ToLower(a.SortName()) < strings.ToLower(b.SortName())
}
