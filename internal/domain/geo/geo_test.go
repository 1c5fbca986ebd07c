package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{name: "kathmandu to pokhara", lat1: 27.7172, lon1: 85.3240, lat2: 28.2096, lon2: 83.9856},
		{name: "across the equator", lat1: -10.5, lon1: 30.0, lat2: 12.25, lon2: -45.5},
		{name: "across the antimeridian", lat1: 10.0, lon1: 179.5, lat2: 10.0, lon2: -179.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			forward := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			backward := Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1)

			assert.InDelta(t, forward, backward, 1e-9)
			assert.GreaterOrEqual(t, forward, 0.0)
		})
	}
}

func TestDistance_Identity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, Distance(27.7172, 85.3240, 27.7172, 85.3240), 1e-9)
}

func TestDistance_KathmanduReference(t *testing.T) {
	t.Parallel()

	// Donor near Patan against an origin in central Kathmandu, roughly 2 km.
	d := Distance(27.7172, 85.3240, 27.70, 85.31)

	assert.Greater(t, d, 1.9)
	assert.Less(t, d, 2.1)
}

func TestParseOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat, lon string
		wantOK   bool
	}{
		{name: "valid pair", lat: "27.7172", lon: "85.3240", wantOK: true},
		{name: "missing both", lat: "", lon: "", wantOK: false},
		{name: "missing longitude", lat: "27.7", lon: "", wantOK: false},
		{name: "non-numeric latitude", lat: "abc", lon: "85.3", wantOK: false},
		{name: "non-numeric longitude", lat: "27.7", lon: "north", wantOK: false},
		{name: "whitespace padded", lat: " 27.7 ", lon: " 85.3 ", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			origin, ok := ParseOrigin(tt.lat, tt.lon)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.NotZero(t, origin.Lat)
			}
		})
	}
}

// testPlace is a minimal Locatable for ranking tests.
type testPlace struct {
	name      string
	lat, lon  *float64
	preferred bool
}

func (p testPlace) Coordinates() (float64, float64, bool) {
	if p.lat == nil || p.lon == nil {
		return 0, 0, false
	}

	return *p.lat, *p.lon, true
}

func (p testPlace) SortName() string { return p.name }
func (p testPlace) Preferred() bool  { return p.preferred }

func f(v float64) *float64 { return &v }

func TestRank_ByDistance(t *testing.T) {
	t.Parallel()

	origin := &Origin{Lat: 27.7172, Lon: 85.3240}
	places := []testPlace{
		{name: "far", lat: f(27.80), lon: f(85.50)},
		{name: "near", lat: f(27.7180), lon: f(85.3250)},
		{name: "mid", lat: f(27.70), lon: f(85.31)},
	}

	ranked := Rank(places, origin)

	require.Len(t, ranked, 3)
	assert.Equal(t, "near", ranked[0].Entity.name)
	assert.Equal(t, "mid", ranked[1].Entity.name)
	assert.Equal(t, "far", ranked[2].Entity.name)
	for _, r := range ranked {
		assert.True(t, r.HasDistance)
	}
}

func TestRank_MissingCoordinatesSortLast(t *testing.T) {
	t.Parallel()

	origin := &Origin{Lat: 27.7172, Lon: 85.3240}
	places := []testPlace{
		{name: "nowhere-a"},
		{name: "located", lat: f(27.70), lon: f(85.31)},
		{name: "half-located", lat: f(27.70)}, // partial pair counts as absent
	}

	ranked := Rank(places, origin)

	require.Len(t, ranked, 3)
	assert.Equal(t, "located", ranked[0].Entity.name)
	assert.False(t, ranked[1].HasDistance)
	assert.False(t, ranked[2].HasDistance)
	assert.Equal(t, float64(FarAwayKm), ranked[1].DistanceKm)
	// Sentinel ties break alphabetically.
	assert.Equal(t, "half-located", ranked[1].Entity.name)
	assert.Equal(t, "nowhere-a", ranked[2].Entity.name)
}

func TestRank_FallbackOrdering(t *testing.T) {
	t.Parallel()

	places := []testPlace{
		{name: "zeta", preferred: true},
		{name: "beta"},
		{name: "Alpha", preferred: true},
		{name: "gamma"},
	}

	ranked := Rank(places, nil)

	require.Len(t, ranked, 4)
	assert.Equal(t, "Alpha", ranked[0].Entity.name)
	assert.Equal(t, "zeta", ranked[1].Entity.name)
	assert.Equal(t, "beta", ranked[2].Entity.name)
	assert.Equal(t, "gamma", ranked[3].Entity.name)
	for _, r := range ranked {
		assert.False(t, r.HasDistance)
	}
}

func TestRank_DeterministicAcrossCalls(t *testing.T) {
	t.Parallel()

	places := []testPlace{
		{name: "delta"},
		{name: "alpha", preferred: true},
		{name: "charlie", lat: f(27.70), lon: f(85.31)},
		{name: "bravo", lat: f(27.72), lon: f(85.33)},
	}

	first := Rank(places, nil)
	second := Rank(places, nil)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Entity.name, second[i].Entity.name)
	}
}
