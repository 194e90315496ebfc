package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/geo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Nearby: radio → rectángulo
// ──────────────────────────────────────────────────────────────────────────────

func TestNearby_DeltasEnEcuador(t *testing.T) {
	box, err := geo.Nearby(0, 0, 111)
	require.NoError(t, err)

	assert.InDelta(t, -1, box.MinLat, 1e-9)
	assert.InDelta(t, 1, box.MaxLat, 1e-9)
	assert.InDelta(t, -1, box.MinLng, 1e-9, "en el ecuador cos(0)=1, lngDelta = latDelta")
	assert.InDelta(t, 1, box.MaxLng, 1e-9)
}

func TestNearby_LongitudSeEnsanchaConLatitud(t *testing.T) {
	box, err := geo.Nearby(60, 10, 111)
	require.NoError(t, err)

	// cos(60°) = 0.5 → lngDelta = 2
	assert.InDelta(t, 8, box.MinLng, 1e-9)
	assert.InDelta(t, 12, box.MaxLng, 1e-9)
	assert.InDelta(t, 59, box.MinLat, 1e-9)
	assert.InDelta(t, 61, box.MaxLat, 1e-9)
}

func TestNearby_NuevaYorkIncluyeMidtownExcluyeLondres(t *testing.T) {
	box, err := geo.Nearby(40.7128, -74.0060, 50)
	require.NoError(t, err)

	assert.True(t, box.Contains(40.7128, -74.0060))
	assert.True(t, box.Contains(40.7589, -73.9851), "a ~5 km debe quedar dentro")
	assert.False(t, box.Contains(51.5074, -0.1278), "Londres debe quedar fuera")
}

func TestNearby_LatitudPolarNoProduceInfNiNaN(t *testing.T) {
	for _, lat := range []float64{90, -90, 89.9999999999} {
		box, err := geo.Nearby(lat, 45, 10)
		require.NoError(t, err, "lat=%v", lat)

		for _, v := range []float64{box.MinLat, box.MaxLat, box.MinLng, box.MaxLng} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "lat=%v produjo %v", lat, v)
		}
		assert.Equal(t, -180.0, box.MinLng, "cerca del polo la longitud se abre completa")
		assert.Equal(t, 180.0, box.MaxLng)
		assert.GreaterOrEqual(t, box.MinLat, -90.0)
		assert.LessOrEqual(t, box.MaxLat, 90.0)
	}
}

func TestNearby_EntradaInvalida(t *testing.T) {
	cases := []struct {
		name          string
		lat, lng, rad float64
	}{
		{"latitud > 90", 91, 0, 10},
		{"longitud < -180", 0, -181, 10},
		{"radio muy pequeño", 0, 0, 0.01},
		{"radio muy grande", 0, 0, 1001},
		{"latitud NaN", math.NaN(), 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geo.Nearby(tc.lat, tc.lng, tc.rad)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// InArea: dos esquinas → rectángulo
// ──────────────────────────────────────────────────────────────────────────────

func TestInArea_OrdenDeEsquinasNoImporta(t *testing.T) {
	a, err := geo.InArea(40, -75, 41, -73)
	require.NoError(t, err)
	b, err := geo.InArea(41, -73, 40, -75)
	require.NoError(t, err)
	c, err := geo.InArea(41, -75, 40, -73)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, geo.BoundingBox{MinLat: 40, MaxLat: 41, MinLng: -75, MaxLng: -73}, a)
}

func TestInArea_LimitesInclusivos(t *testing.T) {
	box, err := geo.InArea(40, -75, 41, -73)
	require.NoError(t, err)

	assert.True(t, box.Contains(40, -75))
	assert.True(t, box.Contains(41, -73))
	assert.False(t, box.Contains(41.0000001, -74))
}

func TestInArea_CoordenadaInvalida(t *testing.T) {
	_, err := geo.InArea(40, -75, 95, -73)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Haversine
// ──────────────────────────────────────────────────────────────────────────────

func TestHaversineKm(t *testing.T) {
	assert.InDelta(t, 0, geo.HaversineKm(10, 10, 10, 10), 1e-9)
	// Nueva York → Londres ≈ 5570 km
	assert.InDelta(t, 5570, geo.HaversineKm(40.7128, -74.0060, 51.5074, -0.1278), 15)
	// Un grado de latitud ≈ 111.2 km
	assert.InDelta(t, 111.2, geo.HaversineKm(0, 0, 1, 0), 0.1)
}
