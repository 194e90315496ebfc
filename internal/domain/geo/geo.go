// Package geo contiene el filtro geográfico del directorio: conversión de un radio
// a un rectángulo latitud/longitud, rectángulos definidos por dos esquinas y la
// distancia haversine usada por el modo estricto.
package geo

import (
	"fmt"
	"math"

	"github.com/jhoicas/directorio-api/internal/domain"
)

const (
	// KmPerDegree aproximación de kilómetros por grado de latitud.
	KmPerDegree = 111.0
	// EarthRadiusKm radio medio terrestre para haversine.
	EarthRadiusKm = 6371.0
	// DefaultRadiusKm radio por defecto de la búsqueda por cercanía.
	DefaultRadiusKm = 10.0
	// MinRadiusKm y MaxRadiusKm límites aceptados para el radio.
	MinRadiusKm = 0.1
	MaxRadiusKm = 1000.0

	// por debajo de este coseno la latitud se considera polar y el rango de longitud
	// se abre a [-180, 180] en lugar de dividir por ~0.
	polarCosEpsilon = 1e-9
)

// BoundingBox rectángulo latitud/longitud alineado a los ejes. Los límites son inclusivos.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains indica si el punto cae dentro del rectángulo (límites inclusivos).
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}

// String formato legible para logs.
func (b BoundingBox) String() string {
	return fmt.Sprintf("[%.6f,%.6f]x[%.6f,%.6f]", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
}

// ValidateCoordinates verifica latitud ∈ [-90,90] y longitud ∈ [-180,180].
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitud %v fuera de [-90, 90]", domain.ErrInvalidInput, lat)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitud %v fuera de [-180, 180]", domain.ErrInvalidInput, lng)
	}
	return nil
}

// ValidateRadius verifica radius ∈ [MinRadiusKm, MaxRadiusKm].
func ValidateRadius(radiusKm float64) error {
	if math.IsNaN(radiusKm) || radiusKm < MinRadiusKm || radiusKm > MaxRadiusKm {
		return fmt.Errorf("%w: radio %v fuera de [%v, %v] km", domain.ErrInvalidInput, radiusKm, MinRadiusKm, MaxRadiusKm)
	}
	return nil
}

// Nearby convierte un punto y un radio (km) en un rectángulo aproximado:
//
//	latDelta = r / 111
//	lngDelta = r / (111 * cos(lat))
//
// No es un filtro geodésico: las esquinas del rectángulo pueden quedar más lejos que el radio.
// Cerca de los polos el rango de longitud se abre completo; nunca devuelve NaN ni Inf.
func Nearby(lat, lng, radiusKm float64) (BoundingBox, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return BoundingBox{}, err
	}
	if err := ValidateRadius(radiusKm); err != nil {
		return BoundingBox{}, err
	}

	latDelta := radiusKm / KmPerDegree
	box := BoundingBox{
		MinLat: math.Max(lat-latDelta, -90),
		MaxLat: math.Min(lat+latDelta, 90),
		MinLng: -180,
		MaxLng: 180,
	}

	cos := math.Cos(degToRad(lat))
	if cos < polarCosEpsilon {
		return box, nil
	}
	lngDelta := radiusKm / (KmPerDegree * cos)
	if lngDelta >= 180 {
		return box, nil
	}
	box.MinLng = lng - lngDelta
	box.MaxLng = lng + lngDelta
	return box, nil
}

// InArea construye el rectángulo definido por dos esquinas cualesquiera.
// El orden de las esquinas no importa: se normaliza a min/max.
func InArea(lat1, lng1, lat2, lng2 float64) (BoundingBox, error) {
	if err := ValidateCoordinates(lat1, lng1); err != nil {
		return BoundingBox{}, err
	}
	if err := ValidateCoordinates(lat2, lng2); err != nil {
		return BoundingBox{}, err
	}
	return BoundingBox{
		MinLat: math.Min(lat1, lat2),
		MaxLat: math.Max(lat1, lat2),
		MinLng: math.Min(lng1, lng2),
		MaxLng: math.Max(lng1, lng2),
	}, nil
}

// HaversineKm distancia de gran círculo entre dos puntos, en kilómetros.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
