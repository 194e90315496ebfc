package entity

// Building representa un edificio con coordenadas geográficas (WGS84, grados decimales).
type Building struct {
	ID        int64
	Address   string
	Latitude  float64 // [-90, 90]
	Longitude float64 // [-180, 180]
}
