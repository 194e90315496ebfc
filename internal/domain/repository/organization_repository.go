package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/geo"
)

// OrganizationFilter predicados combinables (AND) para listar organizaciones.
// Un campo en cero no filtra.
type OrganizationFilter struct {
	BuildingID   *int64
	NameContains string
	// ActivityIDs filtra organizaciones vinculadas a al menos una de las actividades.
	// Un slice no nil pero vacío no coincide con ninguna organización.
	ActivityIDs []int64
	// Box restringe por coordenadas del edificio (límites inclusivos).
	Box *geo.BoundingBox
}

// OrganizationRepository define el puerto de lectura para Organization (DIP).
// Las organizaciones devueltas traen Building, PhoneNumbers y Activities cargados,
// ordenadas por ID.
type OrganizationRepository interface {
	// GetByID devuelve (nil, nil) si la organización no existe.
	GetByID(ctx context.Context, id int64) (*entity.Organization, error)
	List(ctx context.Context, filter OrganizationFilter) ([]*entity.Organization, error)
}
