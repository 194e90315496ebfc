package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// BuildingRepository define el puerto de lectura para Building (DIP).
// GetByID devuelve (nil, nil) si el edificio no existe.
type BuildingRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Building, error)
	List(ctx context.Context) ([]*entity.Building, error)
}
