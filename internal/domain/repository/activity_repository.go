package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// ActivityRepository define el puerto de lectura para Activity (DIP).
type ActivityRepository interface {
	// GetByID devuelve (nil, nil) si la actividad no existe.
	GetByID(ctx context.Context, id int64) (*entity.Activity, error)
	// FindFirstByName devuelve la actividad de menor ID cuyo nombre contiene name
	// (comparación sensible a mayúsculas), o (nil, nil) si no hay coincidencias.
	FindFirstByName(ctx context.Context, name string) (*entity.Activity, error)
	// ListChildren devuelve los hijos directos de cualquiera de los padres indicados.
	ListChildren(ctx context.Context, parentIDs []int64) ([]*entity.Activity, error)
}
