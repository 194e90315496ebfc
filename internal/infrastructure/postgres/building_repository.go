package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.BuildingRepository = (*BuildingRepo)(nil)

// latitude/longitude son NUMERIC en el esquema; se leen como float8.
const buildingColumns = `b.id, b.address, b.latitude::float8, b.longitude::float8`

// BuildingRepo implementación del puerto BuildingRepository sobre PostgreSQL.
type BuildingRepo struct {
	q Querier
}

// NewBuildingRepository construye el adaptador de lectura de edificios. Pasar pool o tx (Querier).
func NewBuildingRepository(q Querier) *BuildingRepo {
	return &BuildingRepo{q: q}
}

// GetByID obtiene un edificio por ID. Devuelve (nil, nil) si no existe.
func (r *BuildingRepo) GetByID(ctx context.Context, id int64) (*entity.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings b WHERE b.id = $1`
	var b entity.Building
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Address, &b.Latitude, &b.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get building: %w", err)
	}
	return &b, nil
}

// List devuelve todos los edificios ordenados por ID.
func (r *BuildingRepo) List(ctx context.Context) ([]*entity.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings b ORDER BY b.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Building, 0)
	for rows.Next() {
		var b entity.Building
		if err := rows.Scan(&b.ID, &b.Address, &b.Latitude, &b.Longitude); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
