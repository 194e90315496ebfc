package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de lectura de actividades. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// GetByID obtiene una actividad por ID. Devuelve (nil, nil) si no existe.
func (r *ActivityRepo) GetByID(ctx context.Context, id int64) (*entity.Activity, error) {
	query := `SELECT id, name, parent_id FROM activities WHERE id = $1`
	a, err := scanActivity(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

// FindFirstByName actividad de menor ID cuyo nombre contiene name (LIKE, sensible a mayúsculas).
// Los comodines de LIKE en name se escapan.
func (r *ActivityRepo) FindFirstByName(ctx context.Context, name string) (*entity.Activity, error) {
	query := `
		SELECT id, name, parent_id FROM activities
		WHERE name LIKE $1 ESCAPE '\'
		ORDER BY id LIMIT 1`
	a, err := scanActivity(r.q.QueryRow(ctx, query, containsPattern(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find activity by name: %w", err)
	}
	return a, nil
}

// ListChildren hijos directos de los padres indicados, ordenados por ID.
func (r *ActivityRepo) ListChildren(ctx context.Context, parentIDs []int64) ([]*entity.Activity, error) {
	if len(parentIDs) == 0 {
		return []*entity.Activity{}, nil
	}
	query := `SELECT id, name, parent_id FROM activities WHERE parent_id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(ctx, query, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("list activity children: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	if err := row.Scan(&a.ID, &a.Name, &a.ParentID); err != nil {
		return nil, err
	}
	return &a, nil
}

// containsPattern construye '%name%' escapando los comodines de LIKE.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
