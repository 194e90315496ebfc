package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

const organizationSelect = `
		SELECT o.id, o.name, o.building_id, ` + buildingColumns + `
		FROM organizations o
		JOIN buildings b ON b.id = o.building_id`

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
// Carga las relaciones (edificio, teléfonos, actividades) con una consulta por relación
// para todo el lote, no una por organización.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador de lectura de organizaciones. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// GetByID obtiene una organización con sus relaciones. Devuelve (nil, nil) si no existe.
func (r *OrganizationRepo) GetByID(ctx context.Context, id int64) (*entity.Organization, error) {
	list, err := r.query(ctx, organizationSelect+` WHERE o.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List organizaciones que cumplen todos los predicados del filtro, ordenadas por ID.
func (r *OrganizationRepo) List(ctx context.Context, f repository.OrganizationFilter) ([]*entity.Organization, error) {
	where, args := buildOrganizationWhere(f)
	query := organizationSelect
	if where != "" {
		query += "\n\t\tWHERE " + where
	}
	query += "\n\t\tORDER BY o.id"
	list, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return list, nil
}

// buildOrganizationWhere traduce el filtro a condiciones SQL con parámetros posicionales.
func buildOrganizationWhere(f repository.OrganizationFilter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.BuildingID != nil {
		conds = append(conds, "o.building_id = "+arg(*f.BuildingID))
	}
	if f.NameContains != "" {
		conds = append(conds, "o.name LIKE "+arg(containsPattern(f.NameContains))+` ESCAPE '\'`)
	}
	if f.ActivityIDs != nil {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM activity_organization ao
			WHERE ao.organization_id = o.id AND ao.activity_id = ANY(`+arg(f.ActivityIDs)+`))`)
	}
	if f.Box != nil {
		conds = append(conds,
			"b.latitude BETWEEN "+arg(f.Box.MinLat)+" AND "+arg(f.Box.MaxLat),
			"b.longitude BETWEEN "+arg(f.Box.MinLng)+" AND "+arg(f.Box.MaxLng),
		)
	}
	return strings.Join(conds, " AND "), args
}

func (r *OrganizationRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Organization, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*entity.Organization, 0)
	for rows.Next() {
		var o entity.Organization
		var b entity.Building
		if err := rows.Scan(&o.ID, &o.Name, &o.BuildingID, &b.ID, &b.Address, &b.Latitude, &b.Longitude); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		o.Building = &b
		o.PhoneNumbers = []entity.PhoneNumber{}
		o.Activities = []entity.Activity{}
		list = append(list, &o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.loadRelations(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadRelations completa teléfonos y actividades del lote.
func (r *OrganizationRepo) loadRelations(ctx context.Context, list []*entity.Organization) error {
	ids := make([]int64, 0, len(list))
	byID := make(map[int64]*entity.Organization, len(list))
	for _, o := range list {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	phoneRows, err := r.q.Query(ctx, `
		SELECT id, organization_id, number FROM phone_numbers
		WHERE organization_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("load phone numbers: %w", err)
	}
	for phoneRows.Next() {
		var p entity.PhoneNumber
		if err := phoneRows.Scan(&p.ID, &p.OrganizationID, &p.Number); err != nil {
			phoneRows.Close()
			return fmt.Errorf("scan phone number: %w", err)
		}
		if o, ok := byID[p.OrganizationID]; ok {
			o.PhoneNumbers = append(o.PhoneNumbers, p)
		}
	}
	phoneRows.Close()
	if err := phoneRows.Err(); err != nil {
		return fmt.Errorf("load phone numbers: %w", err)
	}

	actRows, err := r.q.Query(ctx, `
		SELECT ao.organization_id, a.id, a.name, a.parent_id
		FROM activity_organization ao
		JOIN activities a ON a.id = ao.activity_id
		WHERE ao.organization_id = ANY($1)
		ORDER BY ao.organization_id, a.id`, ids)
	if err != nil {
		return fmt.Errorf("load activities: %w", err)
	}
	defer actRows.Close()
	for actRows.Next() {
		var orgID int64
		var a entity.Activity
		if err := actRows.Scan(&orgID, &a.ID, &a.Name, &a.ParentID); err != nil {
			return fmt.Errorf("scan organization activity: %w", err)
		}
		if o, ok := byID[orgID]; ok {
			o.Activities = append(o.Activities, a)
		}
	}
	if err := actRows.Err(); err != nil {
		return fmt.Errorf("load activities: %w", err)
	}
	return nil
}
