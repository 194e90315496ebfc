package directory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/geo"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// QueryEngine resuelve las consultas del directorio sobre organizaciones.
// No guarda estado entre llamadas: es seguro usarlo concurrentemente.
// Todas las colecciones devueltas son no nil y vienen ordenadas por ID.
type QueryEngine struct {
	orgRepo      repository.OrganizationRepository
	resolver     *ActivityResolver
	strictRadius bool
	log          zerolog.Logger
}

// EngineConfig opciones del motor.
type EngineConfig struct {
	// StrictRadius descarta, tras el prefiltro por rectángulo, los edificios
	// cuya distancia haversine supera el radio.
	StrictRadius bool
	Logger       *zerolog.Logger
}

// NewQueryEngine construye el motor con los puertos de persistencia inyectados.
func NewQueryEngine(
	orgRepo repository.OrganizationRepository,
	resolver *ActivityResolver,
	cfg EngineConfig,
) *QueryEngine {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &QueryEngine{
		orgRepo:      orgRepo,
		resolver:     resolver,
		strictRadius: cfg.StrictRadius,
		log:          log,
	}
}

// FindByID devuelve la organización con todas sus relaciones o domain.ErrNotFound.
func (e *QueryEngine) FindByID(ctx context.Context, id int64) (*entity.Organization, error) {
	org, err := e.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar organización %d: %w", id, err)
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return org, nil
}

// FindByBuilding organizaciones del edificio. Un edificio inexistente y uno sin
// organizaciones dan el mismo resultado vacío; distinguirlos es tarea del llamador.
func (e *QueryEngine) FindByBuilding(ctx context.Context, buildingID int64) ([]*entity.Organization, error) {
	return e.list(ctx, "por edificio", repository.OrganizationFilter{BuildingID: &buildingID})
}

// FindByActivity organizaciones vinculadas exactamente a esa actividad, sin expandir la jerarquía.
func (e *QueryEngine) FindByActivity(ctx context.Context, activityID int64) ([]*entity.Organization, error) {
	return e.list(ctx, "por actividad", repository.OrganizationFilter{ActivityIDs: []int64{activityID}})
}

// FindNearby organizaciones cuyo edificio cae en el rectángulo derivado del radio.
// radiusKm = 0 usa geo.DefaultRadiusKm.
func (e *QueryEngine) FindNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*entity.Organization, error) {
	if radiusKm == 0 {
		radiusKm = geo.DefaultRadiusKm
	}
	box, err := geo.Nearby(lat, lng, radiusKm)
	if err != nil {
		return nil, err
	}
	orgs, err := e.list(ctx, "cercanas", repository.OrganizationFilter{Box: &box})
	if err != nil || !e.strictRadius {
		return orgs, err
	}

	out := make([]*entity.Organization, 0, len(orgs))
	for _, o := range orgs {
		if o.Building == nil {
			continue
		}
		if geo.HaversineKm(lat, lng, o.Building.Latitude, o.Building.Longitude) <= radiusKm {
			out = append(out, o)
		}
	}
	return out, nil
}

// FindInArea organizaciones cuyo edificio cae en el rectángulo de las dos esquinas (en cualquier orden).
func (e *QueryEngine) FindInArea(ctx context.Context, lat1, lng1, lat2, lng2 float64) ([]*entity.Organization, error) {
	box, err := geo.InArea(lat1, lng1, lat2, lng2)
	if err != nil {
		return nil, err
	}
	return e.list(ctx, "en área", repository.OrganizationFilter{Box: &box})
}

// SearchByName organizaciones cuyo nombre contiene name.
func (e *QueryEngine) SearchByName(ctx context.Context, name string) ([]*entity.Organization, error) {
	return e.list(ctx, "por nombre", repository.OrganizationFilter{NameContains: name})
}

// SearchByActivity organizaciones vinculadas a la actividad encontrada por nombre
// o a sus descendientes, hasta MaxActivityDepth niveles.
func (e *QueryEngine) SearchByActivity(ctx context.Context, activityName string) ([]*entity.Organization, error) {
	return e.SearchByActivityAndName(ctx, activityName, "")
}

// SearchByActivityAndName intersección de SearchByActivity y SearchByName.
// name vacío no filtra por nombre.
func (e *QueryEngine) SearchByActivityAndName(ctx context.Context, activityName, name string) ([]*entity.Organization, error) {
	ids, err := e.resolver.ResolveByName(ctx, activityName, MaxActivityDepth)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.Organization{}, nil
	}
	return e.list(ctx, "por actividad y nombre", repository.OrganizationFilter{
		ActivityIDs:  ids,
		NameContains: name,
	})
}

func (e *QueryEngine) list(ctx context.Context, op string, f repository.OrganizationFilter) ([]*entity.Organization, error) {
	orgs, err := e.orgRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar organizaciones %s: %w", op, err)
	}
	if orgs == nil {
		orgs = []*entity.Organization{}
	}
	e.log.Debug().Str("op", op).Int("count", len(orgs)).Msg("consulta de organizaciones")
	return orgs, nil
}
