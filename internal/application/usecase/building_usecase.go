package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// BuildingUseCase consultas de edificios y comprobaciones de existencia para la capa HTTP.
type BuildingUseCase struct {
	buildings     repository.BuildingRepository
	activities    repository.ActivityRepository
	organizations repository.OrganizationRepository
}

// NewBuildingUseCase construye el caso de uso.
func NewBuildingUseCase(
	buildings repository.BuildingRepository,
	activities repository.ActivityRepository,
	organizations repository.OrganizationRepository,
) *BuildingUseCase {
	return &BuildingUseCase{buildings: buildings, activities: activities, organizations: organizations}
}

// BuildingExists indica si el edificio existe.
func (uc *BuildingUseCase) BuildingExists(ctx context.Context, id int64) (bool, error) {
	b, err := uc.buildings.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("buscar edificio %d: %w", id, err)
	}
	return b != nil, nil
}

// ActivityExists indica si la actividad existe.
func (uc *BuildingUseCase) ActivityExists(ctx context.Context, id int64) (bool, error) {
	a, err := uc.activities.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("buscar actividad %d: %w", id, err)
	}
	return a != nil, nil
}

// ListWithOrganizations todos los edificios, cada uno con sus organizaciones (ordenados por ID).
func (uc *BuildingUseCase) ListWithOrganizations(ctx context.Context) ([]dto.BuildingWithOrganizations, error) {
	buildings, err := uc.buildings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar edificios: %w", err)
	}
	orgs, err := uc.organizations.List(ctx, repository.OrganizationFilter{})
	if err != nil {
		return nil, fmt.Errorf("listar organizaciones: %w", err)
	}

	byBuilding := make(map[int64][]dto.OrganizationSummary, len(buildings))
	for _, o := range orgs {
		byBuilding[o.BuildingID] = append(byBuilding[o.BuildingID], dto.OrganizationSummary{ID: o.ID, Name: o.Name})
	}

	out := make([]dto.BuildingWithOrganizations, 0, len(buildings))
	for _, b := range buildings {
		item := dto.BuildingWithOrganizations{
			BuildingResponse: dto.ToBuildingResponse(b),
			Organizations:    byBuilding[b.ID],
		}
		if item.Organizations == nil {
			item.Organizations = []dto.OrganizationSummary{}
		}
		out = append(out, item)
	}
	return out, nil
}
