package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-api/internal/application/directory"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/infrastructure/metrics"
)

// OrganizationHandler maneja las consultas HTTP sobre organizaciones.
type OrganizationHandler struct {
	engine    *directory.QueryEngine
	buildings *usecase.BuildingUseCase
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(
	engine *directory.QueryEngine,
	buildings *usecase.BuildingUseCase,
	m *metrics.Metrics,
	log zerolog.Logger,
) *OrganizationHandler {
	return &OrganizationHandler{engine: engine, buildings: buildings, metrics: m, log: log}
}

// GetByID godoc
// @Summary      Obtener organización por ID
// @Tags         organizations
// @Produce      json
// @Param        id   path  int  true  "ID de la organización"
// @Success      200  {object}  dto.OrganizationEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	org, err := h.engine.FindByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(dto.ToOrganizationResponse(org)))
}

// ListByBuilding godoc
// @Summary      Organizaciones de un edificio
// @Tags         organizations
// @Produce      json
// @Param        building_id  path  int  true  "ID del edificio"
// @Success      200  {object}  dto.OrganizationListEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/building/{building_id} [get]
func (h *OrganizationHandler) ListByBuilding(c *fiber.Ctx) error {
	id, ok := pathID(c, "building_id")
	if !ok {
		return invalidID(c, "building_id")
	}
	exists, err := h.buildings.BuildingExists(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if !exists {
		return notFound(c, "edificio no encontrado")
	}
	orgs, err := h.engine.FindByBuilding(c.UserContext(), id)
	return h.respondList(c, "by_building", orgs, err)
}

// ListByActivity godoc
// @Summary      Organizaciones vinculadas a una actividad (sin descendientes)
// @Tags         organizations
// @Produce      json
// @Param        activity_id  path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.OrganizationListEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/activity/{activity_id} [get]
func (h *OrganizationHandler) ListByActivity(c *fiber.Ctx) error {
	id, ok := pathID(c, "activity_id")
	if !ok {
		return invalidID(c, "activity_id")
	}
	exists, err := h.buildings.ActivityExists(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if !exists {
		return notFound(c, "actividad no encontrada")
	}
	orgs, err := h.engine.FindByActivity(c.UserContext(), id)
	return h.respondList(c, "by_activity", orgs, err)
}

// Nearby godoc
// @Summary      Organizaciones cercanas a un punto
// @Tags         organizations
// @Produce      json
// @Param        lat     query  number  true   "Latitud"
// @Param        lng     query  number  true   "Longitud"
// @Param        radius  query  number  false  "Radio en km"  default(10)
// @Success      200  {object}  dto.OrganizationListEnvelope
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/organizations/nearby [get]
func (h *OrganizationHandler) Nearby(c *fiber.Ctx) error {
	var in dto.NearbyRequest
	if handled, err := bindQuery(c, &in); handled {
		return err
	}
	var radius float64
	if in.Radius != nil {
		radius = *in.Radius
	}
	orgs, err := h.engine.FindNearby(c.UserContext(), *in.Lat, *in.Lng, radius)
	return h.respondList(c, "nearby", orgs, err)
}

// InArea godoc
// @Summary      Organizaciones dentro de un rectángulo
// @Tags         organizations
// @Produce      json
// @Param        lat1  query  number  true  "Latitud de la primera esquina"
// @Param        lng1  query  number  true  "Longitud de la primera esquina"
// @Param        lat2  query  number  true  "Latitud de la segunda esquina"
// @Param        lng2  query  number  true  "Longitud de la segunda esquina"
// @Success      200  {object}  dto.OrganizationListEnvelope
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/organizations/area [get]
func (h *OrganizationHandler) InArea(c *fiber.Ctx) error {
	var in dto.AreaRequest
	if handled, err := bindQuery(c, &in); handled {
		return err
	}
	orgs, err := h.engine.FindInArea(c.UserContext(), *in.Lat1, *in.Lng1, *in.Lat2, *in.Lng2)
	return h.respondList(c, "in_area", orgs, err)
}

// Search godoc
// @Summary      Buscar organizaciones por actividad (con subactividades) y/o nombre
// @Tags         organizations
// @Produce      json
// @Param        activity  query  string  false  "Nombre (o parte) de la actividad"
// @Param        name      query  string  false  "Nombre (o parte) de la organización"
// @Success      200  {object}  dto.OrganizationListEnvelope
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/organizations/search [get]
func (h *OrganizationHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if handled, err := bindQuery(c, &in); handled {
		return err
	}

	ctx := c.UserContext()
	var (
		orgs []*entity.Organization
		err  error
		op   string
	)
	switch {
	case in.Activity != "" && in.Name != "":
		op = "search_activity_name"
		orgs, err = h.engine.SearchByActivityAndName(ctx, in.Activity, in.Name)
	case in.Activity != "":
		op = "search_activity"
		orgs, err = h.engine.SearchByActivity(ctx, in.Activity)
	default:
		op = "search_name"
		orgs, err = h.engine.SearchByName(ctx, in.Name)
	}
	return h.respondList(c, op, orgs, err)
}

func (h *OrganizationHandler) respondList(c *fiber.Ctx, op string, orgs []*entity.Organization, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	if len(orgs) == 0 {
		h.metrics.EmptyResult(op)
	}
	return c.JSON(dto.OK(dto.ToOrganizationList(orgs)))
}
