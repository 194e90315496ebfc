package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
)

// BuildingHandler maneja las peticiones HTTP de edificios.
type BuildingHandler struct {
	uc  *usecase.BuildingUseCase
	log zerolog.Logger
}

// NewBuildingHandler construye el handler.
func NewBuildingHandler(uc *usecase.BuildingUseCase, log zerolog.Logger) *BuildingHandler {
	return &BuildingHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar edificios con sus organizaciones
// @Tags         buildings
// @Produce      json
// @Success      200  {object}  dto.BuildingListEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/buildings [get]
func (h *BuildingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListWithOrganizations(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out))
}
