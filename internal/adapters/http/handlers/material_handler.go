package handlers

import (
	"errors"

	"lablend/internal/core/domain"
	"lablend/internal/core/services"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaterialHandler handles material endpoints
type MaterialHandler struct {
	materialService *services.MaterialService
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(materialService *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// List lists materials
// @Summary List materials
// @Description Get the full material collection, optionally filtered by status
// @Tags Materials
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	materials, err := h.materialService.List(c.Context(), c.Query("status"))
	if err != nil {
		return response.InternalServerError(c, "Error al cargar los materiales")
	}
	return response.Success(c, "Materiales obtenidos", fiber.Map{
		"materials": materials,
	})
}

// Get gets a material by ID
// @Summary Get material
// @Tags Materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /material/{id} [get]
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
	material, err := h.materialService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return response.NotFound(c, "Material no encontrado")
		}
		return response.InternalServerError(c, "Error al cargar el material")
	}
	return response.Success(c, "Material obtenido", fiber.Map{
		"material": material,
	})
}

// Create creates a new material
// @Summary Create material
// @Description Register a new material; status defaults to Available
// @Tags Materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MaterialInput true "Material data"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var input services.MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	material, err := h.materialService.Create(c.Context(), &input)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return response.ValidationFailed(c, ve.Fields)
		}
		return response.InternalServerError(c, "Error al registrar el material")
	}

	return response.Created(c, "Material registrado con éxito!", fiber.Map{
		"material": material,
	})
}

// Update updates a material
// @Summary Update material
// @Tags Materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param body body services.MaterialInput true "Material data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /material/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var input services.MaterialInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	material, err := h.materialService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, domain.ErrMaterialNotFound):
			return response.NotFound(c, "Material no encontrado")
		default:
			return response.InternalServerError(c, "Error al actualizar el material")
		}
	}

	return response.Success(c, "Material actualizado con éxito!", fiber.Map{
		"material": material,
	})
}

// Delete deletes a material
// @Summary Delete material
// @Tags Materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /material/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.materialService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return response.NotFound(c, "Material no encontrado")
		}
		return response.InternalServerError(c, "Error al eliminar el material")
	}
	return response.Success(c, "Material eliminado con éxito!", nil)
}
