package handlers

import (
	"errors"

	"lablend/internal/core/domain"
	"lablend/internal/core/services"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// List lists all loans with their users and materials
// @Summary List loans
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	loans, err := h.loanService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error al cargar los préstamos")
	}
	return response.Success(c, "Préstamos obtenidos", fiber.Map{
		"loans": loans,
	})
}

// Get gets a loan by ID
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	loan, err := h.loanService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Préstamo no encontrado")
		}
		return response.InternalServerError(c, "Error al cargar el préstamo")
	}
	return response.Success(c, "Préstamo obtenido", fiber.Map{
		"loan": loan,
	})
}

// Create registers a new loan
// @Summary Create loan
// @Description Register a loan; loan_date is stamped server-side and the
// @Description return date must be strictly later than now+24h
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.LoanInput true "Loan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var input services.LoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.loanService.Create(c.Context(), &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, domain.ErrUserNotFound):
			return response.BadRequest(c, "El usuario seleccionado no existe")
		case errors.Is(err, domain.ErrMaterialNotFound):
			return response.BadRequest(c, "El material seleccionado no existe")
		default:
			return response.InternalServerError(c, "Error al registrar el préstamo.")
		}
	}

	return response.Created(c, "Préstamo registrado con éxito!", fiber.Map{
		"loan": loan,
	})
}

// Update updates a loan
func (h *LoanHandler) Update(c *fiber.Ctx) error {
	var input services.LoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.loanService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			return response.ValidationFailed(c, ve.Fields)
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Préstamo no encontrado")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.BadRequest(c, "El usuario seleccionado no existe")
		case errors.Is(err, domain.ErrMaterialNotFound):
			return response.BadRequest(c, "El material seleccionado no existe")
		default:
			return response.InternalServerError(c, "Error al actualizar el préstamo.")
		}
	}

	return response.Success(c, "Préstamo actualizado con éxito!", fiber.Map{
		"loan": loan,
	})
}

// Delete deletes a loan
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	if err := h.loanService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Préstamo no encontrado")
		}
		return response.InternalServerError(c, "Error al eliminar el préstamo")
	}
	return response.Success(c, "Préstamo eliminado con éxito!", nil)
}
