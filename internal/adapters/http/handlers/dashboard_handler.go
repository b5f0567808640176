package handlers

import (
	"lablend/internal/core/domain"
	"lablend/internal/core/services"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the aggregate counts behind the charts
// @Summary Dashboard data
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error al cargar el tablero")
	}
	return response.Success(c, "Tablero obtenido", data)
}

// GetOptions returns the enumerated option tables. Dropdowns are
// populated from the same tables validation checks against, so the
// two can never diverge.
func (h *DashboardHandler) GetOptions(c *fiber.Ctx) error {
	return response.Success(c, "Opciones obtenidas", fiber.Map{
		"material_status": domain.MaterialStatusOptions,
		"user_status":     domain.UserStatusOptions,
		"user_type":       domain.UserTypeOptions,
		"loan_status":     domain.LoanStatusOptions,
	})
}
