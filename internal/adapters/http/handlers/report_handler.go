package handlers

import (
	"time"

	"lablend/internal/core/services"
	"lablend/internal/pkg/report"
	"lablend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles the printable loan report
type ReportHandler struct {
	loanService *services.LoanService
}

// NewReportHandler creates a new report handler
func NewReportHandler(loanService *services.LoanService) *ReportHandler {
	return &ReportHandler{loanService: loanService}
}

// LoanReport generates the loan report PDF
// @Summary Loan report
// @Description Generate the paginated loan report (3 loans per page)
// @Tags Reports
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} response.Response
// @Router /loans/report [get]
func (h *ReportHandler) LoanReport(c *fiber.Ctx) error {
	loans, err := h.loanService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error al cargar los préstamos")
	}

	pdf, err := report.LoanReport(loans, time.Now())
	if err != nil {
		return response.InternalServerError(c, "Error al generar el reporte")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-prestamos.pdf"`)
	return c.Send(pdf)
}
