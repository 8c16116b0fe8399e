package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/claricinhas/atelier-api/internal/application/analytics"
	"github.com/claricinhas/atelier-api/internal/application/dto"
	"github.com/claricinhas/atelier-api/internal/application/sales"
)

// DashboardHandler resumen financiero (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero del período (ventas, gastos, balance, cuotas por vencer)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "yyyy-mm-dd (default: primer día del mes)"
// @Param        to    query  string  false  "yyyy-mm-dd (default: hoy)"
// @Success      200   {object}  dto.DashboardSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if s := c.Query("from"); s != "" {
		parsed, err := sales.ParseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser yyyy-mm-dd"})
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := sales.ParseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser yyyy-mm-dd"})
		}
		// Incluir el día completo.
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	out, err := h.uc.GetSummary(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
