package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/seu-usuario/gestao-pro/internal/application/analytics"
	"github.com/seu-usuario/gestao-pro/internal/application/dto"
)

// DashboardHandler atende os endpoints do módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devolve o resumo da tela inicial.
// GET /api/dashboard/summary
//
// Resposta: DashboardSummaryDTO (stock, total_clients, active_clients,
// recent_movements[5], date_label).
// Não requer parâmetros; tudo é calculado no servidor no instante da chamada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
