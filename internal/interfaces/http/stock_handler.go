package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/application/stock"
	"github.com/seu-usuario/gestao-pro/internal/domain"
)

// StockHandler atende movimentações, alertas, estatísticas e catálogos.
type StockHandler struct {
	uc       *stock.StockUseCase
	register *stock.RegisterMovementUseCase
	report   *stock.ReportUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.StockUseCase, register *stock.RegisterMovementUseCase, report *stock.ReportUseCase) *StockHandler {
	return &StockHandler{uc: uc, register: register, report: report}
}

// RegisterMovement godoc
// @Summary      Registrar movimentação (entrada/saída)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Dados da movimentação"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.register.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, product_id, batch_id, reason e quantity > 0 são requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto ou lote não encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "quantidade no lote insuficiente para a saída"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimentações
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por produto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.Movements(c.Query("product_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas derivados do estado atual do estoque
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkAlertRead godoc
// @Summary      Marcar alerta como lido
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID determinístico do alerta ({tipo}-{loteId})"
// @Success      204
// @Router       /api/stock/alerts/{id}/read [patch]
func (h *StockHandler) MarkAlertRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAlertRead(c.Params("id")); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id do alerta é requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Estatísticas agregadas do estoque
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stock/stats [get]
func (h *StockHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorias distintas em uso
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/stock/categories [get]
func (h *StockHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Units godoc
// @Summary      Unidades de medida aceitas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/stock/units [get]
func (h *StockHandler) Units(c *fiber.Ctx) error {
	return c.JSON(h.uc.Units())
}

// Report godoc
// @Summary      Relatório de posição de estoque (PDF)
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/stock/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.report.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="estoque-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(pdf)
}
