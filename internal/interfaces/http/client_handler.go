package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestao-pro/internal/application/clients"
	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/domain"
)

// ClientHandler atende as petições HTTP de Client e suas compras (protegido).
type ClientHandler struct {
	uc *clients.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *clients.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Criar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapClientError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapClientError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapClientError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir cliente (cascata: compras somem)
// @Tags         clients
// @Security     Bearer
// @Param        id  path  string  true  "ID do cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapClientError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPurchase godoc
// @Summary      Registrar compra do cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do cliente"
// @Param        body  body  dto.AddPurchaseRequest  true  "Dados da compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/purchases [post]
func (h *ClientHandler) AddPurchase(c *fiber.Ctx) error {
	var in dto.AddPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddPurchase(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapClientError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchases godoc
// @Summary      Listar compras do cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do cliente"
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/clients/{id}/purchases [get]
func (h *ClientHandler) ListPurchases(c *fiber.Ctx) error {
	out, err := h.uc.ListPurchases(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// mapClientError traduz os erros de domínio para HTTP.
func mapClientError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
