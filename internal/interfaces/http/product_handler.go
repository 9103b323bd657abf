package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/application/stock"
	"github.com/seu-usuario/gestao-pro/internal/domain"
)

// ProductHandler atende as petições HTTP de Product e seus lotes (protegido).
type ProductHandler struct {
	uc *stock.StockUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *stock.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateProduct(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e unit válida são requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar produtos com filtros
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        unit           query  string  false  "Unidade exata"
// @Param        category       query  string  false  "Categoria exata"
// @Param        search         query  string  false  "Busca em nome/descrição (sem acentos)"
// @Param        low_stock      query  bool    false  "Só produtos com total < 50"
// @Param        expiring_soon  query  bool    false  "Só produtos com lote vencendo em 30 dias"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProductFiltersRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.QueryProducts(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetProduct(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateProduct(id, in)
	if err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir produto (cascata: lotes e alertas derivados somem)
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeleteProduct(id); err != nil {
		return mapProductError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddBatch godoc
// @Summary      Adicionar lote ao produto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AddBatchRequest  true  "Dados do lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches [post]
func (h *ProductHandler) AddBatch(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AddBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddBatch(c.Context(), id, in)
	if err != nil {
		return mapProductError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateBatch godoc
// @Summary      Atualizar lote
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "ID do produto"
// @Param        batchId  path  string  true  "ID do lote"
// @Param        body     body  dto.UpdateBatchRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.BatchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/products/{id}/batches/{batchId} [put]
func (h *ProductHandler) UpdateBatch(c *fiber.Ctx) error {
	id := c.Params("id")
	batchID := c.Params("batchId")
	var in dto.UpdateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateBatch(c.Context(), id, batchID, in)
	if err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(out)
}

// mapProductError traduz os erros de domínio para HTTP.
func mapProductError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto ou lote não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
