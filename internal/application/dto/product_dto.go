package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products.
// O produto nasce sem lotes e com total zero; lotes entram depois via
// POST /api/products/{id}/batches.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"` // unidade, kg, litro, metro, caixa, pacote
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest body de PUT /api/products/{id}. Campos nil não mudam.
// TotalQuantity não é editável: é derivado dos lotes.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddBatchRequest body de POST /api/products/{id}/batches.
type AddBatchRequest struct {
	BatchNumber    string          `json:"batch_number"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate time.Time       `json:"expiration_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice      decimal.Decimal `json:"sale_price,omitempty"`
	Supplier       string          `json:"supplier,omitempty"`
}

// UpdateBatchRequest body de PUT /api/products/{id}/batches/{batchId}.
// Campos nil não mudam. Alterar Quantity por aqui é um ajuste direto do
// lote; movimentações de entrada/saída passam por /api/stock/movements.
type UpdateBatchRequest struct {
	BatchNumber    *string          `json:"batch_number,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice      *decimal.Decimal `json:"sale_price,omitempty"`
	Supplier       *string          `json:"supplier,omitempty"`
}

// BatchResponse representação de um lote nas respostas.
type BatchResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	BatchNumber    string          `json:"batch_number"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate time.Time       `json:"expiration_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Supplier       string          `json:"supplier,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ProductResponse representação de um produto com seus lotes.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Batches       []BatchResponse `json:"batches"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse resposta de GET /api/products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductFiltersRequest query params de GET /api/products, combinados com AND.
type ProductFiltersRequest struct {
	Unit         string `query:"unit"`
	Category     string `query:"category"`
	Search       string `query:"search"`
	LowStock     bool   `query:"low_stock"`
	ExpiringSoon bool   `query:"expiring_soon"`
}
