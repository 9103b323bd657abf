package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body de POST /api/clients.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty"` // active (padrão), inactive
}

// UpdateClientRequest body de PUT /api/clients/{id}. Campos nil não mudam.
// TotalPurchases e LastPurchase não são editáveis (só via compras).
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ClientResponse representação de um cliente.
type ClientResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         string          `json:"status"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	LastPurchase   *time.Time      `json:"last_purchase,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AddPurchaseRequest body de POST /api/clients/{id}/purchases.
type AddPurchaseRequest struct {
	Value    decimal.Decimal `json:"value"`
	Products []string        `json:"products"`
	Status   string          `json:"status,omitempty"` // completed (padrão), pending, cancelled
}

// PurchaseResponse representação de uma compra.
type PurchaseResponse struct {
	ID       string          `json:"id"`
	ClientID string          `json:"client_id"`
	Date     time.Time       `json:"date"`
	Value    decimal.Decimal `json:"value"`
	Products []string        `json:"products"`
	Status   string          `json:"status"`
}
