package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Client.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Status válidos para ClientPurchase.
const (
	PurchaseStatusCompleted = "completed"
	PurchaseStatusPending   = "pending"
	PurchaseStatusCancelled = "cancelled"
)

// Client representa um cliente do negócio.
// TotalPurchases acumula o valor das compras registradas; nunca é editado
// diretamente, apenas via AddPurchase.
type Client struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Address        string
	Notes          string
	Status         string // active, inactive
	TotalPurchases decimal.Decimal
	LastPurchase   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClientPurchase registro de uma compra feita por um cliente.
type ClientPurchase struct {
	ID       string
	ClientID string
	Date     time.Time
	Value    decimal.Decimal
	Products []string // nomes dos produtos comprados
	Status   string   // completed, pending, cancelled
}
