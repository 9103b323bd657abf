package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body de POST /api/stock/movements.
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id"`
	BatchID   string          `json:"batch_id"`
	Type      string          `json:"type"` // entrada, saida
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Notes     string          `json:"notes,omitempty"`
}

// MovementResponse representação de uma movimentação registrada.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	BatchID   string          `json:"batch_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	UserID    string          `json:"user_id"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AlertResponse representação de um alerta derivado.
type AlertResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	BatchID   string    `json:"batch_id"`
	Type      string    `json:"type"`     // low_stock, expiring_soon, expired
	Message   string    `json:"message"`
	Severity  string    `json:"severity"` // low, medium, high
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse resposta de GET /api/stock/stats.
type StatsResponse struct {
	TotalProducts     int             `json:"total_products"`
	TotalValue        decimal.Decimal `json:"total_value"`
	LowStockCount     int             `json:"low_stock_count"`
	ExpiringSoonCount int             `json:"expiring_soon_count"`
	ExpiredCount      int             `json:"expired_count"`
}
