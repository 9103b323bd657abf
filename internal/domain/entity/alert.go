package entity

import "time"

// Tipos de alerta de estoque.
const (
	AlertTypeLowStock     = "low_stock"
	AlertTypeExpiringSoon = "expiring_soon"
	AlertTypeExpired      = "expired"
)

// Severidades de alerta.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// StockAlert é um alerta transiente, derivado do estado atual dos lotes.
// O ID é determinístico ({tipo}-{batchID}), estável entre rederivações,
// o que permite correlacionar a marcação de leitura persistida.
type StockAlert struct {
	ID        string
	ProductID string
	BatchID   string
	Type      string // low_stock, expiring_soon, expired
	Message   string
	Severity  string // low, medium, high
	IsRead    bool
	CreatedAt time.Time
}
