package repository

import "github.com/seu-usuario/gestao-pro/internal/domain/entity"

// MovementRepository porta de persistência do log de movimentações
// (append-only: só Create e leituras).
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct movimentações de um produto; productID vazio lista todas.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	// ListRecent últimas movimentações, mais recentes primeiro.
	ListRecent(limit int) ([]*entity.StockMovement, error)
}
