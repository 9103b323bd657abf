package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, batch_id, type, quantity, reason, user_id, notes, created_at`

// MovementRepo implementação de MovementRepository sobre PostgreSQL
// (usável com pool ou tx). O log é append-only: só INSERT e SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de movimentações. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.BatchID, m.Type, m.Quantity, m.Reason, m.UserID, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct movimentações de um produto, mais recentes primeiro;
// productID vazio lista todas.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements`
	args := []any{}
	if productID != "" {
		query += ` WHERE product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// ListRecent últimas movimentações, mais recentes primeiro.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.BatchID, &m.Type, &m.Quantity,
			&m.Reason, &m.UserID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
