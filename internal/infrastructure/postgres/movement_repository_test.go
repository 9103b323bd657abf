package postgres

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

func TestMovementRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewMovementRepository(mock)

	m := &entity.StockMovement{
		ID:        "3f1c2a11-0000-4000-8000-000000000001",
		ProductID: "p1",
		BatchID:   "b1",
		Type:      entity.MovementTypeSaida,
		Quantity:  decimal.NewFromInt(5),
		Reason:    "Venda",
		UserID:    "u1",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec("INSERT INTO stock_movements").
		WithArgs(m.ID, m.ProductID, m.BatchID, m.Type, m.Quantity, m.Reason,
			m.UserID, m.Notes, m.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementRepo_ListByProduct_TodasQuandoVazio(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewMovementRepository(mock)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "product_id", "batch_id", "type", "quantity", "reason", "user_id", "notes", "created_at"}
	mock.ExpectQuery("SELECT .+ FROM stock_movements ORDER BY created_at DESC").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("m2", "p2", "b2", "entrada", decimal.NewFromInt(3), "Compra", "u1", "", now).
			AddRow("m1", "p1", "b1", "saida", decimal.NewFromInt(2), "Venda", "u1", "", now.Add(-time.Hour)))

	list, err := repo.ListByProduct("")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m2", list[0].ID, "mais recente primeiro")
	assert.NoError(t, mock.ExpectationsWereMet())
}
