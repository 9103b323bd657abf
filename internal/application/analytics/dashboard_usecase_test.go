package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

// stubs read-only: só os métodos que o dashboard consulta.

type stubProductRepo struct {
	repository.ProductRepository
	products []*entity.Product
}

func (s *stubProductRepo) List() ([]*entity.Product, error) { return s.products, nil }

type stubClientRepo struct {
	repository.ClientRepository
	active, inactive int
}

func (s *stubClientRepo) CountByStatus() (int, int, error) { return s.active, s.inactive, nil }

type stubMovementRepo struct {
	repository.MovementRepository
	movements []*entity.StockMovement
}

func (s *stubMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	if len(s.movements) > limit {
		return s.movements[:limit], nil
	}
	return s.movements, nil
}

func TestDashboardUseCase_GetSummary(t *testing.T) {
	now := time.Now()
	expired := now.Add(-24 * time.Hour)

	products := []*entity.Product{
		{
			ID: "p1", Name: "Arroz Integral", Unit: entity.UnitKg,
			TotalQuantity: decimal.NewFromInt(5),
			Batches: []*entity.ProductBatch{
				{ID: "b1", ProductID: "p1", BatchNumber: "LOT001",
					Quantity:       decimal.NewFromInt(5),
					ExpirationDate: expired,
					PurchasePrice:  decimal.NewFromInt(4)},
			},
		},
	}
	movements := []*entity.StockMovement{
		{ID: "m1", ProductID: "p1", BatchID: "b1", Type: entity.MovementTypeSaida,
			Quantity: decimal.NewFromInt(2), Reason: "Venda", CreatedAt: now},
	}

	uc := NewDashboardUseCase(
		&stubProductRepo{products: products},
		&stubClientRepo{active: 3, inactive: 1},
		&stubMovementRepo{movements: movements},
	)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Stock.TotalProducts)
	assert.True(t, out.Stock.TotalValue.Equal(decimal.NewFromInt(20)), "5 × 4 = 20")
	assert.Equal(t, 1, out.Stock.LowStockCount, "qty 5 < 20")
	assert.Equal(t, 1, out.Stock.ExpiredCount)
	assert.Equal(t, 0, out.Stock.ExpiringSoonCount)

	assert.Equal(t, 4, out.TotalClients)
	assert.Equal(t, 3, out.ActiveClients)

	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, "m1", out.RecentMovements[0].ID)

	assert.NotEmpty(t, out.DateLabel)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Março 2026", monthLabel(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dezembro 2025", monthLabel(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}
