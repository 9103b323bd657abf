package stock

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

// TotalValue = Σ quantity × purchasePrice; preço ausente conta como zero.
func TestComputeStats_ValorTotal(t *testing.T) {
	products := sampleProducts()
	products[0].Batches[0].PurchasePrice = decimal.NewFromFloat(4.5) // 10 × 4.5 = 45
	// lote de p2 sem purchasePrice: contribui zero

	stats := ComputeStats(products, testNow)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(45)),
		"esperado 45, obtido %s", stats.TotalValue)
}

// Consistência: os contadores por tipo batem com a contagem dos alertas
// derivados do mesmo estado e do mesmo instante.
func TestComputeStats_ConsistenteComAlertas(t *testing.T) {
	products := []*entity.Product{
		productWithBatch(5, testNow.Add(3*24*time.Hour)),  // low_stock + expiring_soon
		productWithBatch(100, testNow.AddDate(0, 0, -1)),  // expired
		productWithBatch(15, farFuture),                   // low_stock
	}

	stats := ComputeStats(products, testNow)
	alerts := DeriveAlerts(products, testNow)

	assert.Equal(t, len(alertsOfType(alerts, entity.AlertTypeLowStock)), stats.LowStockCount)
	assert.Equal(t, len(alertsOfType(alerts, entity.AlertTypeExpiringSoon)), stats.ExpiringSoonCount)
	assert.Equal(t, len(alertsOfType(alerts, entity.AlertTypeExpired)), stats.ExpiredCount)
	assert.Equal(t, 2, stats.LowStockCount)
	assert.Equal(t, 1, stats.ExpiringSoonCount)
	assert.Equal(t, 1, stats.ExpiredCount)
}

func TestComputeStats_Vazio(t *testing.T) {
	stats := ComputeStats(nil, testNow)

	assert.Equal(t, 0, stats.TotalProducts)
	assert.True(t, stats.TotalValue.IsZero())
	assert.Zero(t, stats.LowStockCount)
	assert.Zero(t, stats.ExpiringSoonCount)
	assert.Zero(t, stats.ExpiredCount)
}
