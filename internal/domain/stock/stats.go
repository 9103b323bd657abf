package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

// Stats contadores-resumo do estoque.
type Stats struct {
	TotalProducts     int
	TotalValue        decimal.Decimal // Σ quantity × purchasePrice sobre todos os lotes
	LowStockCount     int
	ExpiringSoonCount int
	ExpiredCount      int
}

// ComputeStats reduz a coleção de produtos aos contadores-resumo.
//
// Os três contadores de alerta são obtidos executando DeriveAlerts e
// contando por tipo: estatísticas e alertas derivam do mesmo conjunto de
// regras e não podem divergir.
func ComputeStats(products []*entity.Product, now time.Time) Stats {
	total := decimal.Zero
	for _, p := range products {
		for _, b := range p.Batches {
			total = total.Add(b.Quantity.Mul(b.PurchasePrice))
		}
	}

	stats := Stats{
		TotalProducts: len(products),
		TotalValue:    total,
	}
	for _, a := range DeriveAlerts(products, now) {
		switch a.Type {
		case entity.AlertTypeLowStock:
			stats.LowStockCount++
		case entity.AlertTypeExpiringSoon:
			stats.ExpiringSoonCount++
		case entity.AlertTypeExpired:
			stats.ExpiredCount++
		}
	}
	return stats
}
