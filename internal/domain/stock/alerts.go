// Package stock contém os serviços de domínio do estoque: derivação de
// alertas, filtro de produtos e agregação de estatísticas. São funções
// puras sobre o estado atual dos produtos/lotes; não tocam persistência.
package stock

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

// Limiares dos alertas por lote. O limiar de produto (agregado) usado pelo
// filtro é distinto — ver LowStockProductThreshold em filter.go.
var (
	lowStockThreshold     = decimal.NewFromInt(20) // abaixo disso o lote gera low_stock
	lowStockHighThreshold = decimal.NewFromInt(10) // abaixo disso a severidade sobe para high
)

// Janelas de vencimento.
const (
	expiringWindow     = 30 * 24 * time.Hour // vence dentro de 30 dias -> expiring_soon
	expiringHighWindow = 7 * 24 * time.Hour  // vence dentro de 7 dias -> high
)

// DeriveAlerts varre todos os lotes de todos os produtos e produz os alertas
// vigentes em relação a "now". Função pura: o mesmo estado e o mesmo now
// produzem exatamente o mesmo conjunto (mesmos IDs, tipos e severidades).
//
// Um lote avalia as três regras de forma independente e pode gerar de zero a
// três alertas ao mesmo tempo. IsRead inicia sempre em false; a marcação de
// leitura persistida é aplicada por quem chama (ver application/stock).
func DeriveAlerts(products []*entity.Product, now time.Time) []entity.StockAlert {
	var alerts []entity.StockAlert

	for _, p := range products {
		for _, b := range p.Batches {
			// Estoque baixo
			if b.Quantity.LessThan(lowStockThreshold) {
				severity := entity.SeverityMedium
				if b.Quantity.LessThan(lowStockHighThreshold) {
					severity = entity.SeverityHigh
				}
				alerts = append(alerts, entity.StockAlert{
					ID:        alertID(entity.AlertTypeLowStock, b.ID),
					ProductID: p.ID,
					BatchID:   b.ID,
					Type:      entity.AlertTypeLowStock,
					Message:   fmt.Sprintf("%s (Lote %s) está com estoque baixo: %s unidades", p.Name, b.BatchNumber, b.Quantity.String()),
					Severity:  severity,
					IsRead:    false,
					CreatedAt: now,
				})
			}

			// Próximo do vencimento: now < vencimento <= now+30d
			if b.ExpirationDate.After(now) && !b.ExpirationDate.After(now.Add(expiringWindow)) {
				severity := entity.SeverityMedium
				if !b.ExpirationDate.After(now.Add(expiringHighWindow)) {
					severity = entity.SeverityHigh
				}
				alerts = append(alerts, entity.StockAlert{
					ID:        alertID(entity.AlertTypeExpiringSoon, b.ID),
					ProductID: p.ID,
					BatchID:   b.ID,
					Type:      entity.AlertTypeExpiringSoon,
					Message:   fmt.Sprintf("%s (Lote %s) vence em %d dias", p.Name, b.BatchNumber, daysUntil(now, b.ExpirationDate)),
					Severity:  severity,
					IsRead:    false,
					CreatedAt: now,
				})
			}

			// Vencido: vencimento <= now
			if !b.ExpirationDate.After(now) {
				alerts = append(alerts, entity.StockAlert{
					ID:        alertID(entity.AlertTypeExpired, b.ID),
					ProductID: p.ID,
					BatchID:   b.ID,
					Type:      entity.AlertTypeExpired,
					Message:   fmt.Sprintf("%s (Lote %s) está vencido desde %s", p.Name, b.BatchNumber, b.ExpirationDate.Format("02/01/2006")),
					Severity:  entity.SeverityHigh,
					IsRead:    false,
					CreatedAt: now,
				})
			}
		}
	}
	return alerts
}

// alertID monta o ID determinístico {tipo}-{batchID}, estável entre
// rederivações para permitir correlação idempotente da marcação de leitura.
func alertID(alertType, batchID string) string {
	return alertType + "-" + batchID
}

// daysUntil dias (arredondados para cima) entre now e o vencimento.
func daysUntil(now, expiration time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}
