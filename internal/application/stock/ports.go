package stock

import (
	"context"
	"time"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
	domstock "github.com/seu-usuario/gestao-pro/internal/domain/stock"
)

// TxRunner executa uma função dentro de uma transação de DB, passando
// repositórios atados a essa tx. Garante a atomicidade de "mutar lote e
// recalcular total" como um passo lógico único: nenhuma leitura observa um
// produto no meio de uma atualização dos seus lotes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReportGenerator renderiza o relatório de posição de estoque (PDF).
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []*entity.Product, stats domstock.Stats, generatedAt time.Time) ([]byte, error)
}
