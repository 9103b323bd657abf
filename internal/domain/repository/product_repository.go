package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

// ProductRepository porta de persistência do agregado Product (produto +
// lotes). GetByID e List sempre devolvem o produto com os lotes carregados,
// ordenados por criação; List preserva a ordem de inserção da coleção.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete remove o produto e, em cascata, todos os seus lotes.
	Delete(id string) error

	AddBatch(batch *entity.ProductBatch) error
	UpdateBatch(batch *entity.ProductBatch) error
	GetBatch(productID, batchID string) (*entity.ProductBatch, error)
	// GetBatchForUpdate bloqueia a linha do lote (SELECT FOR UPDATE).
	// Usar dentro de transações, via TxRunner.
	GetBatchForUpdate(productID, batchID string) (*entity.ProductBatch, error)
	UpdateBatchQuantity(batchID string, quantity decimal.Decimal) error

	// RecomputeTotal recalcula total_quantity a partir dos lotes (fonte de
	// verdade) em um único UPDATE, renova updated_at e devolve o novo total.
	RecomputeTotal(productID string, updatedAt time.Time) (decimal.Decimal, error)

	// Categories categorias distintas em uso, ordenadas alfabeticamente.
	Categories() ([]string, error)
}
