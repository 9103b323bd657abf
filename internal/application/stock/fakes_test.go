package stock

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

// Fakes em memória para os testes dos casos de uso. Reproduzem o contrato
// dos repositórios Postgres, inclusive a ordem de inserção em List.

type fakeProductRepo struct {
	products []*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	for i, cur := range f.products {
		if cur.ID == p.ID {
			f.products[i] = p
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) AddBatch(b *entity.ProductBatch) error {
	p, _ := f.GetByID(b.ProductID)
	if p == nil {
		return nil
	}
	p.Batches = append(p.Batches, b)
	return nil
}

func (f *fakeProductRepo) UpdateBatch(b *entity.ProductBatch) error {
	p, _ := f.GetByID(b.ProductID)
	if p == nil {
		return nil
	}
	for i, cur := range p.Batches {
		if cur.ID == b.ID {
			p.Batches[i] = b
		}
	}
	return nil
}

func (f *fakeProductRepo) GetBatch(productID, batchID string) (*entity.ProductBatch, error) {
	p, _ := f.GetByID(productID)
	if p == nil {
		return nil, nil
	}
	return p.FindBatch(batchID), nil
}

func (f *fakeProductRepo) GetBatchForUpdate(productID, batchID string) (*entity.ProductBatch, error) {
	return f.GetBatch(productID, batchID)
}

func (f *fakeProductRepo) UpdateBatchQuantity(batchID string, quantity decimal.Decimal) error {
	for _, p := range f.products {
		if b := p.FindBatch(batchID); b != nil {
			b.Quantity = quantity
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) RecomputeTotal(productID string, updatedAt time.Time) (decimal.Decimal, error) {
	p, _ := f.GetByID(productID)
	if p == nil {
		return decimal.Zero, nil
	}
	p.TotalQuantity = p.SumBatches()
	p.UpdatedAt = updatedAt
	return p.TotalQuantity, nil
}

func (f *fakeProductRepo) Categories() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	if productID == "" {
		return f.movements, nil
	}
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	n := len(f.movements)
	var out []*entity.StockMovement
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.movements[i])
	}
	return out, nil
}

type fakeAlertReadRepo struct {
	read map[string]bool
}

var _ repository.AlertReadRepository = (*fakeAlertReadRepo)(nil)

func (f *fakeAlertReadRepo) MarkRead(alertID string, _ time.Time) error {
	if f.read == nil {
		f.read = map[string]bool{}
	}
	f.read[alertID] = true
	return nil
}

func (f *fakeAlertReadRepo) ListReadIDs() ([]string, error) {
	out := make([]string, 0, len(f.read))
	for id := range f.read {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// fakeTxRunner executa o callback direto sobre os fakes (sem transação).
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.productRepo)
}
