package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/domain"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
	domstock "github.com/seu-usuario/gestao-pro/internal/domain/stock"
)

// StockUseCase casos de uso do estoque: ciclo de vida de produto/lote,
// consulta com filtros, alertas, estatísticas e catálogos.
//
// Alertas e estatísticas são derivações puras sobre o estado atual
// (internal/domain/stock); aqui só se carrega o estado, aplica-se a marcação
// de leitura persistida e converte-se para DTO.
type StockUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	movementRepo  repository.MovementRepository
	alertReadRepo repository.AlertReadRepository
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	alertReadRepo repository.AlertReadRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		movementRepo:  movementRepo,
		alertReadRepo: alertReadRepo,
	}
}

// CreateProduct cria um produto sem lotes e com total zero.
func (uc *StockUseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Unit:          in.Unit,
		TotalQuantity: decimal.Zero,
		Batches:       []*entity.ProductBatch{},
		Category:      in.Category,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtém um produto (com lotes) por ID.
func (uc *StockUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// UpdateProduct atualiza os campos editáveis do produto. TotalQuantity não
// é editável (derivado dos lotes).
func (uc *StockUseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct remove o produto e todos os lotes dele (cascata): nenhum
// lote sobrevive ao produto pai.
func (uc *StockUseCase) DeleteProduct(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// QueryProducts lista produtos aplicando os filtros (AND), na ordem de
// inserção da coleção. Não pagina.
func (uc *StockUseCase) QueryProducts(in dto.ProductFiltersRequest) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	filtered := domstock.FilterProducts(products, domstock.Filters{
		Unit:         in.Unit,
		Category:     in.Category,
		Search:       in.Search,
		LowStock:     in.LowStock,
		ExpiringSoon: in.ExpiringSoon,
	}, time.Now())

	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// AddBatch acrescenta um lote ao produto e recalcula o total, na mesma
// transação.
func (uc *StockUseCase) AddBatch(ctx context.Context, productID string, in dto.AddBatchRequest) (*dto.BatchResponse, error) {
	if in.BatchNumber == "" || in.ExpirationDate.IsZero() || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	batch := &entity.ProductBatch{
		ID:             uuid.New().String(),
		ProductID:      productID,
		BatchNumber:    in.BatchNumber,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		PurchasePrice:  in.PurchasePrice,
		SalePrice:      in.SalePrice,
		Supplier:       in.Supplier,
		CreatedAt:      time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.AddBatch(batch); err != nil {
			return err
		}
		_, err := productRepo.RecomputeTotal(productID, batch.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// UpdateBatch substitui campos do lote e recalcula o total do produto a
// partir de todos os lotes (equivalente a "total - antigo + novo", mas
// sempre consistente com a fonte de verdade).
func (uc *StockUseCase) UpdateBatch(ctx context.Context, productID, batchID string, in dto.UpdateBatchRequest) (*dto.BatchResponse, error) {
	if in.Quantity != nil && in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.ProductBatch
	err := uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		batch, err := productRepo.GetBatchForUpdate(productID, batchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		if in.BatchNumber != nil {
			if *in.BatchNumber == "" {
				return domain.ErrInvalidInput
			}
			batch.BatchNumber = *in.BatchNumber
		}
		if in.Quantity != nil {
			batch.Quantity = *in.Quantity
		}
		if in.ExpirationDate != nil {
			batch.ExpirationDate = *in.ExpirationDate
		}
		if in.PurchasePrice != nil {
			batch.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil {
			batch.SalePrice = *in.SalePrice
		}
		if in.Supplier != nil {
			batch.Supplier = *in.Supplier
		}
		if err := productRepo.UpdateBatch(batch); err != nil {
			return err
		}
		if _, err := productRepo.RecomputeTotal(productID, time.Now()); err != nil {
			return err
		}
		updated = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBatchResponse(updated), nil
}

// Alerts deriva os alertas vigentes e mescla a marcação de leitura
// persistida (o ID determinístico sobrevive à rederivação).
func (uc *StockUseCase) Alerts() ([]dto.AlertResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	readIDs, err := uc.alertReadRepo.ListReadIDs()
	if err != nil {
		return nil, err
	}
	read := make(map[string]bool, len(readIDs))
	for _, id := range readIDs {
		read[id] = true
	}

	alerts := domstock.DeriveAlerts(products, time.Now())
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			ID:        a.ID,
			ProductID: a.ProductID,
			BatchID:   a.BatchID,
			Type:      a.Type,
			Message:   a.Message,
			Severity:  a.Severity,
			IsRead:    read[a.ID],
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

// MarkAlertRead persiste a marcação de leitura do alerta.
func (uc *StockUseCase) MarkAlertRead(alertID string) error {
	if alertID == "" {
		return domain.ErrInvalidInput
	}
	return uc.alertReadRepo.MarkRead(alertID, time.Now())
}

// Stats reduz a coleção aos contadores-resumo. Os contadores de alerta vêm
// do mesmo conjunto de regras da derivação (nunca duplicados aqui).
func (uc *StockUseCase) Stats() (*dto.StatsResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	s := domstock.ComputeStats(products, time.Now())
	return &dto.StatsResponse{
		TotalProducts:     s.TotalProducts,
		TotalValue:        s.TotalValue,
		LowStockCount:     s.LowStockCount,
		ExpiringSoonCount: s.ExpiringSoonCount,
		ExpiredCount:      s.ExpiredCount,
	}, nil
}

// Movements lista movimentações; productID vazio lista todas.
func (uc *StockUseCase) Movements(productID string) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// Categories categorias distintas em uso.
func (uc *StockUseCase) Categories() ([]string, error) {
	return uc.productRepo.Categories()
}

// Units enumeração fechada de unidades.
func (uc *StockUseCase) Units() []string {
	return entity.Units
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	batches := make([]dto.BatchResponse, 0, len(p.Batches))
	for _, b := range p.Batches {
		batches = append(batches, *toBatchResponse(b))
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Unit:          p.Unit,
		TotalQuantity: p.TotalQuantity,
		Batches:       batches,
		Category:      p.Category,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toBatchResponse(b *entity.ProductBatch) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	return &dto.BatchResponse{
		ID:             b.ID,
		ProductID:      b.ProductID,
		BatchNumber:    b.BatchNumber,
		Quantity:       b.Quantity,
		ExpirationDate: b.ExpirationDate,
		PurchasePrice:  b.PurchasePrice,
		SalePrice:      b.SalePrice,
		Supplier:       b.Supplier,
		CreatedAt:      b.CreatedAt,
	}
}
