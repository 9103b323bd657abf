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
)

// RegisterMovementUseCase registra movimentações de estoque (entrada/saída)
// de forma transacional, com bloqueio da linha do lote (SELECT FOR UPDATE)
// e Commit/Rollback.
//
// Uma saída maior que a quantidade disponível do lote é rejeitada aqui com
// ErrInsufficientStock, independente da validação do formulário: a
// quantidade de um lote nunca fica negativa.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RegisterMovement valida a entrada, inicia a transação, bloqueia a linha do
// lote, aplica o delta e recalcula o total do produto a partir dos lotes
// (recompute defensivo, nunca delta acumulado). Devolve a movimentação criada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeEntrada && in.Type != entity.MovementTypeSaida {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.BatchID == "" || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// O produto precisa existir antes de abrir a transação
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		BatchID:   in.BatchID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		UserID:    userID,
		Notes:     in.Notes,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do lote; também confirma que pertence ao produto
		batch, err := productRepo.GetBatchForUpdate(in.ProductID, in.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}

		var newQty decimal.Decimal
		if in.Type == entity.MovementTypeEntrada {
			newQty = batch.Quantity.Add(in.Quantity)
		} else {
			if batch.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			newQty = batch.Quantity.Sub(in.Quantity)
		}
		if err := productRepo.UpdateBatchQuantity(batch.ID, newQty); err != nil {
			return err
		}
		if _, err := productRepo.RecomputeTotal(in.ProductID, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		BatchID:   m.BatchID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		UserID:    m.UserID,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
