package clients

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/domain"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD de clientes e registro de compras.
// TotalPurchases e LastPurchase só mudam via AddPurchase.
type ClientUseCase struct {
	txRunner TxRunner
	repo     repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(txRunner TxRunner, repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{txRunner: txRunner, repo: repo}
}

// Create cria um cliente com totais zerados.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || !validEmail(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	if status != entity.ClientStatusActive && status != entity.ClientStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		Notes:          in.Notes,
		Status:         status,
		TotalPurchases: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtém um cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista todos os clientes na ordem de cadastro.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update atualiza os campos editáveis. TotalPurchases e LastPurchase não
// são editáveis diretamente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.Email != nil {
		if !validEmail(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	if in.Status != nil {
		if *in.Status != entity.ClientStatusActive && *in.Status != entity.ClientStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		client.Status = *in.Status
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete remove o cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AddPurchase registra a compra e acumula o valor no cliente, na mesma
// transação.
func (uc *ClientUseCase) AddPurchase(ctx context.Context, clientID string, in dto.AddPurchaseRequest) (*dto.PurchaseResponse, error) {
	if !in.Value.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PurchaseStatusCompleted
	}
	switch status {
	case entity.PurchaseStatusCompleted, entity.PurchaseStatusPending, entity.PurchaseStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	purchase := &entity.ClientPurchase{
		ID:       uuid.New().String(),
		ClientID: clientID,
		Date:     now,
		Value:    in.Value,
		Products: in.Products,
		Status:   status,
	}
	err := uc.txRunner.RunClients(ctx, func(clientRepo repository.ClientRepository) error {
		client, err := clientRepo.GetByID(clientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		if err := clientRepo.AddPurchase(purchase); err != nil {
			return err
		}
		return clientRepo.UpdateTotals(clientID, client.TotalPurchases.Add(in.Value), now)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// ListPurchases histórico de compras do cliente, mais recentes primeiro.
func (uc *ClientUseCase) ListPurchases(clientID string) ([]dto.PurchaseResponse, error) {
	client, err := uc.repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListPurchases(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

// validEmail checagem mínima de formato; a validação fina é do formulário.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Notes:          c.Notes,
		Status:         c.Status,
		TotalPurchases: c.TotalPurchases,
		LastPurchase:   c.LastPurchase,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toPurchaseResponse(p *entity.ClientPurchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	return &dto.PurchaseResponse{
		ID:       p.ID,
		ClientID: p.ClientID,
		Date:     p.Date,
		Value:    p.Value,
		Products: p.Products,
		Status:   p.Status,
	}
}
