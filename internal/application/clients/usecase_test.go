package clients

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/domain"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

// fake em memória do repositório de clientes.
type fakeClientRepo struct {
	clients   []*entity.Client
	purchases []*entity.ClientPurchase
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

func (f *fakeClientRepo) Create(c *entity.Client) error {
	f.clients = append(f.clients, c)
	return nil
}

func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) List() ([]*entity.Client, error) { return f.clients, nil }

func (f *fakeClientRepo) Update(c *entity.Client) error {
	for i, cur := range f.clients {
		if cur.ID == c.ID {
			f.clients[i] = c
		}
	}
	return nil
}

func (f *fakeClientRepo) Delete(id string) error {
	for i, c := range f.clients {
		if c.ID == id {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeClientRepo) AddPurchase(p *entity.ClientPurchase) error {
	f.purchases = append(f.purchases, p)
	return nil
}

func (f *fakeClientRepo) ListPurchases(clientID string) ([]*entity.ClientPurchase, error) {
	var out []*entity.ClientPurchase
	for i := len(f.purchases) - 1; i >= 0; i-- {
		if f.purchases[i].ClientID == clientID {
			out = append(out, f.purchases[i])
		}
	}
	return out, nil
}

func (f *fakeClientRepo) UpdateTotals(clientID string, total decimal.Decimal, last time.Time) error {
	c, _ := f.GetByID(clientID)
	if c == nil {
		return nil
	}
	c.TotalPurchases = total
	c.LastPurchase = &last
	c.UpdatedAt = last
	return nil
}

func (f *fakeClientRepo) CountByStatus() (int, int, error) {
	var active, inactive int
	for _, c := range f.clients {
		if c.Status == entity.ClientStatusActive {
			active++
		} else {
			inactive++
		}
	}
	return active, inactive, nil
}

type fakeClientTxRunner struct{ repo *fakeClientRepo }

func (f *fakeClientTxRunner) RunClients(_ context.Context, fn func(repository.ClientRepository) error) error {
	return fn(f.repo)
}

func newClientFixture(t *testing.T) (*ClientUseCase, *fakeClientRepo) {
	t.Helper()
	repo := &fakeClientRepo{}
	return NewClientUseCase(&fakeClientTxRunner{repo: repo}, repo), repo
}

func TestClientUseCase_CreateEValidacao(t *testing.T) {
	uc, _ := newClientFixture(t)

	out, err := uc.Create(dto.CreateClientRequest{Name: "Maria Silva", Email: "maria@exemplo.com", Phone: "11999990000"})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientStatusActive, out.Status, "status padrão deve ser active")
	assert.True(t, out.TotalPurchases.IsZero())
	assert.Nil(t, out.LastPurchase)

	_, err = uc.Create(dto.CreateClientRequest{Name: "", Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateClientRequest{Name: "João", Email: "sem-arroba"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateClientRequest{Name: "João", Email: "a@b.com", Status: "suspended"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// AddPurchase acumula o valor em TotalPurchases e renova LastPurchase.
func TestClientUseCase_AddPurchase(t *testing.T) {
	uc, repo := newClientFixture(t)
	ctx := context.Background()

	created, err := uc.Create(dto.CreateClientRequest{Name: "Maria Silva", Email: "maria@exemplo.com"})
	require.NoError(t, err)

	_, err = uc.AddPurchase(ctx, created.ID, dto.AddPurchaseRequest{
		Value:    decimal.NewFromFloat(120.50),
		Products: []string{"Arroz Integral", "Leite Desnatado"},
	})
	require.NoError(t, err)

	_, err = uc.AddPurchase(ctx, created.ID, dto.AddPurchaseRequest{Value: decimal.NewFromInt(30)})
	require.NoError(t, err)

	c, _ := repo.GetByID(created.ID)
	assert.True(t, c.TotalPurchases.Equal(decimal.NewFromFloat(150.50)),
		"esperado 150.50, obtido %s", c.TotalPurchases)
	require.NotNil(t, c.LastPurchase)

	purchases, err := uc.ListPurchases(created.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, entity.PurchaseStatusCompleted, purchases[0].Status, "status padrão deve ser completed")
}

func TestClientUseCase_AddPurchase_Erros(t *testing.T) {
	uc, _ := newClientFixture(t)
	ctx := context.Background()

	_, err := uc.AddPurchase(ctx, "c999", dto.AddPurchaseRequest{Value: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := uc.Create(dto.CreateClientRequest{Name: "Maria", Email: "m@e.com"})
	require.NoError(t, err)

	_, err = uc.AddPurchase(ctx, created.ID, dto.AddPurchaseRequest{Value: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientUseCase_UpdateNaoTocaTotais(t *testing.T) {
	uc, repo := newClientFixture(t)
	ctx := context.Background()

	created, err := uc.Create(dto.CreateClientRequest{Name: "Maria", Email: "m@e.com"})
	require.NoError(t, err)
	_, err = uc.AddPurchase(ctx, created.ID, dto.AddPurchaseRequest{Value: decimal.NewFromInt(50)})
	require.NoError(t, err)

	newName := "Maria Souza"
	inactive := entity.ClientStatusInactive
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{Name: &newName, Status: &inactive})
	require.NoError(t, err)

	c, _ := repo.GetByID(created.ID)
	assert.Equal(t, "Maria Souza", c.Name)
	assert.Equal(t, entity.ClientStatusInactive, c.Status)
	assert.True(t, c.TotalPurchases.Equal(decimal.NewFromInt(50)), "update não deve alterar totais")
}

func TestClientUseCase_Delete(t *testing.T) {
	uc, _ := newClientFixture(t)

	created, err := uc.Create(dto.CreateClientRequest{Name: "Maria", Email: "m@e.com"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
