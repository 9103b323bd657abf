package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

// ClientRepository porta de persistência para Client e suas compras.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error

	AddPurchase(purchase *entity.ClientPurchase) error
	// ListPurchases compras do cliente, mais recentes primeiro.
	ListPurchases(clientID string) ([]*entity.ClientPurchase, error)
	// UpdateTotals acumula o valor comprado e renova last_purchase/updated_at.
	UpdateTotals(clientID string, totalPurchases decimal.Decimal, lastPurchase time.Time) error

	// CountByStatus devolve os totais de clientes ativos e inativos.
	CountByStatus() (active, inactive int, err error)
}
