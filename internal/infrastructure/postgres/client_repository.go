package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestao-pro/internal/domain"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, email, phone, address, notes, status, total_purchases, last_purchase, created_at, updated_at`

// ClientRepo implementação de ClientRepository sobre PostgreSQL
// (usável com pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador de clientes. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Notes, c.Status,
		c.TotalPurchases, c.LastPurchase, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes, &c.Status,
		&c.TotalPurchases, &c.LastPurchase, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista todos os clientes em ordem de criação.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes,
			&c.Status, &c.TotalPurchases, &c.LastPurchase, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza os campos editáveis do cliente. Totais não passam por aqui
// (só via UpdateTotals, dentro da transação de compra).
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, address = $5, notes = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Notes, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina um cliente; as compras caem em cascata (FK ON DELETE CASCADE).
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// AddPurchase persiste uma compra.
func (r *ClientRepo) AddPurchase(p *entity.ClientPurchase) error {
	query := `
		INSERT INTO client_purchases (id, client_id, date, value, products, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClientID, p.Date, p.Value, p.Products, p.Status,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListPurchases compras de um cliente, mais recentes primeiro.
func (r *ClientRepo) ListPurchases(clientID string) ([]*entity.ClientPurchase, error) {
	query := `
		SELECT id, client_id, date, value, products, status
		FROM client_purchases WHERE client_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientPurchase
	for rows.Next() {
		var p entity.ClientPurchase
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Date, &p.Value, &p.Products, &p.Status); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateTotals atualiza o acumulado de compras e a data da última compra.
func (r *ClientRepo) UpdateTotals(clientID string, totalPurchases decimal.Decimal, lastPurchase time.Time) error {
	query := `
		UPDATE clients SET total_purchases = $2, last_purchase = $3, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, clientID, totalPurchases, lastPurchase)
	if err != nil {
		return fmt.Errorf("update client totals: %w", err)
	}
	return nil
}

// CountByStatus devolve os contadores de clientes ativos e inativos.
func (r *ClientRepo) CountByStatus() (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status <> 'active')
		FROM clients`
	var active, inactive int
	if err := r.q.QueryRow(context.Background(), query).Scan(&active, &inactive); err != nil {
		return 0, 0, fmt.Errorf("count clients: %w", err)
	}
	return active, inactive, nil
}
