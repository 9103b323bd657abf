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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos.
// Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto. TotalQuantity inicia em 0 (sem lotes).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, unit, total_quantity, category, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Unit, product.TotalQuantity,
		product.Category, product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID, com os lotes carregados em ordem de criação.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, unit, total_quantity, category, description, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Unit, &p.TotalQuantity, &p.Category, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	batches, err := r.listBatches(id)
	if err != nil {
		return nil, err
	}
	p.Batches = batches
	return &p, nil
}

// List lista todos os produtos em ordem de criação, com os lotes carregados.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, unit, total_quantity, category, description, created_at, updated_at
		FROM products ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	byID := make(map[string]*entity.Product)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.TotalQuantity, &p.Category,
			&p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Carrega todos os lotes em uma única consulta e agrupa por produto.
	batchQuery := `
		SELECT id, product_id, batch_number, quantity, expiration_date, purchase_price, sale_price, supplier, created_at
		FROM product_batches ORDER BY created_at ASC, id ASC`
	batchRows, err := r.q.Query(context.Background(), batchQuery)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer batchRows.Close()
	for batchRows.Next() {
		var b entity.ProductBatch
		if err := batchRows.Scan(&b.ID, &b.ProductID, &b.BatchNumber, &b.Quantity,
			&b.ExpirationDate, &b.PurchasePrice, &b.SalePrice, &b.Supplier, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		if p, ok := byID[b.ProductID]; ok {
			p.Batches = append(p.Batches, &b)
		}
	}
	return list, batchRows.Err()
}

// Update atualiza os campos editáveis do produto. TotalQuantity não é
// editável aqui (só via RecomputeTotal).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, unit = $3, category = $4, description = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Unit, product.Category,
		product.Description, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina um produto; os lotes caem em cascata (FK ON DELETE CASCADE).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// AddBatch persiste um novo lote.
func (r *ProductRepo) AddBatch(batch *entity.ProductBatch) error {
	query := `
		INSERT INTO product_batches (id, product_id, batch_number, quantity, expiration_date, purchase_price, sale_price, supplier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.BatchNumber, batch.Quantity,
		batch.ExpirationDate, batch.PurchasePrice, batch.SalePrice, batch.Supplier, batch.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// UpdateBatch atualiza um lote existente.
func (r *ProductRepo) UpdateBatch(batch *entity.ProductBatch) error {
	query := `
		UPDATE product_batches SET batch_number = $2, quantity = $3, expiration_date = $4, purchase_price = $5, sale_price = $6, supplier = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.BatchNumber, batch.Quantity, batch.ExpirationDate,
		batch.PurchasePrice, batch.SalePrice, batch.Supplier,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// GetBatch obtém um lote pelo par produto/lote.
func (r *ProductRepo) GetBatch(productID, batchID string) (*entity.ProductBatch, error) {
	return r.getBatch(productID, batchID, false)
}

// GetBatchForUpdate obtém o lote bloqueando a linha (SELECT FOR UPDATE).
// Usar dentro de transações, via TxRunner.
func (r *ProductRepo) GetBatchForUpdate(productID, batchID string) (*entity.ProductBatch, error) {
	return r.getBatch(productID, batchID, true)
}

func (r *ProductRepo) getBatch(productID, batchID string, forUpdate bool) (*entity.ProductBatch, error) {
	query := `
		SELECT id, product_id, batch_number, quantity, expiration_date, purchase_price, sale_price, supplier, created_at
		FROM product_batches WHERE product_id = $1 AND id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var b entity.ProductBatch
	err := r.q.QueryRow(context.Background(), query, productID, batchID).Scan(
		&b.ID, &b.ProductID, &b.BatchNumber, &b.Quantity, &b.ExpirationDate,
		&b.PurchasePrice, &b.SalePrice, &b.Supplier, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// UpdateBatchQuantity atualiza só a quantidade do lote (movimentações).
func (r *ProductRepo) UpdateBatchQuantity(batchID string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_batches SET quantity = $2 WHERE id = $1`,
		batchID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	return nil
}

// RecomputeTotal recalcula total_quantity como a soma das quantidades dos
// lotes (fonte de verdade) em um único UPDATE e devolve o novo total.
func (r *ProductRepo) RecomputeTotal(productID string, updatedAt time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE products
		SET total_quantity = COALESCE((SELECT SUM(quantity) FROM product_batches WHERE product_id = $1), 0),
		    updated_at = $2
		WHERE id = $1
		RETURNING total_quantity`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, productID, updatedAt).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("recompute total: %w", err)
	}
	return total, nil
}

// Categories devolve as categorias distintas em uso, ordenadas.
func (r *ProductRepo) Categories() ([]string, error) {
	query := `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// listBatches lotes de um produto em ordem de criação.
func (r *ProductRepo) listBatches(productID string) ([]*entity.ProductBatch, error) {
	query := `
		SELECT id, product_id, batch_number, quantity, expiration_date, purchase_price, sale_price, supplier, created_at
		FROM product_batches WHERE product_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var batches []*entity.ProductBatch
	for rows.Next() {
		var b entity.ProductBatch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.BatchNumber, &b.Quantity,
			&b.ExpirationDate, &b.PurchasePrice, &b.SalePrice, &b.Supplier, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, &b)
	}
	return batches, rows.Err()
}
