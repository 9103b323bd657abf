package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestao-pro/internal/domain"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

func setupProductRepo(t *testing.T) (*ProductRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewProductRepository(mock), mock
}

var productColumns = []string{
	"id", "name", "unit", "total_quantity", "category", "description",
	"created_at", "updated_at",
}

var batchColumns = []string{
	"id", "product_id", "batch_number", "quantity", "expiration_date",
	"purchase_price", "sale_price", "supplier", "created_at",
}

func sampleProduct() *entity.Product {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Product{
		ID:            "0c3a3769-52c1-4a0e-9b0a-6a1f1a111111",
		Name:          "Arroz Integral",
		Unit:          entity.UnitKg,
		TotalQuantity: decimal.NewFromInt(10),
		Category:      "Grãos",
		Description:   "Arroz integral orgânico",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func sampleBatch(productID string) *entity.ProductBatch {
	return &entity.ProductBatch{
		ID:             "7e9d1a52-8a55-4f4f-bb3c-6a1f1a222222",
		ProductID:      productID,
		BatchNumber:    "LOT001",
		Quantity:       decimal.NewFromInt(10),
		ExpirationDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice:  decimal.NewFromFloat(4.50),
		SalePrice:      decimal.NewFromFloat(7.90),
		Supplier:       "Fazenda Boa Vista",
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProductRepo_Create(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	p := sampleProduct()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.Unit, p.TotalQuantity, p.Category, p.Description,
			p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetByID(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	p := sampleProduct()
	b := sampleBatch(p.ID)
	mock.ExpectQuery("SELECT .+ FROM products WHERE id").
		WithArgs(p.ID).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow(p.ID, p.Name, p.Unit, p.TotalQuantity, p.Category, p.Description,
				p.CreatedAt, p.UpdatedAt))
	mock.ExpectQuery("SELECT .+ FROM product_batches WHERE product_id").
		WithArgs(p.ID).
		WillReturnRows(pgxmock.NewRows(batchColumns).
			AddRow(b.ID, b.ProductID, b.BatchNumber, b.Quantity, b.ExpirationDate,
				b.PurchasePrice, b.SalePrice, b.Supplier, b.CreatedAt))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	require.Len(t, got.Batches, 1)
	assert.Equal(t, "LOT001", got.Batches[0].BatchNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Produto inexistente devolve (nil, nil), sem erro.
func TestProductRepo_GetByID_NaoEncontrado(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM products WHERE id").
		WithArgs("p-x").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID("p-x")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetBatchForUpdate(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	b := sampleBatch("p1")
	mock.ExpectQuery("SELECT .+ FROM product_batches WHERE product_id = \\$1 AND id = \\$2\\s+FOR UPDATE").
		WithArgs(b.ProductID, b.ID).
		WillReturnRows(pgxmock.NewRows(batchColumns).
			AddRow(b.ID, b.ProductID, b.BatchNumber, b.Quantity, b.ExpirationDate,
				b.PurchasePrice, b.SalePrice, b.Supplier, b.CreatedAt))

	got, err := repo.GetBatchForUpdate(b.ProductID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(10)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_RecomputeTotal(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("UPDATE products").
		WithArgs("p1", now).
		WillReturnRows(pgxmock.NewRows([]string{"total_quantity"}).
			AddRow(decimal.NewFromInt(120)))

	total, err := repo.RecomputeTotal("p1", now)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(120)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_RecomputeTotal_NaoEncontrado(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("UPDATE products").
		WithArgs("p-x", now).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.RecomputeTotal("p-x", now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Categories(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT DISTINCT category FROM products").
		WillReturnRows(pgxmock.NewRows([]string{"category"}).
			AddRow("Grãos").
			AddRow("Laticínios"))

	categories, err := repo.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Grãos", "Laticínios"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
