// seed popula o banco com um conjunto de demonstração: um usuário admin,
// dois produtos com lotes (um deles vencendo em breve, para exercitar os
// alertas do painel) e uma cliente com compra registrada.
//
// Uso: go run ./cmd/seed
// Requer as mesmas variáveis de ambiente do cmd/api (DB_HOST etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/infrastructure/postgres"
	"github.com/seu-usuario/gestao-pro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("carregar configuração", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexão com PostgreSQL", err)
	}
	defer pool.Close()

	now := time.Now()

	// Usuário de demonstração
	userRepo := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte("gestao123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash da senha", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@exemplo.com",
		PasswordHash: string(hash),
		Name:         "Administrador",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Println("usuário admin já existe, pulando")
	} else {
		fmt.Println("usuário: admin@exemplo.com / gestao123")
	}

	// Produtos com lotes
	productRepo := postgres.NewProductRepository(pool)

	arroz := &entity.Product{
		ID:            uuid.New().String(),
		Name:          "Arroz Integral",
		Unit:          entity.UnitKg,
		TotalQuantity: decimal.Zero,
		Category:      "Grãos",
		Description:   "Arroz integral orgânico tipo 1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := productRepo.Create(arroz); err != nil {
		fail("criar produto", err)
	}
	addBatch(productRepo, arroz.ID, "LOT001", 10, now.AddDate(0, 0, 20), 4.50, 7.90, "Fazenda Boa Vista", now)
	addBatch(productRepo, arroz.ID, "LOT002", 40, now.AddDate(0, 6, 0), 4.20, 7.90, "Fazenda Boa Vista", now)

	leite := &entity.Product{
		ID:            uuid.New().String(),
		Name:          "Leite Desnatado",
		Unit:          entity.UnitLitro,
		TotalQuantity: decimal.Zero,
		Category:      "Laticínios",
		Description:   "Leite desnatado UHT",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := productRepo.Create(leite); err != nil {
		fail("criar produto", err)
	}
	addBatch(productRepo, leite.ID, "LOT003", 80, now.AddDate(0, 2, 0), 3.10, 5.50, "Laticínios Serra Azul", now)

	for _, id := range []string{arroz.ID, leite.ID} {
		if _, err := productRepo.RecomputeTotal(id, now); err != nil {
			fail("recalcular total", err)
		}
	}
	fmt.Println("produtos: Arroz Integral (2 lotes), Leite Desnatado (1 lote)")

	// Cliente com compra
	clientRepo := postgres.NewClientRepository(pool)
	maria := &entity.Client{
		ID:             uuid.New().String(),
		Name:           "Maria Silva",
		Email:          "maria@exemplo.com",
		Phone:          "11999990000",
		Status:         entity.ClientStatusActive,
		TotalPurchases: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := clientRepo.Create(maria); err != nil {
		fail("criar cliente", err)
	}
	purchase := &entity.ClientPurchase{
		ID:       uuid.New().String(),
		ClientID: maria.ID,
		Date:     now,
		Value:    decimal.NewFromFloat(120.50),
		Products: []string{"Arroz Integral", "Leite Desnatado"},
		Status:   entity.PurchaseStatusCompleted,
	}
	if err := clientRepo.AddPurchase(purchase); err != nil {
		fail("registrar compra", err)
	}
	if err := clientRepo.UpdateTotals(maria.ID, purchase.Value, purchase.Date); err != nil {
		fail("atualizar totais da cliente", err)
	}
	fmt.Println("cliente: Maria Silva (1 compra)")

	fmt.Println("seed concluído")
}

func addBatch(repo *postgres.ProductRepo, productID, number string, qty float64, expiration time.Time, purchasePrice, salePrice float64, supplier string, now time.Time) {
	b := &entity.ProductBatch{
		ID:             uuid.New().String(),
		ProductID:      productID,
		BatchNumber:    number,
		Quantity:       decimal.NewFromFloat(qty),
		ExpirationDate: expiration,
		PurchasePrice:  decimal.NewFromFloat(purchasePrice),
		SalePrice:      decimal.NewFromFloat(salePrice),
		Supplier:       supplier,
		CreatedAt:      now,
	}
	if err := repo.AddBatch(b); err != nil {
		fail("criar lote "+number, err)
	}
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
