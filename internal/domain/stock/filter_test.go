package stock

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

func sampleProducts() []*entity.Product {
	p1 := &entity.Product{
		ID:            "p1",
		Name:          "Arroz Integral",
		Unit:          entity.UnitKg,
		Category:      "Grãos",
		Description:   "Arroz integral orgânico",
		TotalQuantity: decimal.NewFromInt(10),
		Batches: []*entity.ProductBatch{{
			ID: "b1", ProductID: "p1", BatchNumber: "LOT001",
			Quantity:       decimal.NewFromInt(10),
			ExpirationDate: testNow.AddDate(1, 0, 0),
		}},
	}
	p2 := &entity.Product{
		ID:            "p2",
		Name:          "Leite Desnatado",
		Unit:          entity.UnitLitro,
		Category:      "Laticínios",
		Description:   "Leite desnatado UHT",
		TotalQuantity: decimal.NewFromInt(80),
		Batches: []*entity.ProductBatch{{
			ID: "b2", ProductID: "p2", BatchNumber: "LOT003",
			Quantity:       decimal.NewFromInt(80),
			ExpirationDate: testNow.Add(10 * 24 * time.Hour),
		}},
	}
	return []*entity.Product{p1, p2}
}

// Sem filtros devolve a coleção inteira na ordem de inserção.
func TestFilterProducts_SemFiltros(t *testing.T) {
	products := sampleProducts()
	out := FilterProducts(products, Filters{}, testNow)

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p2", out[1].ID)
}

// Composição AND: unit=kg + lowStock devolve exatamente [P1].
func TestFilterProducts_ComposicaoAND(t *testing.T) {
	out := FilterProducts(sampleProducts(), Filters{Unit: entity.UnitKg, LowStock: true}, testNow)

	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestFilterProducts_Categoria(t *testing.T) {
	out := FilterProducts(sampleProducts(), Filters{Category: "Laticínios"}, testNow)

	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}

// Busca textual sem diferenciar caixa nem acentos, em nome e descrição.
func TestFilterProducts_BuscaSemAcentos(t *testing.T) {
	products := sampleProducts()

	out := FilterProducts(products, Filters{Search: "ARROZ"}, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)

	// "organico" deve casar com a descrição "orgânico"
	out = FilterProducts(products, Filters{Search: "organico"}, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)

	out = FilterProducts(products, Filters{Search: "uht"}, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}

// Limiar de produto (50) é distinto do limiar de lote dos alertas (20):
// total 49 entra no filtro lowStock, total 50 não.
func TestFilterProducts_LimiarDeProduto(t *testing.T) {
	products := sampleProducts()
	products[1].TotalQuantity = decimal.NewFromInt(49)

	out := FilterProducts(products, Filters{LowStock: true}, testNow)
	require.Len(t, out, 2)

	products[1].TotalQuantity = decimal.NewFromInt(50)
	out = FilterProducts(products, Filters{LowStock: true}, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

// expiringSoon inclui produtos com algum lote na janela de 30 dias.
func TestFilterProducts_VencendoEmBreve(t *testing.T) {
	out := FilterProducts(sampleProducts(), Filters{ExpiringSoon: true}, testNow)

	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}
