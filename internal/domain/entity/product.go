package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	UnitUnidade = "unidade"
	UnitKg      = "kg"
	UnitLitro   = "litro"
	UnitMetro   = "metro"
	UnitCaixa   = "caixa"
	UnitPacote  = "pacote"
)

// Units lista fechada de unidades aceitas (superfície de configuração).
var Units = []string{UnitUnidade, UnitKg, UnitLitro, UnitMetro, UnitCaixa, UnitPacote}

// ValidUnit informa se a unidade pertence à enumeração fechada.
func ValidUnit(u string) bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}

// Product representa um item do estoque (agregado). É o dono exclusivo dos
// seus lotes: nenhum ProductBatch existe sem produto pai, e a exclusão do
// produto remove todos os lotes.
//
// TotalQuantity é derivado: sempre igual à soma de Quantity dos lotes.
// Nunca é editado de forma independente; recalcula-se após qualquer
// mutação de lote.
type Product struct {
	ID            string
	Name          string
	Unit          string // unidade, kg, litro, metro, caixa, pacote
	TotalQuantity decimal.Decimal
	Batches       []*ProductBatch // ordenados por criação
	Category      string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time // renovado em qualquer mutação do produto ou de um lote
}

// SumBatches retorna a soma das quantidades dos lotes (fonte de verdade
// para TotalQuantity).
func (p *Product) SumBatches() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.Batches {
		total = total.Add(b.Quantity)
	}
	return total
}

// FindBatch localiza um lote do produto pelo ID. Retorna nil se não pertence.
func (p *Product) FindBatch(batchID string) *ProductBatch {
	for _, b := range p.Batches {
		if b.ID == batchID {
			return b
		}
	}
	return nil
}

// ProductBatch representa um lote: quantidade datada e precificada de um
// produto. ProductID é referência fraca para lookup; a posse é do Product.
type ProductBatch struct {
	ID             string
	ProductID      string
	BatchNumber    string // etiqueta do lote, não é única globalmente
	Quantity       decimal.Decimal
	ExpirationDate time.Time
	PurchasePrice  decimal.Decimal // alimenta o valor total do estoque; zero se não informado
	SalePrice      decimal.Decimal
	Supplier       string
	CreatedAt      time.Time
}
