package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSaida   = "saida"
)

// Motivos sugeridos por tipo de movimentação. O campo Reason aceita também
// texto livre; a lista existe para os formulários.
var (
	EntradaReasons = []string{"compra", "devolucao", "ajuste", "transferencia"}
	SaidaReasons   = []string{"venda", "perda", "vencimento", "ajuste", "transferencia"}
)

// StockMovement é o registro append-only de uma movimentação aplicada a um
// lote. Nunca é mutado após a criação; o efeito sobre o lote é aplicado
// exatamente uma vez, de forma síncrona, no momento da criação.
type StockMovement struct {
	ID        string
	ProductID string
	BatchID   string
	Type      string // entrada, saida
	Quantity  decimal.Decimal // sempre > 0; o tipo dá o sinal
	Reason    string
	UserID    string
	Notes     string
	CreatedAt time.Time
}
