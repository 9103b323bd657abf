package stock

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
)

// LowStockProductThreshold limiar de estoque baixo no nível do produto
// (agregado). É intencionalmente distinto do limiar por lote dos alertas
// (20): política de dois níveis.
var LowStockProductThreshold = decimal.NewFromInt(50)

// Filters critérios opcionais de consulta de produtos, combinados com AND.
type Filters struct {
	Unit         string // igualdade exata
	Category     string // igualdade exata
	Search       string // substring em nome/descrição, sem caixa nem acentos
	LowStock     bool   // somente produtos com TotalQuantity < 50
	ExpiringSoon bool   // somente produtos com algum lote vencendo em até 30 dias
}

// Empty informa se nenhum critério foi definido.
func (f Filters) Empty() bool {
	return f.Unit == "" && f.Category == "" && f.Search == "" && !f.LowStock && !f.ExpiringSoon
}

// FilterProducts aplica os filtros sobre a coleção, preservando a ordem de
// inserção. Não pagina: quem chama aplica a própria paginação.
func FilterProducts(products []*entity.Product, f Filters, now time.Time) []*entity.Product {
	if f.Empty() {
		return products
	}
	search := normalize(f.Search)
	limit := now.Add(expiringWindow)

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if f.Unit != "" && p.Unit != f.Unit {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(normalize(p.Name), search) &&
			!strings.Contains(normalize(p.Description), search) {
			continue
		}
		if f.LowStock && !p.TotalQuantity.LessThan(LowStockProductThreshold) {
			continue
		}
		if f.ExpiringSoon && !anyBatchExpiringBy(p, limit) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func anyBatchExpiringBy(p *entity.Product, limit time.Time) bool {
	for _, b := range p.Batches {
		if !b.ExpirationDate.After(limit) {
			return true
		}
	}
	return false
}

// Remove marcas diacríticas após decompor (NFD); os dados são em português,
// então "Grãos" e "graos" devem casar.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalize(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
