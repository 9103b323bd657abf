// Package pdf implementa a geração do Relatório de Posição de Estoque.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do negócio  │  Data/hora de geração           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Produtos / Valor total / Baixo / Vencendo / Vencido│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Categoria | Un. | Quantidade             │
//	│          └─ lotes: número, quantidade, validade             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: legenda de geração                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appstock "github.com/seu-usuario/gestao-pro/internal/application/stock"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	domstock "github.com/seu-usuario/gestao-pro/internal/domain/stock"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 83, Blue: 9}
	colorDanger  = &props.Color{Red: 185, Green: 28, Blue: 28}
)

var _ appstock.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa stock.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// GenerateStockReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(
	_ context.Context,
	products []*entity.Product,
	stats domstock.Stats,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
		for _, r := range batchRows(p, generatedAt) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(generatedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do negócio (esq) e data de geração (dir).
func headerRow(businessName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de Posição de Estoque", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Gerado em", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: contadores derivados das mesmas regras dos alertas.
func summaryRow(stats domstock.Stats) core.Row {
	metric := func(label, value string, color *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center, Color: color,
			}),
		)
	}
	return row.New(14).Add(
		metric("Produtos", fmt.Sprintf("%d", stats.TotalProducts), colorPrimary),
		col.New(2).Add(
			text.New("Valor total", props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New("R$ "+stats.TotalValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center, Color: colorPrimary,
			}),
		),
		metric("Estoque baixo", fmt.Sprintf("%d", stats.LowStockCount), colorWarning),
		metric("Vencendo", fmt.Sprintf("%d", stats.ExpiringSoonCount), colorWarning),
		metric("Vencidos", fmt.Sprintf("%d", stats.ExpiredCount), colorDanger),
		col.New(2),
	)
}

// tableHeaderRow: cabeçalho da tabela de produtos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 5, align.Left),
		h("Categoria", 3, align.Left),
		h("Un.", 1, align.Center),
		h("Quantidade", 3, align.Right),
	)
}

// productRow: uma linha por produto, com o total agregado dos lotes.
func productRow(p *entity.Product) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(p.Name, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(p.Category, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
		})),
		col.New(1).Add(text.New(p.Unit, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(3).Add(text.New(p.TotalQuantity.String(), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// batchRows: sublinhas com os lotes do produto; validade vencida em vermelho.
func batchRows(p *entity.Product, now time.Time) []core.Row {
	result := make([]core.Row, 0, len(p.Batches))
	for _, b := range p.Batches {
		expColor := colorGray
		if !b.ExpirationDate.After(now) {
			expColor = colorDanger
		}
		result = append(result, row.New(5).Add(
			col.New(5).Add(text.New("  └ Lote "+b.BatchNumber, props.Text{
				Size: 7, Align: align.Left, Top: 0.5, Left: 3, Color: colorGray,
			})),
			col.New(3).Add(text.New("Validade: "+b.ExpirationDate.Format("02/01/2006"), props.Text{
				Size: 7, Align: align.Left, Top: 0.5, Left: 1, Color: expColor,
			})),
			col.New(1),
			col.New(3).Add(text.New(b.Quantity.String(), props.Text{
				Size: 7, Align: align.Right, Top: 0.5, Right: 1, Color: colorGray,
			})),
		))
	}
	return result
}

// footerRow: legenda de geração.
func footerRow(generatedAt time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Posição de estoque em %s. Contadores calculados com as mesmas regras dos alertas do painel.",
				generatedAt.Format("02/01/2006 15:04")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
