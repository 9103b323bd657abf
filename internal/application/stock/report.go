package stock

import (
	"context"
	"time"

	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
	domstock "github.com/seu-usuario/gestao-pro/internal/domain/stock"
)

// ReportUseCase gera o relatório de posição de estoque em PDF.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	generator   ReportGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, generator: generator}
}

// Generate monta a posição atual (produtos + estatísticas derivadas das
// mesmas regras dos alertas) e delega a renderização ao gerador.
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	stats := domstock.ComputeStats(products, now)
	return uc.generator.GenerateStockReport(ctx, products, stats, now)
}
