// Package analytics contém o caso de uso do resumo do dashboard: contadores
// de estoque, de clientes e as últimas movimentações em uma única resposta.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/seu-usuario/gestao-pro/internal/application/dto"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
	domstock "github.com/seu-usuario/gestao-pro/internal/domain/stock"
)

const dashboardRecentMovements = 5 // movimentações no widget do dashboard

// DashboardUseCase monta o resumo exibido na tela inicial.
//
// Fonte de dados: repositórios read-only; os contadores de estoque saem das
// mesmas regras de alerta usadas em GET /api/stock/alerts.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		movementRepo: movementRepo,
	}
}

// GetSummary constrói o DashboardSummaryDTO relativo ao instante da chamada.
//
// Três consultas em paralelo:
//  1. List de produtos       → Stats (ComputeStats sobre os lotes)
//  2. CountByStatus          → TotalClients + ActiveClients
//  3. ListRecent(5)          → RecentMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	type stockResult struct {
		stats domstock.Stats
		err   error
	}
	type clientsResult struct {
		active   int
		inactive int
		err      error
	}
	type movementsResult struct {
		movements []*entity.StockMovement
		err       error
	}

	stockCh := make(chan stockResult, 1)
	clientsCh := make(chan clientsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		products, err := uc.productRepo.List()
		if err != nil {
			stockCh <- stockResult{err: err}
			return
		}
		stockCh <- stockResult{stats: domstock.ComputeStats(products, now)}
	}()
	go func() {
		active, inactive, err := uc.clientRepo.CountByStatus()
		clientsCh <- clientsResult{active, inactive, err}
	}()
	go func() {
		movements, err := uc.movementRepo.ListRecent(dashboardRecentMovements)
		movementsCh <- movementsResult{movements, err}
	}()

	stock := <-stockCh
	clients := <-clientsCh
	movements := <-movementsCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: estatísticas de estoque: %w", stock.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: contagem de clientes: %w", clients.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimentações recentes: %w", movements.err)
	}

	recent := make([]dto.MovementResponse, 0, len(movements.movements))
	for _, m := range movements.movements {
		recent = append(recent, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			BatchID:   m.BatchID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			UserID:    m.UserID,
			Notes:     m.Notes,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		Stock: dto.StatsResponse{
			TotalProducts:     stock.stats.TotalProducts,
			TotalValue:        stock.stats.TotalValue,
			LowStockCount:     stock.stats.LowStockCount,
			ExpiringSoonCount: stock.stats.ExpiringSoonCount,
			ExpiredCount:      stock.stats.ExpiredCount,
		},
		TotalClients:    clients.active + clients.inactive,
		ActiveClients:   clients.active,
		RecentMovements: recent,
		DateLabel:       monthLabel(now),
	}, nil
}

// monthLabel devolve uma etiqueta legível do mês, ex: "Março 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
