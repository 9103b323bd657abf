package dto

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
// Reúne os contadores do estoque, dos clientes e as últimas movimentações,
// tudo relativo ao instante da consulta.
type DashboardSummaryDTO struct {
	Stock StatsResponse `json:"stock"`

	TotalClients  int `json:"total_clients"`
	ActiveClients int `json:"active_clients"`

	// Últimas movimentações de estoque (mais recentes primeiro)
	RecentMovements []MovementResponse `json:"recent_movements"`

	// Metadados do período, ex: "Março 2026"
	DateLabel string `json:"date_label"`
}
