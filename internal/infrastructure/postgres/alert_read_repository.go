package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

var _ repository.AlertReadRepository = (*AlertReadRepo)(nil)

// AlertReadRepo persiste as marcações de leitura de alertas. Os alertas em
// si são derivados a cada consulta; só o "lido" sobrevive entre derivações,
// chaveado pelo ID determinístico do alerta ({tipo}-{loteID}).
type AlertReadRepo struct {
	q Querier
}

// NewAlertReadRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAlertReadRepository(q Querier) *AlertReadRepo {
	return &AlertReadRepo{q: q}
}

// MarkRead registra a leitura de um alerta. Idempotente: marcar duas vezes
// mantém a primeira data.
func (r *AlertReadRepo) MarkRead(alertID string, at time.Time) error {
	query := `
		INSERT INTO alert_reads (alert_id, read_at)
		VALUES ($1, $2)
		ON CONFLICT (alert_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, alertID, at)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	return nil
}

// ListReadIDs devolve os IDs de alerta já marcados como lidos.
func (r *AlertReadRepo) ListReadIDs() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT alert_id FROM alert_reads`)
	if err != nil {
		return nil, fmt.Errorf("list read alerts: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan alert id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
