package repository

import "time"

// AlertReadRepository persiste as marcações de leitura dos alertas.
//
// Os alertas são derivados a cada consulta, mas o ID determinístico
// ({tipo}-{batchID}) é estável, então a marcação sobrevive à rederivação:
// grava-se o ID lido e a derivação seguinte mescla IsRead a partir daqui.
type AlertReadRepository interface {
	MarkRead(alertID string, at time.Time) error
	ListReadIDs() ([]string, error)
}
