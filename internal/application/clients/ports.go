package clients

import (
	"context"

	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação, com o repositório de
// clientes atado a ela. Usado para registrar a compra e acumular os totais
// do cliente como um passo único.
type TxRunner interface {
	RunClients(ctx context.Context, fn func(clientRepo repository.ClientRepository) error) error
}
