package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestao-pro/internal/domain"
	"github.com/seu-usuario/gestao-pro/internal/domain/entity"
	"github.com/seu-usuario/gestao-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, name, status, created_at, updated_at`

// UserRepo implementação de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de usuários. Passar pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um novo usuário. Email é único.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail obtém um usuário por email.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
