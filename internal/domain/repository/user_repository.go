package repository

import "github.com/seu-usuario/gestao-pro/internal/domain/entity"

// UserRepository porta de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
