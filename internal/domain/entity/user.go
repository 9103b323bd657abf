package entity

import "time"

// User representa um usuário do sistema (login do painel).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
