package domain

import (
	"time"
)

// User representa um usuário do serviço. O ID é opaco, gerado via nanoid,
// diferente do Rank que tem id derivado do conteúdo.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// CreateUserRequest é o payload de criação de usuário
type CreateUserRequest struct {
	Username string `json:"username"`
}
