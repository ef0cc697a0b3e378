package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/rank-api/internal/domain"
)

type userRepositoryInMemory struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func NewUserRepositoryInMemory() UserRepository {
	return &userRepositoryInMemory{
		users: make(map[string]domain.User),
	}
}

func (r *userRepositoryInMemory) CreateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// O registro guardado não pode compartilhar ponteiros com o chamador
	stored := *user
	if user.DeletedAt != nil {
		deletedAt := *user.DeletedAt
		stored.DeletedAt = &deletedAt
	}
	r.users[user.ID] = stored

	return nil
}

func (r *userRepositoryInMemory) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}

	return &user, nil
}
