package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/rank-api/internal/domain"
)

func TestUserRepositoryInMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepositoryInMemory()

	t.Run("Usuário inexistente retorna nil sem erro", func(t *testing.T) {
		user, err := repo.GetUserByID(ctx, "desconhecido")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("CreateUser seguido de GetUserByID retorna o usuário", func(t *testing.T) {
		created := &domain.User{
			ID:        "V1StGXR8_Z5jdHi6B-myT",
			Username:  "maria",
			CreatedAt: time.Now().UTC(),
		}
		assert.NoError(t, repo.CreateUser(ctx, created))

		user, err := repo.GetUserByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "maria", user.Username)
	})

	t.Run("GetUserByID retorna cópia independente", func(t *testing.T) {
		user, err := repo.GetUserByID(ctx, "V1StGXR8_Z5jdHi6B-myT")
		assert.NoError(t, err)

		user.Username = "outro"

		again, err := repo.GetUserByID(ctx, "V1StGXR8_Z5jdHi6B-myT")
		assert.NoError(t, err)
		assert.Equal(t, "maria", again.Username)
	})
}
