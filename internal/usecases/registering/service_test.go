package registering

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/rank-api/infrastructure/repository/mocks"
	"github.com/vfg2006/rank-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Usuário recebe id opaco de 21 caracteres", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Len(t, user.ID, 21)
				assert.Equal(t, "maria", user.Username)
				assert.False(t, user.CreatedAt.IsZero())
				return nil
			})

		service := NewService(repo)
		user, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "maria"})

		assert.NoError(t, err)
		assert.Len(t, user.ID, 21)
	})

	t.Run("Ids gerados são distintos entre usuários", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		service := NewService(repo)
		first, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "a"})
		assert.NoError(t, err)
		second, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "b"})
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Usuário sem username é rejeitado", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(ctrl)

		service := NewService(repo)
		user, err := service.CreateUser(ctx, &domain.CreateUserRequest{})

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, ErrUsernameRequired))
	})
}

func TestService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Usuário inexistente retorna nil sem erro", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByID(gomock.Any(), "abc").Return(nil, nil)

		service := NewService(repo)
		user, err := service.GetUser(ctx, "abc")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Falha do repositório vira erro de banco de dados", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByID(gomock.Any(), "abc").Return(nil, errors.New("conexão recusada"))

		service := NewService(repo)
		user, err := service.GetUser(ctx, "abc")

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, ErrDatabaseOperation))
	})
}
