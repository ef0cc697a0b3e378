package ranking

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/rank-api/infrastructure/repository"
	"github.com/vfg2006/rank-api/infrastructure/repository/mocks"
	"github.com/vfg2006/rank-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name     string
		request  *domain.CreateRankRequest
		setup    func(repo *mocks.MockRankRepository)
		validate func(t *testing.T, rank *domain.Rank, err error)
	}{
		{
			name:    "Item novo é salvo com id derivado e contadores zerados",
			request: &domain.CreateRankRequest{ItemID: "i1", Min: 1, Max: 5},
			setup: func(repo *mocks.MockRankRepository) {
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rank *domain.Rank) error {
						assert.Equal(t, "p1i1", rank.ID)
						assert.Equal(t, int64(0), rank.Total)
						assert.Equal(t, 0.0, rank.Average)
						assert.False(t, rank.CreatedAt.IsZero())
						return nil
					})
			},
			validate: func(t *testing.T, rank *domain.Rank, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "p1i1", rank.ID)
				assert.Equal(t, 1.0, rank.Min)
				assert.Equal(t, 5.0, rank.Max)
			},
		},
		{
			name:    "Item sem itemId é rejeitado",
			request: &domain.CreateRankRequest{Min: 1, Max: 5},
			setup:   func(repo *mocks.MockRankRepository) {},
			validate: func(t *testing.T, rank *domain.Rank, err error) {
				assert.Nil(t, rank)
				assert.True(t, errors.Is(err, ErrItemIDRequired))
			},
		},
		{
			name:    "Limites invertidos são rejeitados",
			request: &domain.CreateRankRequest{ItemID: "i1", Min: 5, Max: 1},
			setup:   func(repo *mocks.MockRankRepository) {},
			validate: func(t *testing.T, rank *domain.Rank, err error) {
				assert.Nil(t, rank)
				assert.True(t, errors.Is(err, ErrInvalidBounds))
			},
		},
		{
			name:    "Falha do repositório vira erro de banco de dados",
			request: &domain.CreateRankRequest{ItemID: "i1", Min: 1, Max: 5},
			setup: func(repo *mocks.MockRankRepository) {
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, rank *domain.Rank, err error) {
				assert.Nil(t, rank)
				assert.True(t, errors.Is(err, ErrDatabaseOperation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRankRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			rank, err := service.CreateItem(ctx, "p1", tt.request)
			tt.validate(t, rank, err)
		})
	}
}

func TestService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Item existente é retornado pelo id derivado", func(t *testing.T) {
		repo := mocks.NewMockRankRepository(ctrl)
		repo.EXPECT().
			Get(gomock.Any(), "p1i1").
			Return(&domain.Rank{ID: "p1i1", Average: 4.0, Total: 3}, nil)

		service := NewService(repo)
		rank, err := service.GetItem(ctx, "p1", "i1")

		assert.NoError(t, err)
		assert.Equal(t, 4.0, rank.Average)
	})

	t.Run("Item inexistente retorna nil sem erro", func(t *testing.T) {
		repo := mocks.NewMockRankRepository(ctrl)
		repo.EXPECT().
			Get(gomock.Any(), "p1i1").
			Return(nil, nil)

		service := NewService(repo)
		rank, err := service.GetItem(ctx, "p1", "i1")

		assert.NoError(t, err)
		assert.Nil(t, rank)
	})
}

func TestService_RankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Nota é encaminhada ao repositório com o id derivado", func(t *testing.T) {
		repo := mocks.NewMockRankRepository(ctrl)
		repo.EXPECT().
			Rank(gomock.Any(), "p1i1", 4.5).
			Return(nil)

		service := NewService(repo)
		assert.NoError(t, service.RankItem(ctx, "p1", "i1", 4.5))
	})

	t.Run("Registro ausente vira ErrRankNotFound", func(t *testing.T) {
		repo := mocks.NewMockRankRepository(ctrl)
		repo.EXPECT().
			Rank(gomock.Any(), "p1i1", 4.5).
			Return(repository.ErrRankNotFound)

		service := NewService(repo)
		err := service.RankItem(ctx, "p1", "i1", 4.5)

		assert.True(t, errors.Is(err, ErrRankNotFound))
	})
}

func TestService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Exclusão de item inexistente vira ErrRankNotFound", func(t *testing.T) {
		repo := mocks.NewMockRankRepository(ctrl)
		repo.EXPECT().
			SoftDelete(gomock.Any(), "p1i1").
			Return(repository.ErrRankNotFound)

		service := NewService(repo)
		err := service.DeleteItem(ctx, "p1", "i1")

		assert.True(t, errors.Is(err, ErrRankNotFound))
	})

	t.Run("Exclusão com sucesso não retorna erro", func(t *testing.T) {
		repo := mocks.NewMockRankRepository(ctrl)
		repo.EXPECT().
			SoftDelete(gomock.Any(), "p1i1").
			Return(nil)

		service := NewService(repo)
		assert.NoError(t, service.DeleteItem(ctx, "p1", "i1"))
	})
}
