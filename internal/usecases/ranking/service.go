package ranking

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/rank-api/infrastructure/repository"
	"github.com/vfg2006/rank-api/internal/domain"
	"github.com/vfg2006/rank-api/pkg/apiErrors"
)

// RankingService expõe as operações de negócio sobre ranks. A nota submetida
// em RankItem não é validada contra os limites min/max do item: o
// comportamento observável mantém a aceitação silenciosa.
type RankingService interface {
	CreateItem(ctx context.Context, projectID string, request *domain.CreateRankRequest) (*domain.Rank, error)
	GetItem(ctx context.Context, projectID string, itemID string) (*domain.Rank, error)
	RankItem(ctx context.Context, projectID string, itemID string, score float64) error
	DeleteItem(ctx context.Context, projectID string, itemID string) error
}

type Service struct {
	rankRepository repository.RankRepository
}

func NewService(rankRepository repository.RankRepository) RankingService {
	return &Service{
		rankRepository: rankRepository,
	}
}

func (s *Service) CreateItem(ctx context.Context, projectID string, request *domain.CreateRankRequest) (*domain.Rank, error) {
	if request.ItemID == "" {
		return nil, NewRankError(ErrItemIDRequired, apiErrors.ErrMissingRequiredData, "itemId não informado")
	}

	if request.Min > request.Max {
		return nil, NewRankError(ErrInvalidBounds, apiErrors.ErrInvalidRequest, "limites de nota inválidos")
	}

	rank := &domain.Rank{
		ProjectID: projectID,
		ItemID:    request.ItemID,
		Min:       request.Min,
		Max:       request.Max,
		// a média pode ser qualquer valor enquanto total for 0
		Average:   0,
		Total:     0,
		CreatedAt: time.Now().UTC(),
	}
	rank.ComputeID()

	if err := s.rankRepository.Save(ctx, rank); err != nil {
		return nil, NewRankErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rank.ID, "falha ao salvar rank")
	}

	return rank, nil
}

// GetItem retorna (nil, nil) quando o item não existe
func (s *Service) GetItem(ctx context.Context, projectID string, itemID string) (*domain.Rank, error) {
	rank := domain.Rank{ProjectID: projectID, ItemID: itemID}

	found, err := s.rankRepository.Get(ctx, rank.ComputedID())
	if err != nil {
		return nil, NewRankErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rank.ComputedID(), "falha ao buscar rank")
	}

	return found, nil
}

func (s *Service) RankItem(ctx context.Context, projectID string, itemID string, score float64) error {
	rank := domain.Rank{ProjectID: projectID, ItemID: itemID}

	err := s.rankRepository.Rank(ctx, rank.ComputedID(), score)
	if err != nil {
		if errors.Is(err, repository.ErrRankNotFound) {
			return NewRankErrorWithID(ErrRankNotFound, apiErrors.ErrRankNotFound, rank.ComputedID(), "")
		}
		return NewRankErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rank.ComputedID(), "falha ao aplicar nota")
	}

	return nil
}

func (s *Service) DeleteItem(ctx context.Context, projectID string, itemID string) error {
	rank := domain.Rank{ProjectID: projectID, ItemID: itemID}

	err := s.rankRepository.SoftDelete(ctx, rank.ComputedID())
	if err != nil {
		if errors.Is(err, repository.ErrRankNotFound) {
			return NewRankErrorWithID(ErrRankNotFound, apiErrors.ErrRankNotFound, rank.ComputedID(), "")
		}
		return NewRankErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rank.ComputedID(), "falha ao excluir rank")
	}

	return nil
}
