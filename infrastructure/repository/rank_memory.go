package repository

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/rank-api/internal/domain"
)

// rankRepositoryInMemory é o backend de referência para testes e execução
// local. Um único mutex protege o mapa inteiro: chamadas concorrentes para
// ids diferentes são serializadas, o que é um custo aceito para esta
// implementação.
type rankRepositoryInMemory struct {
	mu    sync.Mutex
	ranks map[string]domain.Rank
}

func NewRankRepositoryInMemory() RankRepository {
	return &rankRepositoryInMemory{
		ranks: make(map[string]domain.Rank),
	}
}

func (r *rankRepositoryInMemory) Get(_ context.Context, id string) (*domain.Rank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rank, ok := r.ranks[id]
	if !ok || rank.DeletedAt != nil {
		return nil, nil
	}

	// Cópia independente: o chamador nunca recebe um alias do mapa
	return &rank, nil
}

func (r *rankRepositoryInMemory) Save(_ context.Context, rank *domain.Rank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// O registro guardado não pode compartilhar ponteiros com o chamador
	stored := *rank
	if rank.DeletedAt != nil {
		deletedAt := *rank.DeletedAt
		stored.DeletedAt = &deletedAt
	}
	r.ranks[rank.ComputedID()] = stored

	return nil
}

func (r *rankRepositoryInMemory) Rank(_ context.Context, id string, score float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rank, ok := r.ranks[id]
	if !ok || rank.DeletedAt != nil {
		return ErrRankNotFound
	}

	rank.UpdateScore(score)
	r.ranks[id] = rank

	return nil
}

func (r *rankRepositoryInMemory) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rank, ok := r.ranks[id]
	if !ok || rank.DeletedAt != nil {
		return ErrRankNotFound
	}

	now := time.Now()
	rank.DeletedAt = &now
	r.ranks[id] = rank

	return nil
}

func (r *rankRepositoryInMemory) PurgeDeleted(_ context.Context, olderThan time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	for id, rank := range r.ranks {
		if rank.DeletedAt != nil && rank.DeletedAt.Before(olderThan) {
			delete(r.ranks, id)
			purged++
		}
	}

	return purged, nil
}
