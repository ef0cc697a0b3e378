// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/rank-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-api/internal/domain"
)

const (
	ranksTable = "ranks"
)

// RankRepository abstrai a persistência de ranks, independente do backend
// (Postgres ou memória). Get retorna (nil, nil) quando o id não existe.
type RankRepository interface {
	Get(ctx context.Context, id string) (*domain.Rank, error)
	Save(ctx context.Context, rank *domain.Rank) error
	Rank(ctx context.Context, id string, score float64) error
	SoftDelete(ctx context.Context, id string) error
	PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error)
}

type rankRepository struct {
	conn *postgres.Connection
}

func NewRankRepository(conn *postgres.Connection) RankRepository {
	return &rankRepository{
		conn: conn,
	}
}

func (r *rankRepository) Get(ctx context.Context, id string) (*domain.Rank, error) {
	query, args, err := squirrel.
		Select("id", "project_id", "item_id", "total", "average", "min", "max", "created_at", "deleted_at").
		From(ranksTable).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rank, err := r.scanRank(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear rank: %w", err)
	}

	return rank, nil
}

func (r *rankRepository) Save(ctx context.Context, rank *domain.Rank) error {
	queryBuilder := squirrel.
		Insert(ranksTable).
		Columns("id", "project_id", "item_id", "total", "average", "min", "max", "created_at", "deleted_at").
		Values(rank.ComputedID(), rank.ProjectID, rank.ItemID, rank.Total, rank.Average, rank.Min, rank.Max, rank.CreatedAt, rank.DeletedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				project_id = EXCLUDED.project_id,
				item_id = EXCLUDED.item_id,
				total = EXCLUDED.total,
				average = EXCLUDED.average,
				min = EXCLUDED.min,
				max = EXCLUDED.max,
				created_at = EXCLUDED.created_at,
				deleted_at = EXCLUDED.deleted_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// Rank aplica uma nova nota ao registro dentro de uma transação: lê a linha
// com FOR UPDATE, recalcula a média via domain.Rank.UpdateScore e grava
// somente average e total. Repetição em caso de conflito fica a cargo de
// postgres.Connection.RunInTransaction.
func (r *rankRepository) Rank(ctx context.Context, id string, score float64) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Select("id", "project_id", "item_id", "total", "average", "min", "max", "created_at", "deleted_at").
			From(ranksTable).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL").
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		rank, err := r.scanRank(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrRankNotFound
			}
			return fmt.Errorf("erro ao escanear rank: %w", err)
		}

		rank.UpdateScore(score)

		updateSQL, updateArgs, err := squirrel.
			Update(ranksTable).
			Set("average", rank.Average).
			Set("total", rank.Total).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de atualização: %w", err)
		}

		if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar rank: %w", err)
		}

		return nil
	})
}

func (r *rankRepository) SoftDelete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Update(ranksTable).
		Set("deleted_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir rank: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if affected == 0 {
		return ErrRankNotFound
	}

	return nil
}

// PurgeDeleted remove definitivamente os ranks marcados como excluídos antes
// de olderThan. Usado pelo agendador de limpeza.
func (r *rankRepository) PurgeDeleted(ctx context.Context, olderThan time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(ranksTable).
		Where("deleted_at IS NOT NULL").
		Where(squirrel.Lt{"deleted_at": olderThan}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de limpeza: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de limpeza: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected, nil
}

func (r *rankRepository) scanRank(row *sql.Row) (*domain.Rank, error) {
	rank := &domain.Rank{}

	err := row.Scan(
		&rank.ID,
		&rank.ProjectID,
		&rank.ItemID,
		&rank.Total,
		&rank.Average,
		&rank.Min,
		&rank.Max,
		&rank.CreatedAt,
		&rank.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return rank, nil
}
