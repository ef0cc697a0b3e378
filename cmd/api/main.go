package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-api/infrastructure/repository"
	"github.com/vfg2006/rank-api/internal/api"
	"github.com/vfg2006/rank-api/internal/config"
	"github.com/vfg2006/rank-api/internal/scheduler"
	"github.com/vfg2006/rank-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-api/internal/usecases/registering"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rankRepo, userRepo, cleanup := buildRepositories(ctx, cfg)
	defer cleanup()

	rankingService := ranking.NewService(rankRepo)
	userService := registering.NewService(userRepo)

	rankPurgeService := scheduler.NewRankPurgeService(rankRepo, cfg)
	if err := rankPurgeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de ranks")
	}

	server, err := api.New(cfg, rankingService, userService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// buildRepositories seleciona o backend de persistência conforme a configuração
func buildRepositories(ctx context.Context, cfg *config.Config) (repository.RankRepository, repository.UserRepository, func()) {
	if cfg.Repository.Driver == "memory" {
		logrus.Info("Usando repositórios em memória")
		return repository.NewRankRepositoryInMemory(), repository.NewUserRepositoryInMemory(), func() {}
	}

	pgConn := pgconn(ctx, cfg.Database)

	return repository.NewRankRepository(pgConn),
		repository.NewUserRepository(pgConn),
		func() {
			if err := pgConn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
