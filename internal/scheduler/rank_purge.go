// Package scheduler contém os serviços de agendamento de tarefas de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-api/infrastructure/repository"
	"github.com/vfg2006/rank-api/internal/config"
)

type RankPurgeConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// RankPurgeService remove definitivamente os ranks marcados como excluídos
// há mais tempo que o período de retenção configurado
type RankPurgeService struct {
	scheduler           *gocron.Scheduler
	rankRepo            repository.RankRepository
	config              RankPurgeConfig
	purgeRunning        bool
	purgeMutex          sync.Mutex
	lastPurgeStartedAt  time.Time
	lastPurgeFinishedAt time.Time
}

func NewRankPurgeService(
	rankRepo repository.RankRepository,
	cfg *config.Config,
) *RankPurgeService {
	purgeConfig := RankPurgeConfig{
		CronSchedule:  cfg.RankPurge.CronSchedule,  // Default: 4h da manhã todos os dias
		RetentionDays: cfg.RankPurge.RetentionDays, // Default: 30 dias
		Enabled:       cfg.RankPurge.Enabled,       // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  purgeConfig.CronSchedule,
		"retention_days": purgeConfig.RetentionDays,
	}).Info("Configuração do agendador de limpeza de ranks carregada")

	return &RankPurgeService{
		scheduler: scheduler,
		rankRepo:  rankRepo,
		config:    purgeConfig,
	}
}

func (s *RankPurgeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de ranks excluídos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de ranks excluídos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.PurgeDeletedRanks(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de ranks excluídos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de ranks excluídos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de ranks")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RankPurgeService) PurgeDeletedRanks(ctx context.Context) error {
	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	if s.purgeRunning {
		logrus.Warn("Limpeza de ranks excluídos já está em execução")
		return nil
	}

	s.purgeRunning = true
	s.lastPurgeStartedAt = time.Now()
	defer func() {
		s.purgeRunning = false
		s.lastPurgeFinishedAt = time.Now()
	}()

	olderThan := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	logrus.WithField("older_than", olderThan.Format(time.RFC3339)).
		Info("Iniciando limpeza de ranks excluídos")

	purged, err := s.rankRepo.PurgeDeleted(ctx, olderThan)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover ranks excluídos")
		return err
	}

	logrus.WithField("purged", purged).Info("Limpeza de ranks excluídos concluída")
	return nil
}
