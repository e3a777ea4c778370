package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/usecases/archiving"
)

// BackupSnapshotService grava periodicamente uma cópia completa das coleções
// no Postgres e remove as cópias fora da retenção
type BackupSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              config.BackupSnapshot
	archiver            archiving.Archiver
	now                 func() time.Time
	running             bool
	mutex               sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastSnapshotID      int64
	lastPrunedSnapshots int64
}

func NewBackupSnapshotService(archiver archiving.Archiver, appConfig *config.Config) *BackupSnapshotService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  appConfig.BackupSnapshot.CronSchedule,
		"retention_days": appConfig.BackupSnapshot.RetentionDays,
		"enabled":        appConfig.BackupSnapshot.Enabled,
	}).Info("Configuração do agendador de snapshots de backup carregada")

	return &BackupSnapshotService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.BackupSnapshot,
		archiver:  archiver,
		now:       time.Now,
	}
}

func (s *BackupSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshots de backup desabilitados por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de backup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de backup")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BackupSnapshotService) run(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Snapshot de backup já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	snapshot, err := s.archiver.CreateSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshot de backup")
		return
	}

	pruned, err := s.archiver.PruneSnapshots(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"size_bytes":  snapshot.SizeBytes,
		"pruned":      pruned,
	}).Info("Snapshot de backup concluído")

	s.mutex.Lock()
	s.lastSnapshotID = snapshot.ID
	s.lastPrunedSnapshots = pruned
	s.lastRunCompletedAt = s.now()
	s.mutex.Unlock()
}

func (s *BackupSnapshotService) TriggerManualSync() bool {
	s.mutex.Lock()
	running := s.running
	s.mutex.Unlock()

	if running {
		return false
	}

	go s.run(context.Background())
	return true
}

func (s *BackupSnapshotService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"retention_days":        s.config.RetentionDays,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_snapshot_id":      s.lastSnapshotID,
		"last_pruned_snapshots": s.lastPrunedSnapshots,
	}
}
