package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/internal/config"
	"github.com/vfg2006/agency-os-api/internal/domain"
	"github.com/vfg2006/agency-os-api/internal/usecases/ledgering"
)

// MetaCampaignSyncConfig representa a configuração do agendador de campanhas do Meta
type MetaCampaignSyncConfig struct {
	CronSchedule        string
	MonthLookBack       int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SyncSummary resume uma execução da sincronização
type SyncSummary struct {
	Clients int   `json:"clients"`
	Synced  int64 `json:"synced"`
	Failed  int64 `json:"failed"`
}

// MetaCampaignSyncService importa, uma vez por mês, as campanhas dos meses
// anteriores de todos os clientes com integração configurada
type MetaCampaignSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetaCampaignSyncConfig
	ledger              ledgering.Ledger
	now                 func() time.Time
	delay               time.Duration
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
}

func NewMetaCampaignSyncService(ledger ledgering.Ledger, appConfig *config.Config) *MetaCampaignSyncService {
	syncConfig := MetaCampaignSyncConfig{
		CronSchedule:        appConfig.MetaSync.CronSchedule,
		MonthLookBack:       max(appConfig.MetaSync.MonthLookBack, 1),
		RequestDelaySeconds: appConfig.MetaSync.RequestDelaySeconds,
		MaxConcurrentJobs:   max(appConfig.MetaSync.MaxConcurrentJobs, 1),
		SyncEnabled:         appConfig.MetaSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"month_lookback":        syncConfig.MonthLookBack,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de campanhas do Meta carregada")

	return &MetaCampaignSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		ledger:    ledger,
		now:       time.Now,
		delay:     time.Duration(syncConfig.RequestDelaySeconds) * time.Second,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *MetaCampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de campanhas do Meta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de campanhas do Meta")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllClients(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de campanhas do Meta: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de campanhas do Meta")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MetaCampaignSyncService) syncAllClients(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de campanhas do Meta já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	summary, err := s.processClients(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes para sincronização de campanhas do Meta")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"clients":  summary.Clients,
		"synced":   summary.Synced,
		"failed":   summary.Failed,
	}).Info("Sincronização de campanhas do Meta concluída")

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// processClients sincroniza os meses anteriores de cada cliente configurado,
// limitando o número de clientes processados em paralelo
func (s *MetaCampaignSyncService) processClients(ctx context.Context) (SyncSummary, error) {
	clients, err := s.ledger.ListClients(ctx)
	if err != nil {
		return SyncSummary{}, err
	}

	periods := s.periodsToProcess()

	var synced, failed atomic.Int64
	var summary SyncSummary

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, client := range clients {
		if !client.MetaSettings.IsConfigured() {
			continue
		}
		summary.Clients++

		wg.Add(1)
		semaphore <- struct{}{}

		go func(clientID, clientName string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			for i, period := range periods {
				if i > 0 && s.delay > 0 {
					time.Sleep(s.delay)
				}

				fields := logrus.Fields{
					"client_id":   clientID,
					"client_name": clientName,
					"period":      period.Key(),
				}

				if _, err := s.ledger.SyncMetaCampaigns(ctx, clientID, period); err != nil {
					failed.Add(1)
					logrus.WithFields(fields).WithError(err).Error("Erro ao sincronizar campanhas do Meta do cliente")
					continue
				}

				synced.Add(1)
				logrus.WithFields(fields).Info("Campanhas do Meta sincronizadas para o cliente")
			}
		}(client.ID, client.Name)
	}

	wg.Wait()

	summary.Synced = synced.Load()
	summary.Failed = failed.Load()
	return summary, nil
}

// periodsToProcess devolve os meses anteriores ao atual, do mais antigo para o mais recente
func (s *MetaCampaignSyncService) periodsToProcess() []domain.Period {
	current := domain.PeriodOf(s.now())

	periods := make([]domain.Period, 0, s.config.MonthLookBack)
	for n := s.config.MonthLookBack; n >= 1; n-- {
		periods = append(periods, current.Previous(n))
	}
	return periods
}

// TriggerManualSync inicia manualmente uma sincronização em segundo plano
func (s *MetaCampaignSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de campanhas do Meta já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de campanhas do Meta")
	go s.syncAllClients(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *MetaCampaignSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_month_lookback":    s.config.MonthLookBack,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
