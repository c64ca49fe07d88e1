package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Threshold    decimal.Decimal
}

// ReportSyncService recarrega os dados de vendas e regrava os relatórios periodicamente
type ReportSyncService struct {
	scheduler *gocron.Scheduler
	config    ReportSyncConfig
	reporter  reporting.Reporter

	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
}

func NewReportSyncService(reporter reporting.Reporter, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
		Threshold:    appConfig.Report.DefaultThreshold,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"threshold":     syncConfig.Threshold.String(),
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		reporter:  reporter,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador. O job para quando o contexto é cancelado.
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração agendada de relatórios desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReports recarrega os dados e gera todos os relatórios. Execuções
// concorrentes são descartadas.
func (s *ReportSyncService) syncReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	runID, err := s.run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
	s.lastRunID = runID
	s.lastSyncCompletedAt = time.Now()
}

func (s *ReportSyncService) run(ctx context.Context) (string, error) {
	startTime := time.Now()
	logrus.Info("Iniciando geração de relatórios")

	if err := s.reporter.Reload(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar dados de vendas")
		return "", err
	}

	result, err := s.reporter.GenerateAll(ctx, s.config.Threshold)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatórios")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.ID,
		"reports":  len(result.Reports),
		"duration": time.Since(startTime).String(),
	}).Info("Geração de relatórios concluída")

	return result.ID, nil
}

// TriggerManualSync dispara a geração fora do horário agendado. Retorna false se
// já existe uma execução em andamento.
func (s *ReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := s.ctx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios")
	go s.syncReports(ctx)
	return true
}

// GetStatus retorna o status atual da sincronização
func (s *ReportSyncService) GetStatus() map[string]any {
	dataLoadedAt := s.reporter.LoadedAt()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"data_loaded_at":         dataLoadedAt,
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
	}
}
