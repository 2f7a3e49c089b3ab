package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-sales-analyzer/internal/config"
	"github.com/vfg2006/smart-sales-analyzer/pkg/middleware"
)

// ReportRefreshConfig representa a configuração do agendador de atualização do dashboard
type ReportRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportRefreshService regenera o relatório do dashboard em intervalos definidos por cron
type ReportRefreshService struct {
	scheduler          *gocron.Scheduler
	config             ReportRefreshConfig
	job                middleware.Job
	runCtx             context.Context
	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunErr         error
	completedRuns      int
}

// NewReportRefreshService cria uma nova instância do serviço de atualização agendada
func NewReportRefreshService(job middleware.Job, appConfig *config.Config) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule: appConfig.ReportRefresh.CronSchedule,
		Enabled:      appConfig.ReportRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do relatório carregada")

	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		job:       job,
		runCtx:    context.Background(),
	}
}

// Start inicia o agendador. Retorna nil sem agendar nada quando desabilitado.
func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do relatório")

	s.refreshMutex.Lock()
	s.runCtx = ctx
	s.refreshMutex.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshReport executa uma rodada, ignorando o disparo se outra ainda estiver em andamento
func (s *ReportRefreshService) refreshReport() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do relatório já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	ctx := s.runCtx
	s.refreshMutex.Unlock()

	err := s.job(ctx)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRunCompletedAt = time.Now()
	s.lastRunErr = err
	s.completedRuns++
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro na atualização agendada do relatório")
		return
	}
	logrus.Info("Atualização agendada do relatório concluída")
}

// TriggerManualRefresh inicia manualmente uma atualização fora do cron
func (s *ReportRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando atualização manual do relatório")
	go s.refreshReport()
}

// GetStatus retorna o status atual da atualização agendada
func (s *ReportRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"scheduler_running":     s.IsRunning(),
		"refresh_running":       s.refreshRunning,
		"refresh_cron":          s.config.CronSchedule,
		"refresh_enabled":       s.config.Enabled,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"completed_runs":        s.completedRuns,
	}
	if s.lastRunErr != nil {
		status["last_run_error"] = s.lastRunErr.Error()
	}
	return status
}

// IsRunning indica se o agendador está ativo
func (s *ReportRefreshService) IsRunning() bool {
	return s.scheduler.IsRunning()
}
