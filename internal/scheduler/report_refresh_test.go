package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smart-sales-analyzer/internal/config"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
)

func refreshConfig(enabled bool, cron string) *config.Config {
	cfg := &config.Config{}
	cfg.ReportRefresh.Enabled = enabled
	cfg.ReportRefresh.CronSchedule = cron
	return cfg
}

func TestReportRefreshService_Start(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name        string
		cfg         *config.Config
		expectErr   bool
		expectAlive bool
	}{
		{
			name:        "Desabilitado não agenda nada",
			cfg:         refreshConfig(false, "* * * * *"),
			expectAlive: false,
		},
		{
			name:      "Expressão cron inválida",
			cfg:       refreshConfig(true, "não é cron"),
			expectErr: true,
		},
		{
			name:        "Habilitado inicia o agendador",
			cfg:         refreshConfig(true, "0 * * * *"),
			expectAlive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewReportRefreshService(func(ctx context.Context) error { return nil }, tt.cfg)
			err := service.Start(ctx)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectAlive, service.IsRunning())

			if tt.expectAlive {
				cancel()
				assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
			}
		})
	}
}

func TestReportRefreshService_SkipsOverlappingRuns(t *testing.T) {
	log.SetupTestLogger()

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	var calls atomic.Int32

	service := NewReportRefreshService(func(ctx context.Context) error {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return nil
	}, refreshConfig(true, "0 * * * *"))

	done := make(chan struct{})
	go func() {
		service.refreshReport()
		close(done)
	}()
	<-started

	// segunda rodada enquanto a primeira ainda executa
	service.refreshReport()
	assert.Equal(t, true, service.GetStatus()["refresh_running"])

	close(release)
	<-done

	assert.Equal(t, int32(1), calls.Load())
	status := service.GetStatus()
	assert.Equal(t, false, status["refresh_running"])
	assert.Equal(t, 1, status["completed_runs"])
	assert.NotContains(t, status, "last_run_error")
}

func TestReportRefreshService_RecordsLastError(t *testing.T) {
	log.SetupTestLogger()

	service := NewReportRefreshService(func(ctx context.Context) error {
		return errors.New("falha na gravação")
	}, refreshConfig(true, "0 * * * *"))

	service.refreshReport()

	status := service.GetStatus()
	assert.Equal(t, "falha na gravação", status["last_run_error"])
	assert.Equal(t, 1, status["completed_runs"])
	assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
}

func TestReportRefreshService_TriggerManualRefresh(t *testing.T) {
	log.SetupTestLogger()

	var calls atomic.Int32
	service := NewReportRefreshService(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, refreshConfig(false, ""))

	service.TriggerManualRefresh()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
}
