package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smart-sales-analyzer/internal/config"
	"github.com/vfg2006/smart-sales-analyzer/internal/scheduler"
	"github.com/vfg2006/smart-sales-analyzer/pkg/appErrors"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(log.SetupTestLogger)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzer_WritesFileAndPrintsSummary(t *testing.T) {
	output := filepath.Join(t.TempDir(), "dashboard", "analysis_data.json")

	stdout, _, err := execute(t, "--output", output, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Análise concluída")
	assert.Contains(t, stdout, "Receita Total:")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc, 5)
	for _, key := range []string{"kpis", "charts", "insights", "strategies", "timestamp"} {
		assert.Contains(t, doc, key)
	}
}

func TestAnalyzer_StdoutMode(t *testing.T) {
	stdout, stderr, err := execute(t, "--stdout", "--seed", "7", "--log-level", "error")
	require.NoError(t, err)

	var doc struct {
		KPIs struct {
			ActiveCategories int `json:"active_categories"`
			ActiveRegions    int `json:"active_regions"`
		} `json:"kpis"`
		Charts struct {
			MonthlyTrend struct {
				Labels []string `json:"labels"`
			} `json:"monthly_trend"`
		} `json:"charts"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, 5, doc.KPIs.ActiveCategories)
	assert.Equal(t, 5, doc.KPIs.ActiveRegions)
	assert.Len(t, doc.Charts.MonthlyTrend.Labels, 12)

	assert.Contains(t, stderr, "Análise concluída")
}

func TestAnalyzer_Errors(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{name: "Flag com valor inválido", args: []string{"--seed", "abc"}, expectedExit: appErrors.ExitUsage},
		{name: "Flag desconhecida", args: []string{"--nao-existe"}, expectedExit: appErrors.ExitUsage},
		{name: "Arquivo de configuração ausente", args: []string{"--config", filepath.Join(t.TempDir(), "nao-existe.env")}, expectedExit: appErrors.ExitUsage},
		{name: "Argumento posicional", args: []string{"extra"}, expectedExit: appErrors.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.expectedExit, appErrors.ExitCode(err))
		})
	}
}

func TestAnalyzer_InvalidEnvConfig(t *testing.T) {
	t.Setenv("GENERATOR_MIN_DAILY_TRANSACTIONS", "20")
	t.Setenv("GENERATOR_MAX_DAILY_TRANSACTIONS", "5")

	_, _, err := execute(t, "--output", filepath.Join(t.TempDir(), "out.json"))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidConfig, appErrors.CodeOf(err))
}

func TestAnalyzer_OutputWriteFailure(t *testing.T) {
	// destino é um diretório não vazio, o rename falha
	dir := t.TempDir()
	target := filepath.Join(dir, "analysis_data.json")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "ocupado"), 0o755))

	_, _, err := execute(t, "--output", target, "--log-level", "error")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrOutputWrite, appErrors.CodeOf(err))
	assert.Equal(t, appErrors.ExitFailure, appErrors.ExitCode(err))
}

func TestAnalyzer_PositionalArgumentIsUsageError(t *testing.T) {
	_, _, err := execute(t, "extra")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidFlag, appErrors.CodeOf(err))
}

func TestWatch_HangupTriggersRefreshUntilCanceled(t *testing.T) {
	log.SetupTestLogger()

	var runs atomic.Int32
	cfg := &config.Config{}
	cfg.ReportRefresh.CronSchedule = "0 * * * *"
	refresher := scheduler.NewReportRefreshService(func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	hangup := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		watch(ctx, refresher, hangup)
		close(done)
	}()

	hangup <- syscall.SIGHUP
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch não terminou após o cancelamento")
	}
	assert.Eventually(t, func() bool { return refresher.GetStatus()["completed_runs"] == 1 }, time.Second, 10*time.Millisecond)
}
