package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vfg2006/smart-sales-analyzer/infrastructure/artifact"
	"github.com/vfg2006/smart-sales-analyzer/internal/config"
	"github.com/vfg2006/smart-sales-analyzer/internal/scheduler"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/publishing"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/reporting"
	"github.com/vfg2006/smart-sales-analyzer/pkg/appErrors"
	"github.com/vfg2006/smart-sales-analyzer/pkg/console"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
	"github.com/vfg2006/smart-sales-analyzer/pkg/middleware"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		appErrors.WriteError(os.Stderr, err)
		os.Exit(appErrors.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "analyzer",
		Short:         "Gera o JSON do dashboard de vendas com KPIs, insights e estratégias",
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzer(cmd, envFile)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&envFile, "config", "", "arquivo .env com a configuração")
	flags.String("output", "", "caminho do arquivo JSON de saída")
	flags.Uint64("seed", 0, "semente do gerador de dados")
	flags.String("log-level", "", "nível de log (debug, info, warn, error)")
	flags.Bool("stdout", false, "escreve o JSON em stdout em vez de arquivo")
	flags.Bool("watch", false, "mantém o processo ativo e regenera o relatório pelo cron configurado")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return appErrors.New(err, appErrors.ErrInvalidFlag, "Flag inválida")
	})

	return rootCmd
}

// noArgs trata argumento posicional como erro de uso, igual a uma flag inválida
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return appErrors.New(err, appErrors.ErrInvalidFlag, "Argumento inesperado")
	}
	return nil
}

func runAnalyzer(cmd *cobra.Command, envFile string) error {
	if err := config.BindFlags(cmd.Flags()); err != nil {
		return appErrors.New(err, appErrors.ErrInvalidFlag, "Falha ao ler as flags")
	}

	cfg, err := config.NewConfig(envFile)
	if err != nil {
		return appErrors.New(err, appErrors.ErrInvalidConfig, "Falha ao carregar a configuração")
	}
	if err := cfg.Validate(); err != nil {
		return appErrors.New(err, appErrors.ErrInvalidConfig, "Configuração inválida")
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat, cmd.ErrOrStderr()); err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No modo stdout o JSON ocupa a saída padrão e o resumo vai para stderr
	var writer publishing.ReportWriter
	summaryOut := cmd.OutOrStdout()
	if cfg.Output.Stdout {
		writer = artifact.NewStreamWriter(cmd.OutOrStdout())
		summaryOut = cmd.ErrOrStderr()
	} else {
		writer = artifact.NewFileWriter(cfg.Output.Path)
	}

	publisher := publishing.NewService(reporting.NewServiceFromConfig(cfg), writer)
	job := middleware.Chain(
		publishAndSummarize(publisher, summaryOut, cfg.Insight.CurrencySymbol),
		middleware.RecoverMiddleware(),
		middleware.LoggingMiddleware("dashboard"),
	)

	if err := job(ctx); err != nil {
		return err
	}

	if !cfg.ReportRefresh.Enabled {
		return nil
	}

	refresher := scheduler.NewReportRefreshService(job, cfg)
	if err := refresher.Start(ctx); err != nil {
		return appErrors.New(err, appErrors.ErrScheduler, "Falha ao iniciar o agendador")
	}

	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)

	log.L.WithField("cron", cfg.ReportRefresh.CronSchedule).Info("Aguardando próximas atualizações (SIGHUP força uma rodada, Ctrl+C para sair)")
	watch(ctx, refresher, hangup)
	return nil
}

// watch dispara uma atualização manual a cada SIGHUP até o contexto ser cancelado
func watch(ctx context.Context, refresher *scheduler.ReportRefreshService, hangup <-chan os.Signal) {
	for {
		select {
		case <-hangup:
			refresher.TriggerManualRefresh()
		case <-ctx.Done():
			log.L.WithFields(log.Fields(refresher.GetStatus())).Info("Encerrando")
			return
		}
	}
}

func publishAndSummarize(publisher *publishing.Service, out io.Writer, currency string) middleware.Job {
	return func(ctx context.Context) error {
		report, err := publisher.Publish(ctx)
		if err != nil {
			return err
		}
		return console.PrintSummary(out, report, currency)
	}
}
