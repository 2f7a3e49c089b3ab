// Package reporting monta o relatório do dashboard a partir do dataset de vendas
package reporting

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/smart-sales-analyzer/internal/config"
	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/aggregating"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/generating"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/insighting"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
	"github.com/vfg2006/smart-sales-analyzer/pkg/utils"
)

// Fluxo separado do PRNG do gerador para as margens fictícias
const marginStream uint64 = 0x6d617267696e

type Service struct {
	generator  generating.Generator
	engine     *insighting.Engine
	marginSeed uint64
	now        func() time.Time
}

func NewService(generator generating.Generator, engine *insighting.Engine, marginSeed uint64) *Service {
	return &Service{
		generator:  generator,
		engine:     engine,
		marginSeed: marginSeed,
		now:        time.Now,
	}
}

// NewServiceFromConfig monta o serviço com o gerador e os limites da configuração
func NewServiceFromConfig(cfg *config.Config) *Service {
	return NewService(
		generating.NewService(generating.OptionsFromConfig(cfg)),
		insighting.NewEngine(insighting.ThresholdsFromConfig(cfg)),
		cfg.Generator.Seed,
	)
}

// WithClock substitui o relógio usado no timestamp do relatório
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Build executa o pipeline completo na ordem fixa:
// gerar → tendência → categoria → região → anomalia → KPIs → gráficos.
// Nenhum estado é mantido entre execuções.
func (s *Service) Build(ctx context.Context) (*domain.Report, error) {
	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx)
	}
	logger := log.ForContext(ctx)
	startedAt := time.Now()

	dataset, err := s.generator.Generate(ctx)
	if err != nil {
		return nil, NewReportError(errors.Wrap(err, ErrGenerateDataset.Error()), CodeGenerateFailed, StageGenerate, "")
	}
	if dataset.IsEmpty() {
		return nil, NewReportError(ErrEmptyDataset, CodeEmptyDataset, StageGenerate, "nenhuma venda no período")
	}
	logger.WithField("sales", dataset.Len()).Debug("Dataset carregado")

	if err := ctx.Err(); err != nil {
		return nil, NewReportError(err, CodeCanceled, StageAnalyze, "")
	}

	analysis := insighting.Analysis{
		Monthly:    aggregating.ByMonth(dataset),
		Categories: aggregating.ByCategory(dataset, s.newMarginSource()),
		Regions:    aggregating.ByRegion(dataset),
		Daily:      aggregating.ByDay(dataset),
	}

	findings := s.engine.Evaluate(ctx, analysis)
	kpis := aggregating.KPIs(dataset)
	logger.Debugf("KPIs calculados: %s", utils.PrettyJSON(kpis))

	report := &domain.Report{
		KPIs:       kpis,
		Charts:     BuildCharts(analysis),
		Insights:   findings.Insights,
		Strategies: findings.Strategies,
		Timestamp:  s.now().Format(domain.TimestampLayout),
	}

	logger.WithFields(log.Fields{
		"insights":    len(report.Insights),
		"strategies":  len(report.Strategies),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("Relatório montado")

	return report, nil
}

// Cada execução recebe uma fonte nova para que a mesma semente gere as mesmas margens
func (s *Service) newMarginSource() aggregating.MarginSource {
	return rand.New(rand.NewPCG(s.marginSeed, marginStream))
}
