// Package insighting transforma os agregados de vendas em insights e estratégias
package insighting

import (
	"context"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/log"
)

// Analysis reúne os agregados que as regras avaliam
type Analysis struct {
	Monthly    []domain.MonthlySummary
	Categories []domain.CategorySummary
	Regions    []domain.RegionSummary
	Daily      []domain.DailyRevenue
}

// Rule avalia os agregados e devolve os próprios achados (possivelmente vazios)
type Rule func(a Analysis, th Thresholds) domain.Findings

type namedRule struct {
	name string
	eval Rule
}

// A ordem das regras define a ordem dos insights no relatório
var rules = []namedRule{
	{name: "trend", eval: TrendRule},
	{name: "category", eval: CategoryRule},
	{name: "region", eval: RegionRule},
	{name: "anomaly", eval: AnomalyRule},
}

type Engine struct {
	thresholds Thresholds
}

func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Evaluate executa as regras na ordem tendência, categoria, região e anomalia
func (e *Engine) Evaluate(ctx context.Context, a Analysis) domain.Findings {
	logger := log.ForContext(ctx)

	findings := domain.Findings{
		Insights:   []domain.Insight{},
		Strategies: []domain.Strategy{},
	}
	for _, r := range rules {
		result := r.eval(a, e.thresholds)
		logger.WithFields(log.Fields{
			"rule":       r.name,
			"insights":   len(result.Insights),
			"strategies": len(result.Strategies),
		}).Debug("Regra de insight avaliada")
		findings = findings.Append(result)
	}

	return findings
}
