package insighting

import (
	"fmt"
	"math"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
)

// PercentChange compara a receita das últimas `window` entradas com as `window` anteriores.
// ok é falso quando não há meses suficientes ou a receita do período anterior é zero.
func PercentChange(monthly []domain.MonthlySummary, window int) (change float64, ok bool) {
	if window < 1 || len(monthly) < 2*window {
		return 0, false
	}

	n := len(monthly)
	var last, prev float64
	for _, m := range monthly[n-window:] {
		last += m.TotalRevenue
	}
	for _, m := range monthly[n-2*window : n-window] {
		prev += m.TotalRevenue
	}

	if prev == 0 {
		return 0, false
	}

	return (last - prev) / prev * 100, true
}

// TrendRule gera um insight de crescimento ou de queda quando a variação passa do limite.
// Variações dentro de [-limite, +limite] não geram nada.
func TrendRule(a Analysis, th Thresholds) domain.Findings {
	change, ok := PercentChange(a.Monthly, th.TrendWindowMonths)
	if !ok {
		return domain.Findings{}
	}

	switch {
	case change > th.TrendThresholdPct:
		return domain.Findings{
			Insights: []domain.Insight{{
				Type:     domain.InsightSuccess,
				Title:    "📈 Forte Tendência de Crescimento",
				Message:  fmt.Sprintf("A receita cresceu %.1f%% nos últimos %d meses. As estratégias atuais estão funcionando.", change, th.TrendWindowMonths),
				Priority: domain.PriorityHigh,
			}},
			Strategies: []domain.Strategy{{
				Title: "Manutenção do Momentum",
				Actions: []string{
					"Repetir as campanhas de sucesso",
					"Aumentar os níveis de estoque",
					"Elevar o orçamento de marketing em 20%",
				},
			}},
		}
	case change < -th.TrendThresholdPct:
		return domain.Findings{
			Insights: []domain.Insight{{
				Type:     domain.InsightWarning,
				Title:    "⚠️ Atenção: Queda de Receita",
				Message:  fmt.Sprintf("A receita caiu %.1f%% nos últimos %d meses. Ação urgente necessária!", math.Abs(change), th.TrendWindowMonths),
				Priority: domain.PriorityCritical,
			}},
			Strategies: []domain.Strategy{{
				Title: "Plano de Intervenção Urgente",
				Actions: []string{
					"Revisar a estratégia de preços",
					"Analisar o feedback dos clientes",
					"Fazer uma análise da concorrência",
					"Lançar uma campanha promocional",
				},
			}},
		}
	default:
		return domain.Findings{}
	}
}
