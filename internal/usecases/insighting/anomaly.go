package insighting

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
)

// Desvio relativo à média abaixo do qual a série é tratada como constante
const flatSeriesTolerance = 1e-9

// DetectAnomalies retorna os dias cuja receita supera média + sigma × desvio padrão amostral (n-1).
// Com menos de dois dias não há desvio amostral e nada é sinalizado.
func DetectAnomalies(daily []domain.DailyRevenue, sigma float64) []domain.DailyRevenue {
	if len(daily) < 2 {
		return nil
	}

	revenues := make([]float64, len(daily))
	for i, d := range daily {
		revenues[i] = d.Revenue
	}

	mean, std := stat.MeanStdDev(revenues, nil)
	// Série constante: a média pode sair 1 ulp abaixo do valor e o desvio zero
	if std <= flatSeriesTolerance*math.Max(1, math.Abs(mean)) {
		return nil
	}

	var anomalies []domain.DailyRevenue
	for _, d := range daily {
		if d.Revenue-mean > sigma*std {
			anomalies = append(anomalies, d)
		}
	}
	return anomalies
}

// AnomalyRule gera um único insight com a contagem de dias excepcionais, se houver algum
func AnomalyRule(a Analysis, th Thresholds) domain.Findings {
	anomalies := DetectAnomalies(a.Daily, th.AnomalySigma)
	if len(anomalies) == 0 {
		return domain.Findings{}
	}

	return domain.Findings{
		Insights: []domain.Insight{{
			Type:     domain.InsightSuccess,
			Title:    "💎 Dias Excepcionais Detectados",
			Message:  fmt.Sprintf("Em %d dias as vendas ficaram muito acima do normal. Recomenda-se uma análise de padrões.", len(anomalies)),
			Priority: domain.PriorityHigh,
		}},
		Strategies: []domain.Strategy{{
			Title: "Análise dos Fatores de Sucesso",
			Actions: []string{
				"Listar as campanhas dos dias de alta venda",
				"Examinar os padrões de comportamento dos clientes",
				"Repetir as características dos dias de sucesso",
				"Avaliar fatores sazonais",
			},
		}},
	}
}
