package insighting

import (
	"fmt"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/utils"
)

// CategoryRule sempre destaca a melhor e a pior categoria por receita, sem limite de corte.
// Espera a lista já ordenada por receita decrescente.
func CategoryRule(a Analysis, th Thresholds) domain.Findings {
	if len(a.Categories) == 0 {
		return domain.Findings{}
	}

	best := a.Categories[0]
	worst := a.Categories[len(a.Categories)-1]

	return domain.Findings{
		Insights: []domain.Insight{
			{
				Type:     domain.InsightInfo,
				Title:    fmt.Sprintf("🏆 Melhor Categoria: %s", best.Category),
				Message:  fmt.Sprintf("Lidera com %s de receita. Satisfação média: %.2f/5", utils.FormatCurrency(th.CurrencySymbol, best.TotalRevenue), best.MeanSatisfaction),
				Priority: domain.PriorityMedium,
			},
			{
				Type:     domain.InsightWarning,
				Title:    fmt.Sprintf("📉 Desempenho Fraco: %s", worst.Category),
				Message:  fmt.Sprintf("Apenas %s de receita. Melhorias necessárias.", utils.FormatCurrency(th.CurrencySymbol, worst.TotalRevenue)),
				Priority: domain.PriorityMedium,
			},
		},
		Strategies: []domain.Strategy{
			{
				Title: fmt.Sprintf("%s - Oportunidade de Crescimento", best.Category),
				Actions: []string{
					"Ampliar a variedade de produtos",
					"Criar um segmento premium",
					"Aplicar estratégias de cross-selling",
				},
			},
			{
				Title: fmt.Sprintf("%s - Melhoria", worst.Category),
				Actions: []string{
					"Revisar o portfólio de produtos",
					"Testar a estratégia de preços",
					"Realizar pesquisas com clientes",
					"Avaliar a saída da categoria se não for lucrativa",
				},
			},
		},
	}
}
