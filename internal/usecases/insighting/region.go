package insighting

import (
	"fmt"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/utils"
)

// RegionRule destaca a região de maior receita, sem estratégia associada
func RegionRule(a Analysis, th Thresholds) domain.Findings {
	if len(a.Regions) == 0 {
		return domain.Findings{}
	}

	top := a.Regions[0]
	return domain.Findings{
		Insights: []domain.Insight{{
			Type:     domain.InsightInfo,
			Title:    fmt.Sprintf("🌍 Mercado Mais Forte: %s", top.Region),
			Message:  fmt.Sprintf("Destaca-se com %s de receita.", utils.FormatCurrency(th.CurrencySymbol, top.TotalRevenue)),
			Priority: domain.PriorityLow,
		}},
	}
}
