package reporting

import (
	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/insighting"
)

// BuildCharts monta os arrays paralelos de rótulos e valores a partir dos mesmos agregados usados pelas regras
func BuildCharts(a insighting.Analysis) domain.Charts {
	charts := domain.Charts{
		MonthlyTrend: domain.SeriesChart{
			Labels: make([]string, 0, len(a.Monthly)),
			Data:   make([]float64, 0, len(a.Monthly)),
		},
		CategoryPie: domain.SeriesChart{
			Labels: make([]string, 0, len(a.Categories)),
			Data:   make([]float64, 0, len(a.Categories)),
		},
		RegionBar: domain.SeriesChart{
			Labels: make([]string, 0, len(a.Regions)),
			Data:   make([]float64, 0, len(a.Regions)),
		},
		CategoryPerformance: domain.PerformanceChart{
			Labels:       make([]string, 0, len(a.Categories)),
			Satisfaction: make([]float64, 0, len(a.Categories)),
			Margin:       make([]float64, 0, len(a.Categories)),
		},
	}

	for _, m := range a.Monthly {
		charts.MonthlyTrend.Labels = append(charts.MonthlyTrend.Labels, m.Month)
		charts.MonthlyTrend.Data = append(charts.MonthlyTrend.Data, m.TotalRevenue)
	}

	for _, c := range a.Categories {
		label := string(c.Category)
		charts.CategoryPie.Labels = append(charts.CategoryPie.Labels, label)
		charts.CategoryPie.Data = append(charts.CategoryPie.Data, c.TotalRevenue)
		charts.CategoryPerformance.Labels = append(charts.CategoryPerformance.Labels, label)
		charts.CategoryPerformance.Satisfaction = append(charts.CategoryPerformance.Satisfaction, c.MeanSatisfaction)
		charts.CategoryPerformance.Margin = append(charts.CategoryPerformance.Margin, c.Margin)
	}

	for _, r := range a.Regions {
		charts.RegionBar.Labels = append(charts.RegionBar.Labels, string(r.Region))
		charts.RegionBar.Data = append(charts.RegionBar.Data, r.TotalRevenue)
	}

	return charts
}
