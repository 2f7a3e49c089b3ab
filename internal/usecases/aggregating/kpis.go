package aggregating

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
)

// KPIs calcula as métricas escalares do dataset completo
func KPIs(ds *domain.Dataset) domain.KPIs {
	if ds.IsEmpty() {
		return domain.KPIs{}
	}

	n := ds.Len()
	revenues := make([]float64, n)
	satisfaction := make([]float64, n)
	units := 0
	categories := make(map[domain.Category]struct{})
	regions := make(map[domain.Region]struct{})

	for i := 0; i < n; i++ {
		sale := ds.At(i)
		revenues[i] = sale.Revenue()
		satisfaction[i] = sale.Satisfaction
		units += sale.Quantity
		categories[sale.Category] = struct{}{}
		regions[sale.Region] = struct{}{}
	}

	return domain.KPIs{
		TotalRevenue:        floats.Sum(revenues),
		AverageOrderValue:   stat.Mean(revenues, nil),
		TotalUnitsSold:      units,
		AverageSatisfaction: stat.Mean(satisfaction, nil),
		ActiveCategories:    len(categories),
		ActiveRegions:       len(regions),
	}
}
