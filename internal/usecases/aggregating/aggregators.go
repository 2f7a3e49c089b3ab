// Package aggregating agrupa o dataset de vendas por mês, categoria, região e dia
package aggregating

import (
	"math"
	"sort"

	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/pkg/utils"
)

const (
	minPlaceholderMargin = 15.0
	maxPlaceholderMargin = 45.0
)

// MarginSource fornece valores uniformes em [0,1) para a margem fictícia das categorias.
// *rand.Rand satisfaz a interface.
type MarginSource interface {
	Float64() float64
}

// Estrutura para acumular os totais de um grupo preservando a ordem de aparição
type groupAggregator struct {
	revenue         float64
	quantity        int
	satisfactionSum float64
	count           int
}

func (g *groupAggregator) add(sale domain.Sale) {
	g.revenue += sale.Revenue()
	g.quantity += sale.Quantity
	g.satisfactionSum += sale.Satisfaction
	g.count++
}

// groupBy agrupa o dataset pela chave informada e retorna as chaves na ordem em que apareceram
func groupBy[K comparable](ds *domain.Dataset, key func(domain.Sale) K) ([]K, map[K]*groupAggregator) {
	groups := make(map[K]*groupAggregator)
	order := make([]K, 0)

	for i := 0; i < ds.Len(); i++ {
		sale := ds.At(i)
		k := key(sale)
		agg, exists := groups[k]
		if !exists {
			agg = &groupAggregator{}
			groups[k] = agg
			order = append(order, k)
		}
		agg.add(sale)
	}

	return order, groups
}

// ByMonth retorna a receita e a quantidade por mês em ordem cronológica
func ByMonth(ds *domain.Dataset) []domain.MonthlySummary {
	order, groups := groupBy(ds, domain.Sale.Month)
	sort.Strings(order)

	result := make([]domain.MonthlySummary, 0, len(order))
	for _, month := range order {
		result = append(result, domain.MonthlySummary{
			Month:         month,
			TotalRevenue:  groups[month].revenue,
			TotalQuantity: groups[month].quantity,
		})
	}
	return result
}

// ByCategory retorna os totais por categoria ordenados pela receita (desc), empates na ordem de aparição.
// A margem é um placeholder sorteado uma vez por categoria, não é uma métrica financeira.
func ByCategory(ds *domain.Dataset, margins MarginSource) []domain.CategorySummary {
	order, groups := groupBy(ds, func(s domain.Sale) domain.Category { return s.Category })

	result := make([]domain.CategorySummary, 0, len(order))
	for _, category := range order {
		agg := groups[category]
		result = append(result, domain.CategorySummary{
			Category:         category,
			TotalRevenue:     agg.revenue,
			TotalQuantity:    agg.quantity,
			MeanSatisfaction: agg.satisfactionSum / float64(agg.count),
			Margin:           placeholderMargin(margins),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})
	return result
}

// ByRegion retorna os totais por região ordenados pela receita (desc), empates na ordem de aparição
func ByRegion(ds *domain.Dataset) []domain.RegionSummary {
	order, groups := groupBy(ds, func(s domain.Sale) domain.Region { return s.Region })

	result := make([]domain.RegionSummary, 0, len(order))
	for _, region := range order {
		result = append(result, domain.RegionSummary{
			Region:        region,
			TotalRevenue:  groups[region].revenue,
			TotalQuantity: groups[region].quantity,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})
	return result
}

// ByDay retorna a receita total de cada dia em ordem cronológica
func ByDay(ds *domain.Dataset) []domain.DailyRevenue {
	order, groups := groupBy(ds, domain.Sale.Day)
	sort.Strings(order)

	result := make([]domain.DailyRevenue, 0, len(order))
	for _, day := range order {
		result = append(result, domain.DailyRevenue{
			Day:     day,
			Revenue: groups[day].revenue,
		})
	}
	return result
}

func placeholderMargin(margins MarginSource) float64 {
	if margins == nil {
		return 0
	}
	margin := minPlaceholderMargin + (maxPlaceholderMargin-minPlaceholderMargin)*margins.Float64()
	// o arredondamento não pode levar u próximo de 1 ao limite superior, que é aberto
	return math.Min(utils.RoundWithTwoDecimalPlace(margin), maxPlaceholderMargin-0.01)
}
