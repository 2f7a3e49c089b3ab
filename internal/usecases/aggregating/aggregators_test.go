package aggregating

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
	"github.com/vfg2006/smart-sales-analyzer/internal/usecases/generating"
)

type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func sale(day string, category domain.Category, region domain.Region, quantity int, price float64) domain.Sale {
	date, _ := time.Parse(time.DateOnly, day)
	return domain.Sale{
		Date:         date,
		Category:     category,
		Region:       region,
		Quantity:     quantity,
		UnitPrice:    price,
		Satisfaction: 4,
	}
}

func generatedDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := generating.NewService(generating.Options{
		Seed:                 42,
		StartDate:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		MinDailyTransactions: 5,
		MaxDailyTransactions: 14,
	}).Generate(context.Background())
	require.NoError(t, err)
	return ds
}

func TestRevenuePartitionInvariant(t *testing.T) {
	ds := generatedDataset(t)

	var byMonth, byCategory, byRegion, byDay float64
	for _, m := range ByMonth(ds) {
		byMonth += m.TotalRevenue
	}
	for _, c := range ByCategory(ds, rand.New(rand.NewPCG(1, 1))) {
		byCategory += c.TotalRevenue
	}
	for _, r := range ByRegion(ds) {
		byRegion += r.TotalRevenue
	}
	for _, d := range ByDay(ds) {
		byDay += d.Revenue
	}
	total := KPIs(ds).TotalRevenue

	tolerance := total * 1e-9
	assert.InDelta(t, total, byMonth, tolerance)
	assert.InDelta(t, total, byCategory, tolerance)
	assert.InDelta(t, total, byRegion, tolerance)
	assert.InDelta(t, total, byDay, tolerance)
}

func TestByMonth_Chronological(t *testing.T) {
	ds := domain.NewDataset([]domain.Sale{
		sale("2024-03-02", domain.CategoryFood, domain.RegionCuritiba, 1, 10),
		sale("2024-01-15", domain.CategoryFood, domain.RegionCuritiba, 2, 10),
		sale("2024-03-20", domain.CategoryClothing, domain.RegionSaoPaulo, 1, 5),
		sale("2023-12-31", domain.CategoryFood, domain.RegionCuritiba, 1, 1),
	})

	months := ByMonth(ds)

	require.Len(t, months, 3)
	assert.Equal(t, "2023-12", months[0].Month)
	assert.Equal(t, "2024-01", months[1].Month)
	assert.Equal(t, "2024-03", months[2].Month)
	assert.Equal(t, 15.0, months[2].TotalRevenue)
	assert.Equal(t, 2, months[2].TotalQuantity)

	generated := ByMonth(generatedDataset(t))
	assert.Len(t, generated, 12)
}

func TestByCategory_SortedDescendingWithMeanAndMargin(t *testing.T) {
	ds := generatedDataset(t)
	categories := ByCategory(ds, rand.New(rand.NewPCG(42, 42)))

	require.Len(t, categories, 5)
	for i := 1; i < len(categories); i++ {
		assert.Greater(t, categories[i-1].TotalRevenue, categories[i].TotalRevenue)
	}
	for _, c := range categories {
		assert.GreaterOrEqual(t, c.Margin, 15.0)
		assert.Less(t, c.Margin, 45.0)
		assert.GreaterOrEqual(t, c.MeanSatisfaction, 3.0)
		assert.LessOrEqual(t, c.MeanSatisfaction, 5.0)
	}
}

func TestByCategory_TiesKeepEncounterOrder(t *testing.T) {
	ds := domain.NewDataset([]domain.Sale{
		sale("2024-01-01", domain.CategoryHome, domain.RegionCuritiba, 1, 100),
		sale("2024-01-01", domain.CategoryFood, domain.RegionCuritiba, 1, 100),
		sale("2024-01-02", domain.CategoryClothing, domain.RegionCuritiba, 1, 300),
		sale("2024-01-02", domain.CategoryCosmetics, domain.RegionCuritiba, 2, 50),
	})

	source := &sequenceSource{values: []float64{0, 0.5, 0.999, 0.25}}
	categories := ByCategory(ds, source)

	require.Len(t, categories, 4)
	assert.Equal(t, domain.CategoryClothing, categories[0].Category)
	assert.Equal(t, domain.CategoryHome, categories[1].Category)
	assert.Equal(t, domain.CategoryFood, categories[2].Category)
	assert.Equal(t, domain.CategoryCosmetics, categories[3].Category)

	// margens sorteadas na ordem de aparição, antes da ordenação
	assert.Equal(t, 15.0, categories[1].Margin)
	assert.Equal(t, 30.0, categories[2].Margin)
	assert.Equal(t, 44.97, categories[0].Margin)
	assert.Equal(t, 22.5, categories[3].Margin)
}

func TestPlaceholderMargin_StaysInsideHalfOpenRange(t *testing.T) {
	tests := []struct {
		name     string
		u        float64
		expected float64
	}{
		{name: "Limite inferior", u: 0, expected: 15},
		{name: "Meio do intervalo", u: 0.5, expected: 30},
		{name: "u que arredondaria para 45", u: 0.99999, expected: 44.99},
		{name: "Maior float abaixo de 1", u: math.Nextafter(1, 0), expected: 44.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin := placeholderMargin(&sequenceSource{values: []float64{tt.u}})
			assert.Equal(t, tt.expected, margin)
			assert.Less(t, margin, 45.0)
		})
	}
}

func TestByCategory_NilMarginSource(t *testing.T) {
	ds := domain.NewDataset([]domain.Sale{
		sale("2024-01-01", domain.CategoryHome, domain.RegionCuritiba, 1, 100),
	})

	categories := ByCategory(ds, nil)
	require.Len(t, categories, 1)
	assert.Zero(t, categories[0].Margin)
}

func TestByRegion_SortedDescendingStable(t *testing.T) {
	ds := domain.NewDataset([]domain.Sale{
		sale("2024-01-01", domain.CategoryFood, domain.RegionPortoAlegre, 1, 10),
		sale("2024-01-01", domain.CategoryFood, domain.RegionBeloHorizonte, 1, 10),
		sale("2024-01-01", domain.CategoryFood, domain.RegionSaoPaulo, 3, 10),
	})

	regions := ByRegion(ds)

	require.Len(t, regions, 3)
	assert.Equal(t, domain.RegionSaoPaulo, regions[0].Region)
	assert.Equal(t, domain.RegionPortoAlegre, regions[1].Region)
	assert.Equal(t, domain.RegionBeloHorizonte, regions[2].Region)
	assert.Equal(t, 3, regions[0].TotalQuantity)

	generated := ByRegion(generatedDataset(t))
	for i := 1; i < len(generated); i++ {
		assert.Greater(t, generated[i-1].TotalRevenue, generated[i].TotalRevenue)
	}
}

func TestByDay_SumsPerDay(t *testing.T) {
	ds := domain.NewDataset([]domain.Sale{
		sale("2024-01-02", domain.CategoryFood, domain.RegionCuritiba, 2, 10),
		sale("2024-01-01", domain.CategoryFood, domain.RegionCuritiba, 1, 10),
		sale("2024-01-02", domain.CategoryHome, domain.RegionSaoPaulo, 1, 5),
	})

	days := ByDay(ds)

	require.Len(t, days, 2)
	assert.Equal(t, domain.DailyRevenue{Day: "2024-01-01", Revenue: 10}, days[0])
	assert.Equal(t, domain.DailyRevenue{Day: "2024-01-02", Revenue: 25}, days[1])
}

func TestKPIs(t *testing.T) {
	ds := domain.NewDataset([]domain.Sale{
		{Date: time.Now(), Category: domain.CategoryFood, Region: domain.RegionCuritiba, Quantity: 2, UnitPrice: 10, Satisfaction: 3},
		{Date: time.Now(), Category: domain.CategoryFood, Region: domain.RegionSaoPaulo, Quantity: 1, UnitPrice: 40, Satisfaction: 5},
		{Date: time.Now(), Category: domain.CategoryHome, Region: domain.RegionCuritiba, Quantity: 3, UnitPrice: 10, Satisfaction: 4},
	})

	kpis := KPIs(ds)

	assert.Equal(t, 90.0, kpis.TotalRevenue)
	assert.Equal(t, 30.0, kpis.AverageOrderValue)
	assert.Equal(t, 6, kpis.TotalUnitsSold)
	assert.Equal(t, 4.0, kpis.AverageSatisfaction)
	// apenas as categorias e regiões presentes contam
	assert.Equal(t, 2, kpis.ActiveCategories)
	assert.Equal(t, 2, kpis.ActiveRegions)
}

func TestKPIs_EmptyDataset(t *testing.T) {
	assert.Equal(t, domain.KPIs{}, KPIs(domain.NewDataset(nil)))
}
