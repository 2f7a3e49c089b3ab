package domain

// TimestampLayout é o formato do campo timestamp do relatório (horário local)
const TimestampLayout = "2006-01-02 15:04:05"

// KPIs são as métricas escalares calculadas sobre todo o dataset
type KPIs struct {
	TotalRevenue        float64 `json:"total_revenue"`
	AverageOrderValue   float64 `json:"average_order_value"`
	TotalUnitsSold      int     `json:"total_units_sold"`
	AverageSatisfaction float64 `json:"average_satisfaction"`
	ActiveCategories    int     `json:"active_categories"`
	ActiveRegions       int     `json:"active_regions"`
}

// SeriesChart é um gráfico de rótulos e valores em arrays paralelos
type SeriesChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// PerformanceChart é o gráfico de desempenho por categoria com duas séries
type PerformanceChart struct {
	Labels       []string  `json:"labels"`
	Satisfaction []float64 `json:"satisfaction"`
	Margin       []float64 `json:"margin"`
}

// Charts agrupa os quatro gráficos consumidos pelo dashboard
type Charts struct {
	MonthlyTrend        SeriesChart      `json:"monthly_trend"`
	CategoryPie         SeriesChart      `json:"category_pie"`
	RegionBar           SeriesChart      `json:"region_bar"`
	CategoryPerformance PerformanceChart `json:"category_performance"`
}

// Report é o documento exportado para o dashboard, imutável após a montagem
type Report struct {
	KPIs       KPIs       `json:"kpis"`
	Charts     Charts     `json:"charts"`
	Insights   []Insight  `json:"insights"`
	Strategies []Strategy `json:"strategies"`
	Timestamp  string     `json:"timestamp"`
}
