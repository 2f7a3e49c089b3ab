package domain

// MonthlySummary agrega receita e quantidade de um mês (YYYY-MM)
type MonthlySummary struct {
	Month         string
	TotalRevenue  float64
	TotalQuantity int
}

// CategorySummary agrega os números de uma categoria.
// Margin é um valor fictício (placeholder) sorteado entre 15 e 45, não derivado da receita.
type CategorySummary struct {
	Category         Category
	TotalRevenue     float64
	TotalQuantity    int
	MeanSatisfaction float64
	Margin           float64
}

// RegionSummary agrega receita e quantidade de uma região
type RegionSummary struct {
	Region        Region
	TotalRevenue  float64
	TotalQuantity int
}

// DailyRevenue é a receita total de um dia (YYYY-MM-DD)
type DailyRevenue struct {
	Day     string
	Revenue float64
}
