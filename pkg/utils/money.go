package utils

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formata um valor sem casas decimais e com separador de milhar, ex.: "R$ 1,234,568"
func FormatCurrency(symbol string, amount float64) string {
	return formatMoney("#,###.", symbol, amount)
}

// FormatCurrencyCents mantém duas casas decimais, ex.: "R$ 1,234,567.89"
func FormatCurrencyCents(symbol string, amount float64) string {
	return formatMoney("#,###.##", symbol, amount)
}

func formatMoney(pattern, symbol string, amount float64) string {
	formatted := humanize.FormatFloat(pattern, math.Abs(amount))
	if amount < 0 && strings.Trim(formatted, "0.,") != "" {
		formatted = "-" + formatted
	}
	if symbol == "" {
		return formatted
	}
	return symbol + " " + formatted
}
