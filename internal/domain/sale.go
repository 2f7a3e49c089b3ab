// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"fmt"
	"time"
)

// Category representa uma das categorias fixas de produto
type Category string

// Region representa uma das regiões fixas de venda
type Region string

const (
	CategoryElectronics Category = "Eletrônicos"
	CategoryClothing    Category = "Vestuário"
	CategoryFood        Category = "Alimentos"
	CategoryHome        Category = "Casa & Decoração"
	CategoryCosmetics   Category = "Cosméticos"
)

const (
	RegionSaoPaulo      Region = "São Paulo"
	RegionRioDeJaneiro  Region = "Rio de Janeiro"
	RegionBeloHorizonte Region = "Belo Horizonte"
	RegionCuritiba      Region = "Curitiba"
	RegionPortoAlegre   Region = "Porto Alegre"
)

// Categories lista as categorias na ordem usada pelo gerador
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryFood,
	CategoryHome,
	CategoryCosmetics,
}

// Regions lista as regiões na ordem usada pelo gerador
var Regions = []Region{
	RegionSaoPaulo,
	RegionRioDeJaneiro,
	RegionBeloHorizonte,
	RegionCuritiba,
	RegionPortoAlegre,
}

const (
	MinSatisfaction = 3.0
	MaxSatisfaction = 5.0

	monthLayout = "2006-01"
)

// Sale representa uma transação de venda
type Sale struct {
	Date         time.Time
	Category     Category
	Region       Region
	Quantity     int
	UnitPrice    float64
	Satisfaction float64
}

// Revenue retorna quantidade × preço unitário
func (s Sale) Revenue() float64 {
	return float64(s.Quantity) * s.UnitPrice
}

// Month retorna a chave do mês no formato YYYY-MM
func (s Sale) Month() string {
	return s.Date.Format(monthLayout)
}

// Day retorna a chave do dia no formato YYYY-MM-DD
func (s Sale) Day() string {
	return s.Date.Format(time.DateOnly)
}

// Validate verifica se a venda respeita os limites do domínio
func (s Sale) Validate() error {
	if s.Date.IsZero() {
		return errors.New("sale date must not be empty")
	}
	if !IsKnownCategory(s.Category) {
		return fmt.Errorf("unknown category: %q", s.Category)
	}
	if !IsKnownRegion(s.Region) {
		return fmt.Errorf("unknown region: %q", s.Region)
	}
	if s.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if s.UnitPrice <= 0 {
		return errors.New("unit price must be positive")
	}
	if s.Satisfaction < MinSatisfaction || s.Satisfaction > MaxSatisfaction {
		return fmt.Errorf("satisfaction must be between %.1f and %.1f", MinSatisfaction, MaxSatisfaction)
	}
	return nil
}

func IsKnownCategory(c Category) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

func IsKnownRegion(r Region) bool {
	for _, known := range Regions {
		if known == r {
			return true
		}
	}
	return false
}
