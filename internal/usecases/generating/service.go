// Package generating produz o dataset sintético de vendas usado pela análise
package generating

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-sales-analyzer/internal/config"
	"github.com/vfg2006/smart-sales-analyzer/internal/domain"
)

const (
	minQuantity  = 1
	maxQuantity  = 19
	minUnitPrice = 50.0
	maxUnitPrice = 500.0
)

// Generator define a interface para obter o dataset de vendas
type Generator interface {
	Generate(ctx context.Context) (*domain.Dataset, error)
}

// Options controla o período, o volume diário e a semente do gerador
type Options struct {
	Seed                 uint64
	StartDate            time.Time
	EndDate              time.Time
	MinDailyTransactions int
	MaxDailyTransactions int
}

// OptionsFromConfig extrai as opções do gerador da configuração global
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Seed:                 cfg.Generator.Seed,
		StartDate:            cfg.Generator.StartDate,
		EndDate:              cfg.Generator.EndDate,
		MinDailyTransactions: cfg.Generator.MinDailyTransactions,
		MaxDailyTransactions: cfg.Generator.MaxDailyTransactions,
	}
}

type Service struct {
	opts Options
}

func NewService(opts Options) *Service {
	return &Service{opts: opts}
}

// Generate cria as vendas dia a dia no intervalo [StartDate, EndDate].
// A mesma semente produz o mesmo dataset: a ordem de consumo do PRNG é
// volume do dia, e para cada transação categoria, região, quantidade, preço e satisfação.
func (s *Service) Generate(ctx context.Context) (*domain.Dataset, error) {
	start := truncateToDay(s.opts.StartDate)
	end := truncateToDay(s.opts.EndDate)

	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidDateRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	if s.opts.MinDailyTransactions < 1 || s.opts.MaxDailyTransactions < s.opts.MinDailyTransactions {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidVolume, s.opts.MinDailyTransactions, s.opts.MaxDailyTransactions)
	}

	rng := rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed))
	span := s.opts.MaxDailyTransactions - s.opts.MinDailyTransactions + 1

	days := int(end.Sub(start).Hours()/24) + 1
	sales := make([]domain.Sale, 0, days*(s.opts.MinDailyTransactions+span/2))

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		count := s.opts.MinDailyTransactions + rng.IntN(span)
		for i := 0; i < count; i++ {
			sale := domain.Sale{
				Date:         day,
				Category:     domain.Categories[rng.IntN(len(domain.Categories))],
				Region:       domain.Regions[rng.IntN(len(domain.Regions))],
				Quantity:     minQuantity + rng.IntN(maxQuantity-minQuantity+1),
				UnitPrice:    uniform(rng, minUnitPrice, maxUnitPrice),
				Satisfaction: uniform(rng, domain.MinSatisfaction, domain.MaxSatisfaction),
			}
			if err := sale.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSale, day.Format(time.DateOnly), err)
			}
			sales = append(sales, sale)
		}
	}

	logrus.WithFields(logrus.Fields{
		"seed":  s.opts.Seed,
		"days":  days,
		"sales": len(sales),
	}).Debug("Dataset sintético gerado")

	return domain.NewDataset(sales), nil
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + (high-low)*rng.Float64()
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
