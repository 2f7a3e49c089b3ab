package insighting

import "github.com/vfg2006/smart-sales-analyzer/internal/config"

// Thresholds reúne os limites usados pelas regras de insight
type Thresholds struct {
	TrendWindowMonths int
	TrendThresholdPct float64
	AnomalySigma      float64
	CurrencySymbol    string
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		TrendWindowMonths: 3,
		TrendThresholdPct: 10,
		AnomalySigma:      2,
		CurrencySymbol:    "R$",
	}
}

// ThresholdsFromConfig parte dos limites padrão e aplica só os valores preenchidos na configuração
func ThresholdsFromConfig(cfg *config.Config) Thresholds {
	th := DefaultThresholds()
	if cfg == nil {
		return th
	}

	if cfg.Insight.TrendWindowMonths > 0 {
		th.TrendWindowMonths = cfg.Insight.TrendWindowMonths
	}
	if cfg.Insight.TrendThresholdPct > 0 {
		th.TrendThresholdPct = cfg.Insight.TrendThresholdPct
	}
	if cfg.Insight.AnomalySigma > 0 {
		th.AnomalySigma = cfg.Insight.AnomalySigma
	}
	if cfg.Insight.CurrencySymbol != "" {
		th.CurrencySymbol = cfg.Insight.CurrencySymbol
	}
	return th
}
