package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Generator     Generator     `mapstructure:",squash"`
	Insight       Insight       `mapstructure:",squash"`
	Output        Output        `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Generator struct {
	Seed                 uint64    `mapstructure:"generator_seed"`
	StartDate            time.Time `mapstructure:"generator_start_date"`
	EndDate              time.Time `mapstructure:"generator_end_date"`
	MinDailyTransactions int       `mapstructure:"generator_min_daily_transactions"`
	MaxDailyTransactions int       `mapstructure:"generator_max_daily_transactions"`
}

type Insight struct {
	TrendWindowMonths int     `mapstructure:"insight_trend_window_months"`
	TrendThresholdPct float64 `mapstructure:"insight_trend_threshold_pct"`
	AnomalySigma      float64 `mapstructure:"insight_anomaly_sigma"`
	CurrencySymbol    string  `mapstructure:"insight_currency_symbol"`
}

type Output struct {
	Path   string `mapstructure:"output_path"`
	Stdout bool   `mapstructure:"output_stdout"`
}

type ReportRefresh struct {
	CronSchedule string `mapstructure:"report_refresh_cron"`
	Enabled      bool   `mapstructure:"report_refresh_enabled"`
}

// flagKeys mapeia as flags da CLI para as chaves do Viper
var flagKeys = map[string]string{
	"log-level": "log_level",
	"output":    "output_path",
	"stdout":    "output_stdout",
	"seed":      "generator_seed",
	"watch":     "report_refresh_enabled",
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.SetDefault("GENERATOR_SEED", 42)
	viper.SetDefault("GENERATOR_START_DATE", "2024-01-01")
	viper.SetDefault("GENERATOR_END_DATE", "2024-12-31")
	viper.SetDefault("GENERATOR_MIN_DAILY_TRANSACTIONS", 5)
	viper.SetDefault("GENERATOR_MAX_DAILY_TRANSACTIONS", 14)

	viper.SetDefault("INSIGHT_TREND_WINDOW_MONTHS", 3)   // últimos 3 meses vs 3 anteriores
	viper.SetDefault("INSIGHT_TREND_THRESHOLD_PCT", 10.0) // variação percentual que gera insight
	viper.SetDefault("INSIGHT_ANOMALY_SIGMA", 2.0)        // média + 2 desvios padrão
	viper.SetDefault("INSIGHT_CURRENCY_SYMBOL", "R$")

	viper.SetDefault("OUTPUT_PATH", "analysis_data.json")
	viper.SetDefault("OUTPUT_STDOUT", false)

	viper.SetDefault("REPORT_REFRESH_CRON", "0 * * * *") // de hora em hora
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)
}

// BindFlags liga as flags da CLI ao Viper; flags informadas têm precedência sobre env e defaults
func BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("erro ao vincular flag %s: %w", name, err)
		}
	}
	return nil
}

// NewConfig carrega a configuração de defaults, arquivo .env, variáveis de ambiente e flags.
// envFile vazio faz a busca do .env nas localizações conhecidas.
func NewConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("erro ao carregar arquivo de configuração %s: %w", envFile, err)
		}
	} else {
		loadEnvFile()
	}

	config := &Config{}

	SetDefaults()
	viper.AutomaticEnv()

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.DateOnly),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Insight.CurrencySymbol = strings.TrimSpace(config.Insight.CurrencySymbol)

	return config, nil
}

// Validate verifica se os valores carregados são consistentes
func (c *Config) Validate() error {
	if c.Generator.StartDate.IsZero() || c.Generator.EndDate.IsZero() {
		return fmt.Errorf("generator_start_date e generator_end_date são obrigatórios")
	}
	if c.Generator.EndDate.Before(c.Generator.StartDate) {
		return fmt.Errorf("generator_end_date não pode ser anterior a generator_start_date")
	}
	if c.Generator.MinDailyTransactions < 1 {
		return fmt.Errorf("generator_min_daily_transactions deve ser pelo menos 1")
	}
	if c.Generator.MaxDailyTransactions < c.Generator.MinDailyTransactions {
		return fmt.Errorf("generator_max_daily_transactions deve ser maior ou igual ao mínimo")
	}

	if c.Insight.TrendWindowMonths < 1 {
		return fmt.Errorf("insight_trend_window_months deve ser pelo menos 1")
	}
	if c.Insight.TrendThresholdPct <= 0 {
		return fmt.Errorf("insight_trend_threshold_pct deve ser positivo")
	}
	if c.Insight.AnomalySigma <= 0 {
		return fmt.Errorf("insight_anomaly_sigma deve ser positivo")
	}

	if !c.Output.Stdout && strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("output_path é obrigatório quando a saída não é stdout")
	}

	if c.ReportRefresh.Enabled && strings.TrimSpace(c.ReportRefresh.CronSchedule) == "" {
		return fmt.Errorf("report_refresh_cron é obrigatório quando a atualização agendada está habilitada")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.App.LogLevel)] {
		return fmt.Errorf("log_level deve ser um de: debug, info, warn, error")
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.App.LogFormat)] {
		return fmt.Errorf("log_format deve ser um de: text, json")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err != nil {
			continue
		}
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando defaults e variáveis de ambiente")
}
