package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Marketplace        Marketplace        `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	LedgerCacheRefresh LedgerCacheRefresh `mapstructure:",squash"`
	Analytics          Analytics          `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	MaxOpen  int    `mapstructure:"database_max_open_conns"`
	MaxIdle  int    `mapstructure:"database_max_idle_conns"`

	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Marketplace struct {
	StatisticsURL  string  `mapstructure:"marketplace_statistics_url"`
	RatePerSecond  float64 `mapstructure:"marketplace_rate_per_second"`
	Burst          int     `mapstructure:"marketplace_burst"`
	ChunkDays      int     `mapstructure:"marketplace_chunk_days"`
	TimeoutSeconds int     `mapstructure:"marketplace_timeout_seconds"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type LedgerCacheRefresh struct {
	CronSchedule      string `mapstructure:"ledger_cache_refresh_cron"`
	LookbackDays      int    `mapstructure:"ledger_cache_refresh_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"ledger_cache_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"ledger_cache_refresh_enabled"`
}

type Analytics struct {
	AllocationStrategy      string `mapstructure:"analytics_allocation_strategy"`
	ProfitabilityWindowDays int    `mapstructure:"analytics_profitability_window_days"`
	TopProducts             int    `mapstructure:"analytics_top_products"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seller_pnl")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("MARKETPLACE_STATISTICS_URL", "https://statistics-api.wildberries.ru")
	viper.SetDefault("MARKETPLACE_RATE_PER_SECOND", 1.0 / 60) // 1 requisição por minuto
	viper.SetDefault("MARKETPLACE_BURST", 1)
	viper.SetDefault("MARKETPLACE_CHUNK_DAYS", 28)
	viper.SetDefault("MARKETPLACE_TIMEOUT_SECONDS", 60)

	// Defaults para atualização do cache do relatório financeiro
	viper.SetDefault("LEDGER_CACHE_REFRESH_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("LEDGER_CACHE_REFRESH_LOOKBACK_DAYS", 365)  // Um ano de histórico na partição completa
	viper.SetDefault("LEDGER_CACHE_REFRESH_MAX_CONCURRENT_JOBS", 2)
	viper.SetDefault("LEDGER_CACHE_REFRESH_ENABLED", false)

	viper.SetDefault("ANALYTICS_ALLOCATION_STRATEGY", "equal-split")
	viper.SetDefault("ANALYTICS_PROFITABILITY_WINDOW_DAYS", 30)
	viper.SetDefault("ANALYTICS_TOP_PRODUCTS", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,https://seller-pnl-web.vercel.app")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
