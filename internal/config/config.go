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

const (
	StoreDriverFirebase = "firebase"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Store          Store          `mapstructure:",squash"`
	Firebase       Firebase       `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	LocalCache     LocalCache     `mapstructure:",squash"`
	Ledger         Ledger         `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	MetaSync       MetaSync       `mapstructure:",squash"`
	BackupSnapshot BackupSnapshot `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Store define qual banco de documentos remoto guarda as coleções
type Store struct {
	Driver string `mapstructure:"store_driver"`
}

type Firebase struct {
	DatabaseURL    string        `mapstructure:"firebase_database_url"`
	AuthSecret     string        `mapstructure:"firebase_auth_secret"`
	TimeoutSeconds int           `mapstructure:"firebase_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

type LocalCache struct {
	Path string `mapstructure:"local_cache_path"`
}

// Ledger agrupa as opções de formatação dos valores exibidos nos painéis
type Ledger struct {
	Locale string `mapstructure:"ledger_locale"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`
}

type Auth struct {
	TokenTTLHours int `mapstructure:"auth_token_ttl_hours"`
}

type MetaSync struct {
	CronSchedule        string `mapstructure:"meta_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"meta_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"meta_sync_max_concurrent_jobs"`
	MonthLookBack       int    `mapstructure:"meta_sync_month_lookback"`
	Enabled             bool   `mapstructure:"meta_sync_enabled"`
}

type BackupSnapshot struct {
	CronSchedule  string `mapstructure:"backup_snapshot_cron"`
	RetentionDays int    `mapstructure:"backup_snapshot_retention_days"`
	Enabled       bool   `mapstructure:"backup_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("STORE_DRIVER", StoreDriverFirebase)

	viper.SetDefault("FIREBASE_DATABASE_URL", "")
	viper.SetDefault("FIREBASE_AUTH_SECRET", "")
	viper.SetDefault("FIREBASE_TIMEOUT_SECONDS", 3) // Tempo máximo de espera do banco remoto

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agencyos?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", false)

	viper.SetDefault("LOCAL_CACHE_PATH", "agencyos-cache.db")

	viper.SetDefault("LEDGER_LOCALE", "tr")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("META_SYNC_CRON", "0 5 1 * *")        // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("META_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("META_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("META_SYNC_MONTH_LOOKBACK", 1)
	viper.SetDefault("META_SYNC_ENABLED", false)

	viper.SetDefault("BACKUP_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("BACKUP_SNAPSHOT_RETENTION_DAYS", 30)
	viper.SetDefault("BACKUP_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

	config.normalize()

	return config, nil
}

// normalize preenche os campos derivados a partir dos valores lidos
func (c *Config) normalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	if c.Firebase.TimeoutSeconds <= 0 {
		c.Firebase.TimeoutSeconds = 3
	}
	c.Firebase.Timeout = time.Duration(c.Firebase.TimeoutSeconds) * time.Second

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
