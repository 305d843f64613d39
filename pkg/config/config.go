package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Seed      SeedConfig
	Tasks     TasksConfig
	Reports   ReportsConfig
	Dashboard DashboardConfig
	Ceremony  CeremonyConfig
	Documents DocumentsConfig
	Alumni    AlumniConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig controls the in-memory dataset loaded at startup.
type SeedConfig struct {
	StudentCount   int
	GraduationYear int
}

// TasksConfig tunes the background task queue that stands in for the
// dashboard's simulated long-running actions.
type TasksConfig struct {
	Workers          int
	BufferSize       int
	SimulatedLatency time.Duration
}

// ReportsConfig toggles report generation and result retention.
type ReportsConfig struct {
	Enabled    bool
	StorageDir string
	ResultTTL  time.Duration
}

// DashboardConfig governs dashboard exposure and cache tuning.
type DashboardConfig struct {
	Enabled  bool
	CacheTTL time.Duration
}

// CeremonyConfig gates ceremony logistics endpoints.
type CeremonyConfig struct {
	Enabled bool
}

// DocumentsConfig gates document request/generation endpoints.
type DocumentsConfig struct {
	Enabled    bool
	StorageDir string
}

// AlumniConfig gates the alumni rollover endpoints.
type AlumniConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		StudentCount:   v.GetInt("SEED_STUDENT_COUNT"),
		GraduationYear: v.GetInt("SEED_GRADUATION_YEAR"),
	}

	cfg.Tasks = TasksConfig{
		Workers:          v.GetInt("TASKS_WORKERS"),
		BufferSize:       v.GetInt("TASKS_BUFFER_SIZE"),
		SimulatedLatency: parseDuration(v.GetString("TASKS_SIMULATED_LATENCY"), time.Second),
	}

	cfg.Reports = ReportsConfig{
		Enabled:    v.GetBool("ENABLE_REPORTS"),
		StorageDir: v.GetString("REPORTS_STORAGE_DIR"),
		ResultTTL:  parseDuration(v.GetString("REPORTS_RESULT_TTL"), 24*time.Hour),
	}

	cfg.Dashboard = DashboardConfig{
		Enabled:  v.GetBool("ENABLE_DASHBOARD"),
		CacheTTL: parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Ceremony = CeremonyConfig{Enabled: v.GetBool("ENABLE_CEREMONY")}

	cfg.Documents = DocumentsConfig{
		Enabled:    v.GetBool("ENABLE_DOCUMENTS"),
		StorageDir: v.GetString("DOCUMENTS_STORAGE_DIR"),
	}

	cfg.Alumni = AlumniConfig{Enabled: v.GetBool("ENABLE_ALUMNI")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_STUDENT_COUNT", 50)
	v.SetDefault("SEED_GRADUATION_YEAR", 2024)

	v.SetDefault("TASKS_WORKERS", 2)
	v.SetDefault("TASKS_BUFFER_SIZE", 16)
	v.SetDefault("TASKS_SIMULATED_LATENCY", "1s")

	v.SetDefault("ENABLE_REPORTS", true)
	v.SetDefault("REPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("REPORTS_RESULT_TTL", "24h")

	v.SetDefault("ENABLE_DASHBOARD", true)
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")

	v.SetDefault("ENABLE_CEREMONY", true)
	v.SetDefault("ENABLE_DOCUMENTS", true)
	v.SetDefault("DOCUMENTS_STORAGE_DIR", "./documents")
	v.SetDefault("ENABLE_ALUMNI", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
