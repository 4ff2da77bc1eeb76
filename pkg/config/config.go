package config

import (
	"errors"
	"os"
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

	Database    DatabaseConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Persistence PersistenceConfig
	Agenda      AgendaConfig
	Timetable   TimetableConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// PersistenceConfig toggles the Postgres-backed stores. When disabled the engine runs in memory.
type PersistenceConfig struct {
	Enabled bool
}

// AgendaConfig governs caching of projected educator agendas.
type AgendaConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// ShiftConfig holds the numeric parameters used to generate one shift of time slots.
type ShiftConfig struct {
	StartTime            string
	ClassDurationMinutes int
	BreakDurationMinutes int
	NumberOfClasses      int
	BreakAfterClass      int
}

// Enabled reports whether the shift has been configured.
func (s ShiftConfig) Enabled() bool {
	return strings.TrimSpace(s.StartTime) != ""
}

// TimetableConfig describes the school day as morning and afternoon shifts.
type TimetableConfig struct {
	Morning   ShiftConfig
	Afternoon ShiftConfig
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
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Persistence = PersistenceConfig{
		Enabled: v.GetBool("PERSISTENCE_ENABLED"),
	}

	cfg.Agenda = AgendaConfig{
		CacheEnabled: v.GetBool("ENABLE_AGENDA_CACHE"),
		CacheTTL:     parseDuration(v.GetString("AGENDA_CACHE_TTL"), 10*time.Minute),
	}

	cfg.Timetable = TimetableConfig{
		Morning:   shiftFromViper(v, "MORNING"),
		Afternoon: shiftFromViper(v, "AFTERNOON"),
	}

	return cfg
}

func shiftFromViper(v *viper.Viper, prefix string) ShiftConfig {
	return ShiftConfig{
		StartTime:            strings.TrimSpace(v.GetString(prefix + "_START")),
		ClassDurationMinutes: v.GetInt(prefix + "_CLASS_MINUTES"),
		BreakDurationMinutes: v.GetInt(prefix + "_BREAK_MINUTES"),
		NumberOfClasses:      v.GetInt(prefix + "_CLASSES"),
		BreakAfterClass:      v.GetInt(prefix + "_BREAK_AFTER"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "academic_engine")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("PERSISTENCE_ENABLED", false)
	v.SetDefault("ENABLE_AGENDA_CACHE", false)
	v.SetDefault("AGENDA_CACHE_TTL", "10m")

	v.SetDefault("MORNING_START", "07:30")
	v.SetDefault("MORNING_CLASS_MINUTES", 50)
	v.SetDefault("MORNING_BREAK_MINUTES", 20)
	v.SetDefault("MORNING_CLASSES", 5)
	v.SetDefault("MORNING_BREAK_AFTER", 3)

	v.SetDefault("AFTERNOON_START", "13:30")
	v.SetDefault("AFTERNOON_CLASS_MINUTES", 50)
	v.SetDefault("AFTERNOON_BREAK_MINUTES", 20)
	v.SetDefault("AFTERNOON_CLASSES", 5)
	v.SetDefault("AFTERNOON_BREAK_AFTER", 3)
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
