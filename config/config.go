package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Schedula specifics
	Postgres  PostgresConfig
	Scheduler SchedulerConfig
	Chat      ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	DSN string
}

// SchedulerConfig drives the command interpreter's policy knobs.
// ReferenceDate is the injected "today" — never wall-clock, so parsing
// and validation stay deterministic across runs and tests.
type SchedulerConfig struct {
	ReferenceDate        string // YYYY-MM-DD
	DefaultHour          int
	DefaultDurationHours int
	QueryWindowDays      int
	UpdatePolicy         string // "lenient" or "strict"
}

type ChatConfig struct {
	RateLimitPerMin  int
	SessionCacheSize int
}

// Update policies for resolving the target booking of an update command.
const (
	UpdatePolicyLenient = "lenient"
	UpdatePolicyStrict  = "strict"
)

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: comma-separated so it can be supplied through a single env var
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, o := range strings.Split(rawOrigins, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("postgres_dsn"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Scheduler
	cfg.Scheduler.ReferenceDate = viper.GetString("scheduler.reference_date")
	cfg.Scheduler.DefaultHour = viper.GetInt("scheduler.default_hour")
	cfg.Scheduler.DefaultDurationHours = viper.GetInt("scheduler.default_duration_hours")
	cfg.Scheduler.QueryWindowDays = viper.GetInt("scheduler.query_window_days")
	cfg.Scheduler.UpdatePolicy = viper.GetString("scheduler.update_policy")

	if _, err := time.Parse("2006-01-02", cfg.Scheduler.ReferenceDate); err != nil {
		return nil, fmt.Errorf("invalid scheduler.reference_date %q: %w", cfg.Scheduler.ReferenceDate, err)
	}
	if cfg.Scheduler.UpdatePolicy != UpdatePolicyLenient && cfg.Scheduler.UpdatePolicy != UpdatePolicyStrict {
		return nil, fmt.Errorf("invalid scheduler.update_policy %q (want %q or %q)",
			cfg.Scheduler.UpdatePolicy, UpdatePolicyLenient, UpdatePolicyStrict)
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.SessionCacheSize = viper.GetInt("chat.session_cache_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// The demo calendar is anchored to Saturday, July 5 2025.
	viper.SetDefault("scheduler.reference_date", "2025-07-05")
	viper.SetDefault("scheduler.default_hour", 10)
	viper.SetDefault("scheduler.default_duration_hours", 1)
	viper.SetDefault("scheduler.query_window_days", 7)
	viper.SetDefault("scheduler.update_policy", UpdatePolicyLenient)

	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.session_cache_size", 1024)
}

// ReferenceDateTime returns the parsed reference "today" at midnight local time.
func (c SchedulerConfig) ReferenceDateTime() time.Time {
	t, _ := time.Parse("2006-01-02", c.ReferenceDate)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
