package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	WorkflowModeReview = "review"
	WorkflowModeDirect = "direct"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Mongo      MongoConfig
	RBAC       RBACConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
}

type AppConfig struct {
	Port           string
	Env            string
	DefaultLocale  string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
	PollInterval  time.Duration
	// OutboxLease hides a claimed row from other relays while it is being published.
	OutboxLease     time.Duration
	OutboxRetention time.Duration
}

// MongoConfig is optional; an empty URI keeps audit entries on the zap logger only.
type MongoConfig struct {
	URI      string
	Database string
}

type RBACConfig struct {
	ModelPath  string
	PolicyPath string
}

type AttendanceConfig struct {
	WorkflowMode string
}

type PayrollConfig struct {
	// StandardMonthlyHours derives hourly_rate from base_salary when a request omits it.
	// Zero disables the derivation.
	StandardMonthlyHours int
	StatsCacheTTL        time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Port:          getEnv("PORT", "3000"),
			Env:           getEnv("APP_ENV", "development"),
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "workforce"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{Addr: getEnv("REDIS_ADDR", "localhost:6379")},
		Kafka: KafkaConfig{
			Broker:        os.Getenv("KAFKA_BROKER"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "go-workforce-schedule"),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getEnv("MONGODB_DATABASE", "workforce_audit"),
		},
		RBAC: RBACConfig{
			ModelPath:  getEnv("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
			PolicyPath: getEnv("RBAC_POLICY_PATH", "internal/rbac/infra/policy.csv"),
		},
		Attendance: AttendanceConfig{
			WorkflowMode: strings.ToLower(getEnv("ATTENDANCE_WORKFLOW_MODE", WorkflowModeReview)),
		},
	}

	var err error
	if cfg.Database.MaxRetries, err = getInt("DB_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.App.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}
	if cfg.Payroll.StandardMonthlyHours, err = getInt("PAYROLL_STANDARD_MONTHLY_HOURS", 0); err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	cfg.App.RateLimitRPS = rps

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"HTTP_READ_TIMEOUT", "5s", &cfg.App.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", "10s", &cfg.App.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", "60s", &cfg.App.IdleTimeout},
		{"OUTBOX_POLL_INTERVAL", "3s", &cfg.Kafka.PollInterval},
		{"OUTBOX_LEASE", "30s", &cfg.Kafka.OutboxLease},
		{"OUTBOX_RETENTION", "168h", &cfg.Kafka.OutboxRetention},
		{"PAYROLL_STATS_CACHE_TTL", "5m", &cfg.Payroll.StatsCacheTTL},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = v
	}

	switch cfg.Attendance.WorkflowMode {
	case WorkflowModeReview, WorkflowModeDirect:
	default:
		return nil, fmt.Errorf("invalid ATTENDANCE_WORKFLOW_MODE %q, expected review or direct", cfg.Attendance.WorkflowMode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
