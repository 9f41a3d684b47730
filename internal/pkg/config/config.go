package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Store     StoreConfig
	CORS      CORSConfig
	Log       LogConfig
	Wizard    WizardConfig
	Slots     SlotsConfig
	Lock      LockConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"booking"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"booking_flow"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StoreConfig selects where booking records are persisted.
type StoreConfig struct {
	Backend string `envconfig:"STORE_BACKEND" default:"memory"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type WizardConfig struct {
	AutoAdvanceDelay    time.Duration `envconfig:"WIZARD_AUTO_ADVANCE_DELAY" default:"800ms"`
	PaymentLatency      time.Duration `envconfig:"WIZARD_PAYMENT_LATENCY" default:"3s"`
	ConfirmationDelay   time.Duration `envconfig:"WIZARD_CONFIRMATION_DELAY" default:"2s"`
	ConfirmationLatency time.Duration `envconfig:"WIZARD_CONFIRMATION_LATENCY" default:"1s"`
	SessionTTL          time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	JanitorInterval     time.Duration `envconfig:"SESSION_JANITOR_INTERVAL" default:"1m"`
	TimeZone            string        `envconfig:"WIZARD_TIMEZONE" default:"UTC"`
}

// Location resolves TimeZone, falling back to UTC for unknown names.
func (c WizardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type SlotsConfig struct {
	WindowDays           int     `envconfig:"SLOTS_WINDOW_DAYS" default:"30"`
	OpenHour             int     `envconfig:"SLOTS_OPEN_HOUR" default:"9"`
	CloseHour            int     `envconfig:"SLOTS_CLOSE_HOUR" default:"17"`
	IntervalMinutes      int     `envconfig:"SLOTS_INTERVAL_MINUTES" default:"30"`
	PresenceProbability  float64 `envconfig:"SLOTS_PRESENCE_PROBABILITY" default:"0.7"`
	AvailableProbability float64 `envconfig:"SLOTS_AVAILABLE_PROBABILITY" default:"0.9"`
	DefaultPriceCents    int64   `envconfig:"SLOTS_DEFAULT_PRICE_CENTS" default:"7500"`
	Seed                 uint64  `envconfig:"SLOTS_SEED" default:"0"`
}

type LockConfig struct {
	Backend      string        `envconfig:"LOCK_BACKEND" default:"memory"`
	PollInterval time.Duration `envconfig:"LOCK_POLL_INTERVAL" default:"3s"`
	Probability  float64       `envconfig:"LOCK_PROBABILITY" default:"0.05"`
	TTL          time.Duration `envconfig:"LOCK_TTL" default:"30s"`
}

type PricingConfig struct {
	TaxRatePercent   int64 `envconfig:"PRICING_TAX_RATE_PERCENT" default:"8"`
	PlatformFeeCents int64 `envconfig:"PRICING_PLATFORM_FEE_CENTS" default:"299"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that would only fail later inside a worker.
func (c Config) Validate() error {
	if c.Store.Backend != BackendMemory && c.Store.Backend != BackendPostgres {
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.Store.Backend)
	}
	if c.Lock.Backend != BackendMemory && c.Lock.Backend != BackendRedis {
		return fmt.Errorf("LOCK_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Lock.Backend)
	}
	for name, p := range map[string]float64{
		"SLOTS_PRESENCE_PROBABILITY":  c.Slots.PresenceProbability,
		"SLOTS_AVAILABLE_PROBABILITY": c.Slots.AvailableProbability,
		"LOCK_PROBABILITY":            c.Lock.Probability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, p)
		}
	}
	if c.Slots.OpenHour >= c.Slots.CloseHour || c.Slots.IntervalMinutes <= 0 {
		return fmt.Errorf("invalid slot hours %d-%d every %d minutes", c.Slots.OpenHour, c.Slots.CloseHour, c.Slots.IntervalMinutes)
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	if c.Slots.WindowDays <= 0 {
		return fmt.Errorf("SLOTS_WINDOW_DAYS must be positive, got %d", c.Slots.WindowDays)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Store: StoreConfig{Backend: BackendMemory},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		// gateway latencies stay zero; timers are driven by clock.MockClock
		Wizard: WizardConfig{
			AutoAdvanceDelay:  800 * time.Millisecond,
			ConfirmationDelay: 2 * time.Second,
			SessionTTL:        30 * time.Minute,
			JanitorInterval:   time.Minute,
			TimeZone:          "UTC",
		},
		Slots: SlotsConfig{
			WindowDays:           30,
			OpenHour:             9,
			CloseHour:            17,
			IntervalMinutes:      30,
			PresenceProbability:  0.7,
			AvailableProbability: 0.9,
			DefaultPriceCents:    7500,
			Seed:                 42,
		},
		Lock: LockConfig{
			Backend:      BackendMemory,
			PollInterval: 3 * time.Second,
			Probability:  0.05,
			TTL:          30 * time.Second,
		},
		Pricing: PricingConfig{
			TaxRatePercent:   8,
			PlatformFeeCents: 299,
		},
		RateLimit: RateLimitConfig{Enabled: false, RPS: 20, Burst: 40},
	}
}
