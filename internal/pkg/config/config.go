package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Faucet    FaucetConfig
	Ledger    LedgerConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// FaucetConfig is captured once at startup and handed to the orchestrator
// as an immutable value; claims never read ambient process state.
type FaucetConfig struct {
	TransferTimeout   time.Duration `envconfig:"FAUCET_TRANSFER_TIMEOUT" default:"30s"`
	HistoryLimit      int           `envconfig:"FAUCET_HISTORY_LIMIT" default:"20"`
	ReconcileInterval time.Duration `envconfig:"FAUCET_RECONCILE_INTERVAL" default:"5m"`
	ReconcileBatch    int           `envconfig:"FAUCET_RECONCILE_BATCH" default:"100"`
}

type LedgerConfig struct {
	Driver         string        `envconfig:"LEDGER_DRIVER" default:"rpc"`
	Endpoint       string        `envconfig:"LEDGER_ENDPOINT" default:"http://localhost:8545"`
	RequestTimeout time.Duration `envconfig:"LEDGER_REQUEST_TIMEOUT" default:"10s"`
	ConfirmPoll    time.Duration `envconfig:"LEDGER_CONFIRM_POLL" default:"2s"`
}

type RateLimitConfig struct {
	Window         time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	IPRequests     int           `envconfig:"RATE_LIMIT_IP_REQUESTS" default:"10"`
	WalletRequests int           `envconfig:"RATE_LIMIT_WALLET_REQUESTS" default:"5"`
	MaxEntries     int           `envconfig:"RATE_LIMIT_MAX_ENTRIES" default:"4096"`
}

type AdminConfig struct {
	JWTSecret     string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	TokenDuration string `envconfig:"ADMIN_TOKEN_DURATION" default:"1h"`
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
	return cfg, nil
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
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Faucet: FaucetConfig{
			TransferTimeout:   5 * time.Second,
			HistoryLimit:      20,
			ReconcileInterval: 0, // disabled in tests
			ReconcileBatch:    100,
		},
		Ledger: LedgerConfig{
			Driver:         "stub",
			RequestTimeout: time.Second,
			ConfirmPoll:    10 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			Window:         time.Minute,
			IPRequests:     1000,
			WalletRequests: 1000,
			MaxEntries:     128,
		},
		Admin: AdminConfig{
			JWTSecret:     "test-secret",
			TokenDuration: "1h",
		},
	}
}
