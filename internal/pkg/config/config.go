package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, batch sizes, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Gateway   GatewayConfig
	Push      PushConfig
	Jobs      JobsConfig
	Scheduler SchedulerConfig
	Platform  PlatformConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Base URL the payment gateway uses to reach us (back URLs, webhook).
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Montevideo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Montevideo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// GatewayConfig covers the Mercado Pago REST API. BaseURL is overridable so
// tests can point the client at a local httptest server.
type GatewayConfig struct {
	BaseURL      string        `envconfig:"MP_BASE_URL" default:"https://api.mercadopago.com"`
	ClientID     string        `envconfig:"MP_CLIENT_ID" default:""`
	ClientSecret string        `envconfig:"MP_CLIENT_SECRET" default:""`
	// Marketplace-level token; reads payments created under any partner.
	AccessToken string        `envconfig:"MP_ACCESS_TOKEN" default:""`
	Timeout     time.Duration `envconfig:"MP_TIMEOUT" default:"15s"`
}

type PushConfig struct {
	ExpoURL   string        `envconfig:"PUSH_EXPO_URL" default:"https://exp.host/--/api/v2/push/send"`
	FCMURL    string        `envconfig:"PUSH_FCM_URL" default:"https://fcm.googleapis.com/fcm/send"`
	FCMKey    string        `envconfig:"PUSH_FCM_SERVER_KEY" default:""`
	Timeout   time.Duration `envconfig:"PUSH_TIMEOUT" default:"10s"`
	BatchSize int32         `envconfig:"PUSH_BATCH_SIZE" default:"50"`
}

type JobsConfig struct {
	// Orders stuck in pending/pending_payment longer than this get swept.
	OrderTimeout   time.Duration `envconfig:"JOBS_ORDER_TIMEOUT" default:"10m"`
	SweepBatchSize int32         `envconfig:"JOBS_SWEEP_BATCH_SIZE" default:"100"`
	GatewayTimeout time.Duration `envconfig:"JOBS_GATEWAY_TIMEOUT" default:"5s"`
	// Zero disables the internal tickers; an external scheduler hits the
	// trigger endpoints instead.
	SweepInterval    time.Duration `envconfig:"JOBS_SWEEP_INTERVAL" default:"0"`
	DispatchInterval time.Duration `envconfig:"JOBS_DISPATCH_INTERVAL" default:"0"`
}

// SchedulerConfig authenticates trigger calls from the external scheduler.
type SchedulerConfig struct {
	Secret   string        `envconfig:"SCHEDULER_JWT_SECRET" required:"true"`
	TokenTTL time.Duration `envconfig:"SCHEDULER_TOKEN_TTL" default:"15m"`
}

type PlatformConfig struct {
	// Commission applied when a partner has no override.
	DefaultCommissionPct float64 `envconfig:"PLATFORM_DEFAULT_COMMISSION_PCT" default:"5.0"`
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
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Montevideo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Montevideo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Gateway: GatewayConfig{
			BaseURL:     "https://api.mercadopago.com",
			AccessToken: "TEST-platform-access-token",
			Timeout:     15 * time.Second,
		},
		Push: PushConfig{
			ExpoURL:   "https://exp.host/--/api/v2/push/send",
			FCMURL:    "https://fcm.googleapis.com/fcm/send",
			Timeout:   10 * time.Second,
			BatchSize: 50,
		},
		Jobs: JobsConfig{
			OrderTimeout:   10 * time.Minute,
			SweepBatchSize: 100,
			GatewayTimeout: 5 * time.Second,
		},
		Scheduler: SchedulerConfig{
			Secret:   "test-scheduler-secret",
			TokenTTL: 15 * time.Minute,
		},
		Platform: PlatformConfig{
			DefaultCommissionPct: 5.0,
		},
	}
}
