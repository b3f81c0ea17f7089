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
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Payment   PaymentConfig
	Booking   BookingConfig
	Receipts  ReceiptsConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	CacheDB  int    `envconfig:"REDIS_CACHE_DB" default:"0"`
	QueueDB  int    `envconfig:"REDIS_QUEUE_DB" default:"1"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// PaymentConfig selects the gateway adapter. An empty StripeSecretKey falls back to the fake gateway.
type PaymentConfig struct {
	StripeSecretKey string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	Currency        string        `envconfig:"PAYMENT_CURRENCY" default:"INR"`
	PollAttempts    int           `envconfig:"PAYMENT_POLL_ATTEMPTS" default:"5"`
	PollDelay       time.Duration `envconfig:"PAYMENT_POLL_DELAY" default:"3s"`
	// HoldTTL is how long an unpaid checkout keeps its slot.
	HoldTTL time.Duration `envconfig:"PAYMENT_HOLD_TTL" default:"30m"`
}

type BookingConfig struct {
	DraftTTL         time.Duration `envconfig:"BOOKING_DRAFT_TTL" default:"30m"`
	PriorityDebounce time.Duration `envconfig:"BOOKING_PRIORITY_DEBOUNCE" default:"500ms"`
	TimeZone         string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Kolkata"`
}

// ReceiptsConfig is optional; receipts are not archived when Bucket is empty.
type ReceiptsConfig struct {
	Bucket string `envconfig:"RECEIPTS_BUCKET" default:""`
	Region string `envconfig:"RECEIPTS_REGION" default:"ap-south-1"`
	Prefix string `envconfig:"RECEIPTS_PREFIX" default:"receipts/"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_RPM" default:"300"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
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
			TimeZone: "Asia/Kolkata",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Payment: PaymentConfig{
			Currency:     "INR",
			PollAttempts: 5,
			PollDelay:    10 * time.Millisecond,
			HoldTTL:      30 * time.Minute,
		},
		Booking: BookingConfig{
			DraftTTL:         30 * time.Minute,
			PriorityDebounce: 20 * time.Millisecond,
			TimeZone:         "Asia/Kolkata",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
		},
	}
}
