package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (upstream URL etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
	Log      LogConfig
	Cache    CacheConfig
	Cleanup  CleanupConfig
	Timer    TimerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"1337"`
}

// The upstream rejects requests that don't look like they come from the mobile web view.
const DefaultUserAgent = "Mozilla/5.0 (Linux; Android 6.0; HTC One X10 Build/MRA58K; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/61.0.3163.98 Mobile Safari/537.36"

type UpstreamConfig struct {
	BaseURL   string        `envconfig:"UPSTREAM_URL" required:"true"`
	Timeout   time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"UPSTREAM_USER_AGENT"` // empty means DefaultUserAgent
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Helsinki"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// CacheConfig controls the reservation context cache. An empty RedisAddr disables it
// and every request resolves its reservation upstream. When enabled, a resolved
// context is reused for up to TTL, so a reservation that changes upstream is seen
// stale for at most that long.
type CacheConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != "" && c.TTL > 0
}

type CleanupConfig struct {
	Workers     int           `envconfig:"CLEANUP_WORKERS" default:"2"`
	QueueSize   int           `envconfig:"CLEANUP_QUEUE_SIZE" default:"64"`
	Concurrency int           `envconfig:"CLEANUP_CONCURRENCY" default:"4"`
	Timeout     time.Duration `envconfig:"CLEANUP_TIMEOUT" default:"30s"`
}

type TimerConfig struct {
	// Upstream end dates carry no offset; they are read in this zone.
	TimeZone string `envconfig:"TIMER_TIMEZONE" default:"Local"`
}

func (c TimerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMER_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Upstream.UserAgent == "" {
		cfg.Upstream.UserAgent = DefaultUserAgent
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL:   "http://localhost:18080",
			Timeout:   2 * time.Second,
			UserAgent: DefaultUserAgent,
		},
		CORS: CORSConfig{
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Helsinki",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Cache: CacheConfig{
			TTL: 30 * time.Second,
		},
		Cleanup: CleanupConfig{
			Workers:     1,
			QueueSize:   8,
			Concurrency: 2,
			Timeout:     2 * time.Second,
		},
		Timer: TimerConfig{
			TimeZone: "UTC",
		},
	}
}
