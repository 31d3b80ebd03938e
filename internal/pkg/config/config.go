package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host      string `env:"HOST,       default=0.0.0.0"`
	Port      string `env:"PORT,       default=5000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	ClientURL string `env:"CLIENT_URL, default=*"`

	Mongo MongoConfig
	Redis RedisConfig
	Auth  AuthConfig
	Groq  GroqConfig
	Menu  MenuConfig
	Chat  ChatConfig
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI, required"`
	Database    string `env:"DB_NAME,   required"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL, default=20"`
	MinPoolSize uint64 `env:"MONGO_MIN_POOL, default=5"`
}

// RedisConfig is optional; an empty Addr disables order idempotency.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type AuthConfig struct {
	JWTSecret   string   `env:"JWT_SECRET, required"`
	JWTExpires  Lifetime `env:"JWT_EXPIRES, default=24h"`
	AdminSecret string   `env:"ADMIN_SECRET"`
}

// GroqConfig is optional; an empty APIKey leaves generation unconfigured.
type GroqConfig struct {
	APIKey      string        `env:"GROQ_API_KEY"`
	BaseURL     string        `env:"GROQ_BASE_URL,    default=https://api.groq.com/openai/v1"`
	Model       string        `env:"GROQ_MODEL,       default=llama-3.3-70b-versatile"`
	MaxTokens   int           `env:"GROQ_MAX_TOKENS,  default=500"`
	Temperature float32       `env:"GROQ_TEMPERATURE, default=0.7"`
	Timeout     time.Duration `env:"GROQ_TIMEOUT,     default=15s"`
}

type MenuConfig struct {
	CacheTTL time.Duration `env:"MENU_CACHE_TTL, default=5s"`
}

type ChatConfig struct {
	RateLimit     float64 `env:"CHAT_RATE_LIMIT, default=2"`
	RateBurst     int     `env:"CHAT_RATE_BURST, default=5"`
	SignalWorkers int     `env:"SIGNAL_WORKERS,  default=4"`
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.JWTExpires <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRES must be positive")
	}
	return &cfg, nil
}

// Lifetime is a token lifetime. Besides Go durations ("24h", "90m") it
// accepts a day suffix ("7d") and a bare number of seconds ("3600").
type Lifetime time.Duration

func (l *Lifetime) EnvDecode(val string) error {
	val = strings.TrimSpace(val)
	if n, err := strconv.ParseInt(val, 10, 64); err == nil {
		*l = Lifetime(time.Duration(n) * time.Second)
		return nil
	}
	if days, ok := strings.CutSuffix(val, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil {
			return fmt.Errorf("invalid lifetime %q", val)
		}
		*l = Lifetime(time.Duration(n * float64(24*time.Hour)))
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid lifetime %q", val)
	}
	*l = Lifetime(d)
	return nil
}

func (l Lifetime) Duration() time.Duration {
	return time.Duration(l)
}
