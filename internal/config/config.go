package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Sweep     SweepConfig     `yaml:"sweep"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
	LockTimeout      time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"5s"`
}

// RedisConfig holds the policy cache connection. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"5m"`
	Timeout  time.Duration `yaml:"timeout"   env:"REDIS_TIMEOUT"   env-default:"200ms"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// AuthConfig holds actor token and password reset settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"campusdesk"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
	ResetTokenTTL  time.Duration `yaml:"reset_token_ttl"  env:"AUTH_RESET_TOKEN_TTL"  env-default:"1h"`
	ResetURLBase   string        `yaml:"reset_url_base"   env:"AUTH_RESET_URL_BASE"   env-default:"http://localhost:3000/reset-password"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-client request limiter settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"true"`
	RequestsPerSec  float64       `yaml:"requests_per_sec" env:"RATELIMIT_RPS"              env-default:"20"`
	Burst           int           `yaml:"burst"            env:"RATELIMIT_BURST"            env-default:"40"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
	// TrustedProxies lists addresses or CIDRs whose X-Forwarded-For header is
	// believed. Requests from anyone else are keyed on the socket address.
	TrustedProxies []string `yaml:"trusted_proxies" env:"RATELIMIT_TRUSTED_PROXIES" env-separator:","`
}

// TrustedPrefixes parses TrustedProxies. A bare address becomes a single-host prefix.
func (r RateLimitConfig) TrustedPrefixes() ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(r.TrustedProxies))
	for _, raw := range r.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// SweepConfig holds the escalation / auto-close sweep settings.
type SweepConfig struct {
	Interval  time.Duration `yaml:"interval"   env:"SWEEP_INTERVAL"   env-default:"15m"`
	BatchSize int           `yaml:"batch_size" env:"SWEEP_BATCH_SIZE" env-default:"200"`
	DryRun    bool          `yaml:"dry_run"    env:"SWEEP_DRY_RUN"    env-default:"false"`
}
