package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.ResetTokenTTL < time.Minute || c.Auth.ResetTokenTTL > 72*time.Hour {
		return fmt.Errorf("auth.reset_token_ttl must be between 1m and 72h (got %v)", c.Auth.ResetTokenTTL)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}
	if err := c.Sweep.validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if c.Redis.Enabled() && c.Redis.CacheTTL <= 0 {
		return fmt.Errorf("redis.cache_ttl must be > 0 when redis is enabled (got %v)", c.Redis.CacheTTL)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerSec <= 0 {
		return fmt.Errorf("requests_per_sec must be > 0 (got %v)", r.RequestsPerSec)
	}
	if r.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
	}
	if _, err := r.TrustedPrefixes(); err != nil {
		return err
	}
	return nil
}

func (s *SweepConfig) validate() error {
	if s.Interval < time.Minute {
		return fmt.Errorf("interval must be at least 1m (got %v)", s.Interval)
	}
	if s.BatchSize < 1 || s.BatchSize > 5000 {
		return fmt.Errorf("batch_size must be between 1 and 5000 (got %d)", s.BatchSize)
	}
	return nil
}
