package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when rate limiting is enabled (got %v)", c.RateLimit.CleanupInterval)
	}

	if c.Redis.Enabled() && c.Redis.CurriculumTTL <= 0 {
		return fmt.Errorf("redis.curriculum_ttl must be > 0 when redis is enabled (got %v)", c.Redis.CurriculumTTL)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	if l.EngagementThreshold < 0 {
		return fmt.Errorf("engagement_threshold must be >= 0 (got %v)", l.EngagementThreshold)
	}
	if l.CertificateThreshold <= 0 || l.CertificateThreshold > 100 {
		return fmt.Errorf("certificate_threshold must be in 1..100 (got %d)", l.CertificateThreshold)
	}
	if l.DoubtQueryMaxLength <= 0 {
		return fmt.Errorf("doubt_query_max_length must be > 0 (got %d)", l.DoubtQueryMaxLength)
	}
	if l.DoubtListDefaultLimit <= 0 || l.DoubtListDefaultLimit > l.DoubtListMaxLimit {
		return fmt.Errorf("doubt_list_default_limit must be in 1..doubt_list_max_limit (got %d, max %d)",
			l.DoubtListDefaultLimit, l.DoubtListMaxLimit)
	}
	if l.DashboardConcurrency <= 0 {
		return fmt.Errorf("dashboard_concurrency must be > 0 (got %d)", l.DashboardConcurrency)
	}
	return nil
}

// EngagementThresholdSeconds returns the gate in whole seconds.
func (l LedgerConfig) EngagementThresholdSeconds() int {
	return int(l.EngagementThreshold.Seconds())
}
