package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
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
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the curriculum snapshot cache settings.
// An empty Addr disables the cache and every read goes to PostgreSQL.
type RedisConfig struct {
	Addr          string        `yaml:"addr"           env:"REDIS_ADDR"`
	Password      string        `yaml:"password"       env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db"             env:"REDIS_DB"             env-default:"0"`
	PoolSize      int           `yaml:"pool_size"      env:"REDIS_POOL_SIZE"      env-default:"10"`
	DialTimeout   time.Duration `yaml:"dial_timeout"   env:"REDIS_DIAL_TIMEOUT"   env-default:"5s"`
	ReadTimeout   time.Duration `yaml:"read_timeout"   env:"REDIS_READ_TIMEOUT"   env-default:"3s"`
	WriteTimeout  time.Duration `yaml:"write_timeout"  env:"REDIS_WRITE_TIMEOUT"  env-default:"3s"`
	CurriculumTTL time.Duration `yaml:"curriculum_ttl" env:"REDIS_CURRICULUM_TTL" env-default:"2m"`
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// AuthConfig holds access token validation settings. Tokens are issued by the
// authentication collaborator; this service only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"coursetrack"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LedgerConfig holds the business thresholds of the progress ledger.
type LedgerConfig struct {
	EngagementThreshold   time.Duration `yaml:"engagement_threshold"     env:"LEDGER_ENGAGEMENT_THRESHOLD"     env-default:"600s" env-description:"minimum reported watch time before a topic can be completed; 0 disables the gate"`
	CertificateThreshold  int           `yaml:"certificate_threshold"    env:"LEDGER_CERTIFICATE_THRESHOLD"    env-default:"90"   env-description:"completion percent required for a certificate"`
	DoubtQueryMaxLength   int           `yaml:"doubt_query_max_length"   env:"LEDGER_DOUBT_QUERY_MAX_LENGTH"   env-default:"2000"`
	DoubtListDefaultLimit int           `yaml:"doubt_list_default_limit" env:"LEDGER_DOUBT_LIST_DEFAULT_LIMIT" env-default:"50"`
	DoubtListMaxLimit     int           `yaml:"doubt_list_max_limit"     env:"LEDGER_DOUBT_LIST_MAX_LIMIT"     env-default:"200"`
	DashboardConcurrency  int           `yaml:"dashboard_concurrency"    env:"LEDGER_DASHBOARD_CONCURRENCY"    env-default:"8"    env-description:"curricula loaded in parallel per dashboard request"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}
