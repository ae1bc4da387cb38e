// Package config defines all configuration structures for the SLA-Sentinel
// escalation engine.  No I/O or parsing logic lives here — only plain data
// types and validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP trigger-server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the run lock.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// KafkaConfig holds Apache Kafka producer parameters for escalation events.
type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	ClientID     string        `mapstructure:"client_id"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	RequiredAcks string        `mapstructure:"required_acks"` // "none" | "one" | "all"
	MaxRetries   int           `mapstructure:"max_retries"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
}

// NotifyConfig holds the external notification gateway parameters.
// Both transports are plain REST gateways; the engine treats them as
// black-box deliver(recipient, message) capabilities.
type NotifyConfig struct {
	EmailGatewayURL    string        `mapstructure:"email_gateway_url"`
	EmailAPIKey        string        `mapstructure:"email_api_key"`
	EmailFromAddress   string        `mapstructure:"email_from_address"`
	EmailFromName      string        `mapstructure:"email_from_name"`
	WhatsAppGatewayURL string        `mapstructure:"whatsapp_gateway_url"`
	WhatsAppToken      string        `mapstructure:"whatsapp_token"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

// EngineConfig holds escalation-engine execution parameters.
type EngineConfig struct {
	// RunDeadline bounds a whole batch invocation; items not reached before
	// the deadline are picked up by the next scheduled run.
	RunDeadline time.Duration `mapstructure:"run_deadline"`

	// LockEnabled guards against overlapping cron triggers via the Redis
	// run lock.  The marker-based state machine remains the correctness
	// safeguard; the lock only avoids wasted duplicate work.
	LockEnabled bool          `mapstructure:"lock_enabled"`
	LockTTL     time.Duration `mapstructure:"lock_ttl"`

	// DefaultLanguage is the fallback recipient language when a profile has
	// no preference recorded.
	DefaultLanguage string `mapstructure:"default_language"` // "en" | "ar"
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the engine.  Every
// infrastructure component and application service reads its settings from
// the relevant sub-struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Log      LogConfig      `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host must not be empty")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name must not be empty")
	}

	if c.Engine.LockEnabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: engine.lock_enabled requires redis.addr")
	}
	if c.Engine.RunDeadline <= 0 {
		return fmt.Errorf("config: engine.run_deadline must be positive")
	}
	switch c.Engine.DefaultLanguage {
	case "en", "ar":
	default:
		return fmt.Errorf("config: engine.default_language %q is invalid; expected en|ar", c.Engine.DefaultLanguage)
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.enabled requires at least one broker")
	}
	switch c.Kafka.RequiredAcks {
	case "", "none", "one", "all":
	default:
		return fmt.Errorf("config: kafka.required_acks %q is invalid; expected none|one|all", c.Kafka.RequiredAcks)
	}

	if c.Notify.EmailGatewayURL == "" {
		return fmt.Errorf("config: notify.email_gateway_url must not be empty")
	}
	if c.Notify.EmailFromAddress == "" {
		return fmt.Errorf("config: notify.email_from_address must not be empty")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid", c.Log.Level)
	}

	return nil
}

//Personal.AI order the ending
