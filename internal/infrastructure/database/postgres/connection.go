package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// Pool limits applied when the config leaves them unset.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 10
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
	connectPingTimeout     = 5 * time.Second
)

// sqlOpen is swapped out by tests to inject sqlmock.
var sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
	return sql.Open(driverName, dataSourceName)
}

// Connection owns the engine's PostgreSQL pool.  All repositories share one
// Connection; Close is idempotent so shutdown paths can call it freely.
type Connection struct {
	db     *sql.DB
	cfg    config.DatabaseConfig
	logger logging.Logger
	once   sync.Once
}

// NewConnection opens a pool through the pgx stdlib driver, applies the
// configured limits and proves liveness with a bounded ping before handing
// the pool out.
func NewConnection(cfg config.DatabaseConfig, log logging.Logger) (*Connection, error) {
	db, err := sqlOpen("pgx", BuildDSN(cfg))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to open database connection")
	}

	db.SetMaxOpenConns(intOrDefault(cfg.MaxOpenConns, defaultMaxOpenConns))
	db.SetMaxIdleConns(intOrDefault(cfg.MaxIdleConns, defaultMaxIdleConns))
	db.SetConnMaxLifetime(durOrDefault(cfg.ConnMaxLifetime, defaultConnMaxLifetime))
	db.SetConnMaxIdleTime(durOrDefault(cfg.ConnMaxIdleTime, defaultConnMaxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "database connection failed")
	}

	log.Info("postgres pool ready",
		logging.String("host", cfg.Host),
		logging.Int("port", cfg.Port),
		logging.String("database", cfg.DBName))

	return &Connection{db: db, cfg: cfg, logger: log}, nil
}

// NewConnectionWithDB wraps an already-open sql.DB.  Used by tests and by the
// integration suite, which opens against a container DSN itself.
func NewConnectionWithDB(db *sql.DB, log logging.Logger) *Connection {
	return &Connection{db: db, logger: log}
}

// DB exposes the pool for the repository layer.
func (c *Connection) DB() *sql.DB {
	return c.db
}

// HealthCheck pings the database and warns when the pool runs hot (more than
// 80% of open connections in use), which usually means a run is holding
// queries longer than expected.
func (c *Connection) HealthCheck(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "database health check failed")
	}

	s := c.Stats()
	if s.OpenConnections > 0 {
		if usage := float64(s.InUse) / float64(s.OpenConnections); usage > 0.8 {
			c.logger.Warn("postgres pool near saturation",
				logging.Int("in_use", s.InUse),
				logging.Int("open", s.OpenConnections),
				logging.Float64("usage", usage))
		}
	}
	return nil
}

// Stats reports the pool's sql.DBStats.
func (c *Connection) Stats() sql.DBStats {
	return c.db.Stats()
}

// Close releases the pool exactly once.
func (c *Connection) Close() error {
	var err error
	c.once.Do(func() {
		if err = c.db.Close(); err != nil {
			c.logger.Error("postgres pool close failed", logging.Err(err))
			return
		}
		c.logger.Info("postgres pool closed")
	})
	return err
}

// BuildDSN renders the postgres:// URL for cfg.  Exported so the migration
// commands run against the exact DSN the pool uses.
func BuildDSN(cfg config.DatabaseConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

func intOrDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func durOrDefault(v, def time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return def
}

//Personal.AI order the ending
