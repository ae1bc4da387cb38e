package cli

import (
	"context"

	"github.com/turtacn/SLA-Sentinel/internal/application/escalation"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/domain/policy"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/redis"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/notify"
	"github.com/turtacn/SLA-Sentinel/internal/interfaces/http/handlers"
)

// lockName is the redis key suffix serialising batch runs across processes.
const lockName = "escalation-run"

// App holds the wired engine: every infrastructure client plus the runner
// that drives a batch.  Built once per process by newApp, torn down by Close.
type App struct {
	Config    *config.Config
	Logger    logging.Logger
	DB        *postgres.Connection
	Redis     *redis.Client
	Producer  *kafka.Producer
	Runner    *escalation.Runner
	Collector prometheus.MetricsCollector
}

// newApp builds the full dependency graph from configuration.  Optional
// components (kafka, the redis lock) are wired only when enabled; the
// pipeline itself never knows whether they are present.
func newApp(cfg *config.Config, log logging.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: log}

	db, err := postgres.NewConnection(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	findingRepo := repositories.NewPostgresFindingRepo(db, log)
	policyRepo := repositories.NewPostgresPolicyRepo(db, log)
	profileRepo := repositories.NewPostgresProfileRepo(db, log)

	emailClient, err := notify.NewEmailClient(cfg.Notify, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	// A nil WhatsApp client must stay a nil interface so the dispatcher
	// treats the channel as not configured.
	var textSender escalation.TextSender
	if wa := notify.NewWhatsAppClient(cfg.Notify, log); wa != nil {
		textSender = wa
	}
	dispatcher := escalation.NewDispatcher(emailClient, textSender, log)

	var events escalation.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Producer = producer
		events = kafka.NewEventPublisher(producer, cfg.Kafka.ClientID, log)
	}

	var lock escalation.RunLock
	if cfg.Engine.LockEnabled {
		client, err := redis.NewClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Redis = client
		lock = redis.NewRunLock(client, lockName, cfg.Engine.LockTTL, log)
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace: "sentinel",
		Subsystem: "escalation",
	}, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Collector = collector
	metrics := prometheus.NewEngineMetrics(collector)

	orch := escalation.NewOrchestrator(
		findingRepo,
		policyRepo,
		policy.Defaults(),
		escalation.NewRecipientResolver(profileRepo),
		dispatcher,
		escalation.NewTransitioner(findingRepo, log),
		events,
		log,
	)
	app.Runner = escalation.NewRunner(orch, lock, metrics, cfg.Engine.RunDeadline, log)

	return app, nil
}

// Close tears down infrastructure clients in reverse dependency order.
func (a *App) Close() {
	if a.Producer != nil {
		if err := a.Producer.Close(); err != nil {
			a.Logger.Warn("kafka producer close failed", logging.Err(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("redis close failed", logging.Err(err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Warn("database close failed", logging.Err(err))
		}
	}
}

// componentChecker adapts an infrastructure probe to the health handler.
type componentChecker struct {
	name  string
	check func(ctx context.Context) error
}

func (c componentChecker) Name() string                    { return c.name }
func (c componentChecker) Check(ctx context.Context) error { return c.check(ctx) }

// healthCheckers lists the readiness probes for every wired component.
func (a *App) healthCheckers() []handlers.HealthChecker {
	checkers := []handlers.HealthChecker{
		componentChecker{name: "postgres", check: a.DB.HealthCheck},
	}
	if a.Redis != nil {
		checkers = append(checkers, componentChecker{name: "redis", check: a.Redis.Ping})
	}
	return checkers
}

//Personal.AI order the ending
