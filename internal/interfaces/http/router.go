// Package http hosts the trigger server: a small gin surface that starts
// escalation runs and exposes health probes and metrics.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/internal/interfaces/http/handlers"
	"github.com/turtacn/SLA-Sentinel/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router mounts.  Metrics may be nil when
// the collector is disabled.
type RouterDeps struct {
	Escalation *handlers.EscalationHandler
	Health     *handlers.HealthHandler
	Metrics    http.Handler
	Logger     logging.Logger
}

// NewRouter assembles the gin engine: recovery and request logging on every
// route, probes at the root, the API under /api/v1.
func NewRouter(mode string, deps RouterDeps) *gin.Engine {
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(deps.Logger))
	engine.Use(middleware.RequestLogger(deps.Logger))

	deps.Health.RegisterRoutes(engine)
	if deps.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	api := engine.Group("/api/v1")
	deps.Escalation.RegisterRoutes(api)

	return engine
}

//Personal.AI order the ending
