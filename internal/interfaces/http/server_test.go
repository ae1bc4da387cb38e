package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/SLA-Sentinel/internal/application/escalation"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/SLA-Sentinel/internal/interfaces/http/handlers"
)

type stubRunner struct{}

func (stubRunner) Run(context.Context) (*escalation.RunSummary, error) {
	return &escalation.RunSummary{FindingsChecked: 1}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := logging.NewNopLogger()

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace: "sentinel",
	}, log)
	require.NoError(t, err)

	engine := NewRouter("test", RouterDeps{
		Escalation: handlers.NewEscalationHandler(stubRunner{}, log),
		Health:     handlers.NewHealthHandler("test"),
		Metrics:    collector.Handler(),
		Logger:     log,
	})
	return NewServer(config.ServerConfig{Port: 8080}, engine, log)
}

func TestRouter_RoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/api/v1/escalations/run", http.StatusOK},
		{http.MethodGet, "/api/v1/escalations/run", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestServer_Stop(t *testing.T) {
	srv := newTestServer(t)
	// Shutdown on a server that never started listening returns cleanly.
	assert.NoError(t, srv.Stop(context.Background()))
}

//Personal.AI order the ending
