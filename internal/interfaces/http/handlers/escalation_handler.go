// Package handlers implements the trigger server's HTTP handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/SLA-Sentinel/internal/application/escalation"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// RunTrigger starts one escalation batch.  The HTTP surface is a thin
// trigger: all scheduling lives in the caller (cron, CI, an operator).
type RunTrigger interface {
	Run(ctx context.Context) (*escalation.RunSummary, error)
}

// EscalationHandler exposes the batch trigger endpoint.
type EscalationHandler struct {
	runner RunTrigger
	logger logging.Logger
}

// NewEscalationHandler wires the handler.
func NewEscalationHandler(runner RunTrigger, log logging.Logger) *EscalationHandler {
	return &EscalationHandler{runner: runner, logger: log}
}

// RegisterRoutes registers the escalation routes on group.
func (h *EscalationHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/escalations/run", h.TriggerRun)
}

type runResponse struct {
	Success bool `json:"success"`
	*escalation.RunSummary
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// TriggerRun handles POST /api/v1/escalations/run.  The run executes
// synchronously; the response carries the full summary.  A run already in
// progress elsewhere answers 409 without touching any finding.
func (h *EscalationHandler) TriggerRun(c *gin.Context) {
	summary, err := h.runner.Run(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		resp := errorResponse{Error: err.Error()}

		if code := errors.GetCode(err); code != errors.CodeUnknown {
			status = errors.HTTPStatusForCode(code)
			resp.Error = errors.DefaultMessageForCode(code)
			resp.Code = code.String()
		}

		h.logger.Error("escalation run failed",
			logging.Int("status", status),
			logging.Err(err))
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, runResponse{Success: true, RunSummary: summary})
}

//Personal.AI order the ending
