// Package notify implements the outbound notification channels as thin REST
// gateway clients.  Both channels satisfy the escalation pipeline's sender
// ports; delivery policy (which channels, failure handling) lives in the
// pipeline, not here.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

const defaultRequestTimeout = 15 * time.Second

// moduleTag identifies the sending module to the gateway for per-module
// delivery accounting.
const moduleTag = "escalation"

// EmailClient posts messages to the email gateway's send endpoint.
type EmailClient struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	fromAddress string
	fromName    string
	logger      logging.Logger
}

type emailRequest struct {
	To          string `json:"to"`
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name,omitempty"`
	Subject     string `json:"subject"`
	HTMLBody    string `json:"html_body"`
	Module      string `json:"module"`
}

// NewEmailClient builds an email gateway client from configuration.
func NewEmailClient(cfg config.NotifyConfig, logger logging.Logger) (*EmailClient, error) {
	if cfg.EmailGatewayURL == "" {
		return nil, errors.New(errors.ErrCodeValidation, "email gateway url required")
	}
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}
	return &EmailClient{
		httpClient:  &http.Client{Timeout: timeout},
		endpoint:    cfg.EmailGatewayURL,
		apiKey:      cfg.EmailAPIKey,
		fromAddress: cfg.EmailFromAddress,
		fromName:    cfg.EmailFromName,
		logger:      logger,
	}, nil
}

// SendEmail delivers one message through the gateway.
func (c *EmailClient) SendEmail(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return errors.New(errors.ErrCodeValidation, "recipient address required")
	}

	payload, err := json.Marshal(emailRequest{
		To:          to,
		FromAddress: c.fromAddress,
		FromName:    c.fromName,
		Subject:     subject,
		HTMLBody:    body,
		Module:      moduleTag,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeGatewayUnavailable, "email gateway unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("email dispatched", logging.String("to", to))
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return errors.New(errors.ErrCodeEmailDeliveryFailed,
		fmt.Sprintf("email gateway returned status %d: %s", resp.StatusCode, string(detail)))
}

//Personal.AI order the ending
