package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// WhatsAppClient posts text messages to the WhatsApp business gateway.
type WhatsAppClient struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     logging.Logger
}

type whatsAppRequest struct {
	Phone string `json:"phone"`
	Body  string `json:"body"`
}

// NewWhatsAppClient builds a WhatsApp gateway client.  Returns nil when no
// gateway URL is configured; the dispatcher treats a nil text sender as
// channel-not-configured.
func NewWhatsAppClient(cfg config.NotifyConfig, logger logging.Logger) *WhatsAppClient {
	if cfg.WhatsAppGatewayURL == "" {
		return nil
	}
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}
	return &WhatsAppClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.WhatsAppGatewayURL,
		token:      cfg.WhatsAppToken,
		logger:     logger,
	}
}

// SendText delivers one plain-text message to phone.
func (c *WhatsAppClient) SendText(ctx context.Context, phone, body string) error {
	if phone == "" {
		return errors.New(errors.ErrCodeValidation, "recipient phone required")
	}

	payload, err := json.Marshal(whatsAppRequest{Phone: phone, Body: body})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal whatsapp request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to build whatsapp request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeGatewayUnavailable, "whatsapp gateway unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("whatsapp dispatched", logging.String("phone", phone))
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return errors.New(errors.ErrCodeWhatsAppDeliveryFailed,
		fmt.Sprintf("whatsapp gateway returned status %d: %s", resp.StatusCode, string(detail)))
}

//Personal.AI order the ending
