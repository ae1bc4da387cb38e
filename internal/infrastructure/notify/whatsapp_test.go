package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/SLA-Sentinel/internal/config"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SLA-Sentinel/pkg/errors"
)

func newWhatsAppClient(t *testing.T, handler http.HandlerFunc) *WhatsAppClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewWhatsAppClient(config.NotifyConfig{
		WhatsAppGatewayURL: srv.URL,
		WhatsAppToken:      "wa-token",
	}, logging.NewNopLogger())
	require.NotNil(t, client)
	return client
}

func TestWhatsAppClient_SendText(t *testing.T) {
	var captured whatsAppRequest
	client := newWhatsAppClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer wa-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.SendText(context.Background(), "+966500000001", "finding overdue"))
	assert.Equal(t, "+966500000001", captured.Phone)
	assert.Equal(t, "finding overdue", captured.Body)
}

func TestWhatsAppClient_GatewayRejects(t *testing.T) {
	client := newWhatsAppClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid number", http.StatusBadRequest)
	})

	err := client.SendText(context.Background(), "+966500000001", "body")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeWhatsAppDeliveryFailed, appErr.Code)
}

func TestNewWhatsAppClient_NilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewWhatsAppClient(config.NotifyConfig{}, logging.NewNopLogger()))
}

//Personal.AI order the ending
