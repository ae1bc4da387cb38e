// Package kafka publishes SLA transition events so downstream consumers
// (dashboards, ticketing, analytics) can react to warnings and escalations
// without polling the findings table.
package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// Topic constants
const (
	TopicFindingWarningSent = "finding.warning.sent"
	TopicFindingEscalated   = "finding.escalated"
)

// EventEnvelope standardizes event messages.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	SchemaVersion string          `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

// WarningSentPayload announces a pre-due warning delivered to a finding owner.
type WarningSentPayload struct {
	FindingID      string    `json:"finding_id"`
	Reference      string    `json:"reference"`
	TenantID       string    `json:"tenant_id"`
	Classification string    `json:"classification"`
	DueDate        time.Time `json:"due_date"`
	WarnedAt       time.Time `json:"warned_at"`
}

// EscalatedPayload announces an escalation level raise.
type EscalatedPayload struct {
	FindingID      string    `json:"finding_id"`
	Reference      string    `json:"reference"`
	TenantID       string    `json:"tenant_id"`
	Classification string    `json:"classification"`
	Level          int       `json:"level"`
	OverdueDays    int       `json:"overdue_days"`
	EscalatedAt    time.Time `json:"escalated_at"`
}

// NewEventEnvelope wraps a payload in the standard envelope.
func NewEventEnvelope(eventType string, source string, payload interface{}) (*EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal payload")
	}
	return &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		SchemaVersion: "v1",
		Payload:       data,
	}, nil
}

// DecodePayload unmarshals the envelope payload into target.
func (e *EventEnvelope) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return nil
	}
	return json.Unmarshal(e.Payload, target)
}

//Personal.AI order the ending
