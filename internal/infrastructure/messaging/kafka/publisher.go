package kafka

import (
	"context"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
)

// EventPublisher adapts the Kafka producer to the escalation pipeline's
// publisher port.  Events are keyed by finding id so transitions for one
// finding are consumed in order.
type EventPublisher struct {
	producer *Producer
	source   string
	logger   logging.Logger
}

// NewEventPublisher wraps producer.  source identifies this service in the
// envelope, typically the configured Kafka client id.
func NewEventPublisher(producer *Producer, source string, log logging.Logger) *EventPublisher {
	if source == "" {
		source = "sla-sentinel"
	}
	return &EventPublisher{
		producer: producer,
		source:   source,
		logger:   log,
	}
}

// PublishWarningSent announces a delivered pre-due warning.
func (p *EventPublisher) PublishWarningSent(ctx context.Context, f *finding.Finding) error {
	payload := WarningSentPayload{
		FindingID:      string(f.ID),
		Reference:      f.Reference,
		TenantID:       string(f.TenantID),
		Classification: string(f.Classification),
		WarnedAt:       time.Now().UTC(),
	}
	if f.DueDate != nil {
		payload.DueDate = *f.DueDate
	}
	if f.WarningSentAt != nil {
		payload.WarnedAt = *f.WarningSentAt
	}

	env, err := NewEventEnvelope(TopicFindingWarningSent, p.source, payload)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, TopicFindingWarningSent, string(f.ID), env)
}

// PublishEscalated announces an escalation level raise.
func (p *EventPublisher) PublishEscalated(ctx context.Context, f *finding.Finding, level, overdueDays int) error {
	payload := EscalatedPayload{
		FindingID:      string(f.ID),
		Reference:      f.Reference,
		TenantID:       string(f.TenantID),
		Classification: string(f.Classification),
		Level:          level,
		OverdueDays:    overdueDays,
		EscalatedAt:    time.Now().UTC(),
	}
	if f.LastEscalatedAt != nil {
		payload.EscalatedAt = *f.LastEscalatedAt
	}

	env, err := NewEventEnvelope(TopicFindingEscalated, p.source, payload)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, TopicFindingEscalated, string(f.ID), env)
}

//Personal.AI order the ending
