package escalation

import (
	"context"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
)

// EventPublisher announces committed SLA transitions to the rest of the
// platform.  Publishing is fire-and-forget from the pipeline's point of
// view: a broker outage is logged by the implementation and never blocks or
// fails a run.
type EventPublisher interface {
	PublishWarningSent(ctx context.Context, f *finding.Finding) error
	PublishEscalated(ctx context.Context, f *finding.Finding, level, overdueDays int) error
}

// NopPublisher discards every event.  Used when messaging is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishWarningSent(context.Context, *finding.Finding) error { return nil }
func (NopPublisher) PublishEscalated(context.Context, *finding.Finding, int, int) error {
	return nil
}

//Personal.AI order the ending
