package escalation

import (
	"context"
	"fmt"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// Transitioner commits the SLA state markers after a notification round.
// Markers are what make the engine idempotent: once warning_sent_at is
// stamped or the level is raised, later runs skip the finding.  A commit
// lands after the dispatch attempt, regardless of per-channel delivery
// outcome, so a decision to notify fires at most once.
type Transitioner struct {
	findings finding.Repository
	log      logging.Logger
}

// NewTransitioner wires the transition writer.
func NewTransitioner(findings finding.Repository, log logging.Logger) *Transitioner {
	return &Transitioner{findings: findings, log: log}
}

// CommitWarning stamps the one-shot warning marker and records an audit note.
// The marker write is guarded in the repository (only-if-unset), so two
// overlapping runs cannot both claim the warning.
func (t *Transitioner) CommitWarning(ctx context.Context, f *finding.Finding, at time.Time, out DispatchOutcome) error {
	if err := t.findings.MarkWarningSent(ctx, f.ID, at); err != nil {
		return errors.Wrap(err, errors.ErrCodeFindingTransitionLost,
			"committing warning marker").WithDetail(f.Reference)
	}
	note := fmt.Sprintf("SLA warning sent to finding owner (email delivered: %t)", out.EmailOK)
	t.appendNote(ctx, f, note)
	stamp := at
	f.WarningSentAt = &stamp
	return nil
}

// CommitEscalation raises the escalation level, stamps last_escalated_at and
// records the audit note naming the level and how far overdue the finding
// was.  The repository guard keeps the level monotonic even under races.
func (t *Transitioner) CommitEscalation(ctx context.Context, f *finding.Finding, level, overdueDays int, at time.Time) error {
	if err := f.ValidateLevel(level); err != nil {
		return err
	}
	if err := t.findings.RaiseEscalation(ctx, f.ID, level, at); err != nil {
		return errors.Wrap(err, errors.ErrCodeFindingTransitionLost,
			"committing escalation level").WithDetail(f.Reference)
	}
	t.appendNote(ctx, f, EscalationNote(level, overdueDays))
	f.EscalationLevel = level
	stamp := at
	f.LastEscalatedAt = &stamp
	return nil
}

// EscalationNote renders the audit trail line for a level raise.
func EscalationNote(level, overdueDays int) string {
	return fmt.Sprintf("Auto-escalated to Level %d — %s overdue", level, enDays(overdueDays))
}

// appendNote records the audit line; a lost note is logged but never fails
// the transition, since the marker itself already committed.
func (t *Transitioner) appendNote(ctx context.Context, f *finding.Finding, note string) {
	if err := t.findings.AppendAuditNote(ctx, f.ID, note); err != nil {
		t.log.Warn("audit note not recorded",
			logging.String("finding", f.Reference),
			logging.Err(err))
	}
}

//Personal.AI order the ending
