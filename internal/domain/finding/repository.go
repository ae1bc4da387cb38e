package finding

import (
	"context"
	"time"

	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// Repository is the persistence port for findings.  The read side selects the
// batch candidate set; the write side carries exactly the four SLA-tracking
// mutations the engine is allowed to make.  All writes are single-row,
// single-field-group updates keyed by finding id — items are evaluated
// independently, so no cross-item transaction exists.
type Repository interface {
	// ListOpenWithDueDates returns every finding across all tenants whose
	// status is non-terminal and whose due date is set.  Terminal and
	// undated findings are excluded at the query, not in application code.
	ListOpenWithDueDates(ctx context.Context) ([]*Finding, error)

	// MarkWarningSent sets warning_sent_at if and only if it is still unset.
	// The guard makes the write idempotent under overlapping runs.
	MarkWarningSent(ctx context.Context, id common.ID, at time.Time) error

	// RaiseEscalation sets escalation_level to level and stamps
	// last_escalated_at, guarded so the level only ever increases.
	RaiseEscalation(ctx context.Context, id common.ID, level int, at time.Time) error

	// AppendAuditNote records a free-text note against the finding for human
	// traceability of automatic transitions.
	AppendAuditNote(ctx context.Context, id common.ID, note string) error
}

//Personal.AI order the ending
