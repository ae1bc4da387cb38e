// Package finding defines the work-item aggregate tracked by the SLA
// escalation engine: inspection findings with a due date, a classification,
// and the escalation markers that make the engine's notifications fire
// exactly once per state transition.
package finding

import (
	"time"

	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// Classification enumeration
// ─────────────────────────────────────────────────────────────────────────────

// Classification is the severity/category tag on a finding, used to key SLA
// policy lookup.
type Classification string

const (
	// ClassificationCriticalNC is a critical non-conformance — the shortest
	// SLA windows of all classifications.
	ClassificationCriticalNC Classification = "critical_nc"

	// ClassificationMajorNC is a major non-conformance.
	ClassificationMajorNC Classification = "major_nc"

	// ClassificationMinorNC is a minor non-conformance.
	ClassificationMinorNC Classification = "minor_nc"

	// ClassificationObservation is an observation — the longest windows, and
	// the safe fallback for unrecognised classifications.
	ClassificationObservation Classification = "observation"
)

// KnownClassifications lists every classification the engine evaluates, most
// severe first.
var KnownClassifications = []Classification{
	ClassificationCriticalNC,
	ClassificationMajorNC,
	ClassificationMinorNC,
	ClassificationObservation,
}

// IsKnown reports whether c is one of the recognised classifications.
func (c Classification) IsKnown() bool {
	for _, k := range KnownClassifications {
		if c == k {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Status enumeration
// ─────────────────────────────────────────────────────────────────────────────

// Status is the workflow state of a finding.  The engine only ever reads it;
// status transitions belong to the surrounding CRUD system.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
	StatusResolved   Status = "resolved"
)

// IsTerminal reports whether the status excludes the finding from SLA
// evaluation entirely.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusResolved
}

// ─────────────────────────────────────────────────────────────────────────────
// Escalation levels
// ─────────────────────────────────────────────────────────────────────────────

const (
	// LevelNone is the initial escalation level of every finding.
	LevelNone = 0
	// LevelOne is the first escalation tier (management notified).
	LevelOne = 1
	// LevelTwo is the final escalation tier (critical breach).
	LevelTwo = 2
	// MaxLevel is the highest level the engine will ever record.
	MaxLevel = LevelTwo
)

// ─────────────────────────────────────────────────────────────────────────────
// Finding aggregate
// ─────────────────────────────────────────────────────────────────────────────

// Finding is a single trackable unit under SLA.  The engine mutates exactly
// four fields (EscalationLevel, WarningSentAt, LastEscalatedAt and the audit
// trail); everything else is owned by the surrounding record system and the
// engine never creates or deletes findings.
type Finding struct {
	ID             common.ID      `json:"id"`
	Reference      string         `json:"reference"`
	TenantID       common.TenantID `json:"tenant_id"`
	Classification Classification `json:"classification"`
	Status         Status         `json:"status"`

	// DueDate is nullable; findings without a due date are never evaluated.
	DueDate *time.Time `json:"due_date,omitempty"`

	// EscalationLevel starts at 0 and is monotonically non-decreasing, max 2.
	EscalationLevel int `json:"escalation_level"`

	// WarningSentAt is set at most once, when the pre-due warning is dispatched.
	WarningSentAt *time.Time `json:"warning_sent_at,omitempty"`

	// LastEscalatedAt is updated on every escalation level increase.
	LastEscalatedAt *time.Time `json:"last_escalated_at,omitempty"`

	// CreatedBy references the owner profile that receives warnings.
	CreatedBy common.ID `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Eligible reports whether the finding qualifies for SLA evaluation at all:
// non-terminal status and a due date on record.
func (f *Finding) Eligible() bool {
	return !f.Status.IsTerminal() && f.DueDate != nil
}

// WarningSent reports whether the one-shot warning marker is set.
func (f *Finding) WarningSent() bool {
	return f.WarningSentAt != nil
}

// ValidateLevel returns an error when lvl is not a legal escalation target
// for the finding: levels only move upward and never past MaxLevel.
func (f *Finding) ValidateLevel(lvl int) error {
	if lvl <= f.EscalationLevel || lvl > MaxLevel {
		return errors.New(errors.ErrCodeFindingInvalidStatus,
			"escalation level must increase monotonically").
			WithDetail(f.Reference)
	}
	return nil
}

//Personal.AI order the ending
