// Package policy defines tenant-configurable SLA policies, the hard-coded
// default policy table, and the pure resolver that turns (tenant,
// classification) into the effective escalation windows for a batch run.
package policy

import (
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// SLAPolicy row
// ─────────────────────────────────────────────────────────────────────────────

// SLAPolicy is one tenant override row, keyed by (tenant, classification).
// Rows are soft-deleted; a deleted row never participates in resolution.
type SLAPolicy struct {
	ID             common.ID              `json:"id"`
	TenantID       common.TenantID        `json:"tenant_id"`
	Classification finding.Classification `json:"classification"`

	// TargetDays is the informational SLA target for reporting; it does not
	// drive notifications.
	TargetDays int `json:"target_days"`

	// WarningLeadDays is the number of days before the due date during which
	// a single pre-emptive warning is sent to the finding's owner.
	WarningLeadDays int `json:"warning_lead_days"`

	// EscalationLeadDays is the number of days overdue before the first
	// escalation to management.
	EscalationLeadDays int `json:"escalation_lead_days"`

	// SecondEscalationLeadDays is the number of days overdue before the
	// second (critical) escalation.  Nullable — falls back to the default
	// table entry for the classification when unset.
	SecondEscalationLeadDays *int `json:"second_escalation_lead_days,omitempty"`

	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Deleted reports whether the row has been soft-deleted.
func (p *SLAPolicy) Deleted() bool { return p.DeletedAt != nil }

// Validate enforces the window invariant:
// secondEscalationLeadDays (if present) > escalationLeadDays > 0, and
// warningLeadDays >= 0.
func (p *SLAPolicy) Validate() error {
	if p.WarningLeadDays < 0 {
		return errors.New(errors.ErrCodePolicyInvalidWindows,
			"warning_lead_days must not be negative")
	}
	if p.EscalationLeadDays <= 0 {
		return errors.New(errors.ErrCodePolicyInvalidWindows,
			"escalation_lead_days must be positive")
	}
	if p.SecondEscalationLeadDays != nil && *p.SecondEscalationLeadDays <= p.EscalationLeadDays {
		return errors.New(errors.ErrCodePolicyInvalidWindows,
			"second_escalation_lead_days must exceed escalation_lead_days")
	}
	if !p.Classification.IsKnown() {
		return errors.New(errors.ErrCodeValidation,
			"unknown classification").WithDetail(string(p.Classification))
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Effective policy — what the evaluator actually consumes
// ─────────────────────────────────────────────────────────────────────────────

// Source records where an effective policy came from.
type Source string

const (
	SourceTenant  Source = "tenant"
	SourceDefault Source = "default"
)

// Effective is the fully-resolved policy handed to the due-date evaluator.
// Every field is concrete; nullable override fields have already been
// defaulted away.
type Effective struct {
	Classification           finding.Classification `json:"classification"`
	TargetDays               int                    `json:"target_days"`
	WarningLeadDays          int                    `json:"warning_lead_days"`
	EscalationLeadDays       int                    `json:"escalation_lead_days"`
	SecondEscalationLeadDays int                    `json:"second_escalation_lead_days"`
	Source                   Source                 `json:"source"`
}

//Personal.AI order the ending
