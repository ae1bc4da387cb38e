package policy

import (
	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// Resolver answers "which windows apply to this finding" from an immutable
// snapshot of tenant policies loaded once per batch run.  Resolve is a pure
// function of its two inputs plus that snapshot — there is never a per-item
// database round-trip, and it never fails: every lookup lands on a usable
// policy via the default table.
type Resolver struct {
	overrides map[common.TenantID]map[finding.Classification]Effective
	defaults  DefaultTable
}

// NewResolver builds a Resolver from the active policy rows of all tenants.
// Soft-deleted rows and rows that fail window validation are skipped — a
// malformed override must degrade to the default, not poison the run.
// Nullable second-escalation windows are defaulted here, once, so the
// evaluator only ever sees concrete numbers.
func NewResolver(rows []*SLAPolicy, defaults DefaultTable) *Resolver {
	r := &Resolver{
		overrides: make(map[common.TenantID]map[finding.Classification]Effective),
		defaults:  defaults,
	}
	for _, row := range rows {
		if row == nil || row.Deleted() || row.Validate() != nil {
			continue
		}
		eff := Effective{
			Classification:     row.Classification,
			TargetDays:         row.TargetDays,
			WarningLeadDays:    row.WarningLeadDays,
			EscalationLeadDays: row.EscalationLeadDays,
			Source:             SourceTenant,
		}
		if row.SecondEscalationLeadDays != nil {
			eff.SecondEscalationLeadDays = *row.SecondEscalationLeadDays
		} else {
			eff.SecondEscalationLeadDays = r.defaultFor(row.Classification).SecondEscalationLeadDays
		}
		byClass, ok := r.overrides[row.TenantID]
		if !ok {
			byClass = make(map[finding.Classification]Effective)
			r.overrides[row.TenantID] = byClass
		}
		byClass[row.Classification] = eff
	}
	return r
}

// Resolve returns the effective policy for a tenant and classification.
// Lookup order: active tenant override for the exact classification, then the
// default table entry, then the observation default for unrecognised
// classifications.
func (r *Resolver) Resolve(tenantID common.TenantID, c finding.Classification) Effective {
	if byClass, ok := r.overrides[tenantID]; ok {
		if eff, ok := byClass[c]; ok {
			return eff
		}
	}
	return r.defaultFor(c)
}

func (r *Resolver) defaultFor(c finding.Classification) Effective {
	if eff, ok := r.defaults[c]; ok {
		return eff
	}
	return r.defaults[FallbackClassification]
}

//Personal.AI order the ending
