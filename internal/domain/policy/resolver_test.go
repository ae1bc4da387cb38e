package policy

import (
	"testing"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

func intPtr(v int) *int { return &v }

func TestResolveTenantOverrideWins(t *testing.T) {
	tenant := common.TenantID("acme")
	rows := []*SLAPolicy{
		{
			TenantID:                 tenant,
			Classification:           finding.ClassificationMajorNC,
			TargetDays:               10,
			WarningLeadDays:          4,
			EscalationLeadDays:       3,
			SecondEscalationLeadDays: intPtr(6),
		},
	}
	r := NewResolver(rows, Defaults())

	eff := r.Resolve(tenant, finding.ClassificationMajorNC)
	if eff.Source != SourceTenant {
		t.Fatalf("source = %s, want tenant", eff.Source)
	}
	if eff.WarningLeadDays != 4 || eff.EscalationLeadDays != 3 || eff.SecondEscalationLeadDays != 6 {
		t.Errorf("unexpected windows: %+v", eff)
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	r := NewResolver(nil, Defaults())

	eff := r.Resolve(common.TenantID("nobody"), finding.ClassificationCriticalNC)
	if eff.Source != SourceDefault {
		t.Fatalf("source = %s, want default", eff.Source)
	}
	if eff.TargetDays != 2 || eff.WarningLeadDays != 1 || eff.SecondEscalationLeadDays != 2 {
		t.Errorf("unexpected default windows: %+v", eff)
	}
}

func TestResolveOverrideScopedToTenantAndClassification(t *testing.T) {
	tenant := common.TenantID("acme")
	rows := []*SLAPolicy{
		{
			TenantID:           tenant,
			Classification:     finding.ClassificationMinorNC,
			TargetDays:         20,
			WarningLeadDays:    5,
			EscalationLeadDays: 4,
		},
	}
	r := NewResolver(rows, Defaults())

	// Other classification of the same tenant stays on defaults.
	if eff := r.Resolve(tenant, finding.ClassificationMajorNC); eff.Source != SourceDefault {
		t.Errorf("major_nc should resolve to default, got %s", eff.Source)
	}
	// Same classification of another tenant stays on defaults.
	if eff := r.Resolve(common.TenantID("other"), finding.ClassificationMinorNC); eff.Source != SourceDefault {
		t.Errorf("other tenant should resolve to default, got %s", eff.Source)
	}
}

func TestResolveNilSecondWindowDefaulted(t *testing.T) {
	tenant := common.TenantID("acme")
	rows := []*SLAPolicy{
		{
			TenantID:           tenant,
			Classification:     finding.ClassificationObservation,
			TargetDays:         45,
			WarningLeadDays:    7,
			EscalationLeadDays: 6,
			// SecondEscalationLeadDays left nil.
		},
	}
	r := NewResolver(rows, Defaults())

	eff := r.Resolve(tenant, finding.ClassificationObservation)
	if eff.SecondEscalationLeadDays != 10 {
		t.Errorf("nil second window should default to 10, got %d", eff.SecondEscalationLeadDays)
	}
	if eff.EscalationLeadDays != 6 {
		t.Errorf("first window should keep the override, got %d", eff.EscalationLeadDays)
	}
}

func TestResolveUnknownClassificationUsesObservation(t *testing.T) {
	r := NewResolver(nil, Defaults())

	eff := r.Resolve(common.TenantID("acme"), finding.Classification("mystery"))
	want := Defaults()[finding.ClassificationObservation]
	if eff.TargetDays != want.TargetDays || eff.WarningLeadDays != want.WarningLeadDays {
		t.Errorf("unknown classification should fall back to observation, got %+v", eff)
	}
}

func TestResolveSkipsDeletedAndInvalidRows(t *testing.T) {
	tenant := common.TenantID("acme")
	now := time.Now()
	rows := []*SLAPolicy{
		{
			TenantID:           tenant,
			Classification:     finding.ClassificationMajorNC,
			TargetDays:         10,
			WarningLeadDays:    4,
			EscalationLeadDays: 3,
			DeletedAt:          &now,
		},
		{
			TenantID:           tenant,
			Classification:     finding.ClassificationMinorNC,
			TargetDays:         10,
			WarningLeadDays:    4,
			EscalationLeadDays: 0, // invalid window
		},
		nil,
	}
	r := NewResolver(rows, Defaults())

	if eff := r.Resolve(tenant, finding.ClassificationMajorNC); eff.Source != SourceDefault {
		t.Errorf("deleted row must not participate, got source %s", eff.Source)
	}
	if eff := r.Resolve(tenant, finding.ClassificationMinorNC); eff.Source != SourceDefault {
		t.Errorf("invalid row must not participate, got source %s", eff.Source)
	}
}

//Personal.AI order the ending
