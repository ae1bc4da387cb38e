package policy

import (
	"testing"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

func validPolicy() *SLAPolicy {
	return &SLAPolicy{
		Classification:     finding.ClassificationMajorNC,
		TargetDays:         7,
		WarningLeadDays:    2,
		EscalationLeadDays: 2,
	}
}

func TestPolicyValidateAccepts(t *testing.T) {
	p := validPolicy()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid policy rejected: %v", err)
	}
	p.SecondEscalationLeadDays = intPtr(4)
	if err := p.Validate(); err != nil {
		t.Fatalf("valid policy with second window rejected: %v", err)
	}
}

func TestPolicyValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SLAPolicy)
		code   errors.ErrorCode
	}{
		{"negative warning lead", func(p *SLAPolicy) { p.WarningLeadDays = -1 }, errors.ErrCodePolicyInvalidWindows},
		{"zero escalation lead", func(p *SLAPolicy) { p.EscalationLeadDays = 0 }, errors.ErrCodePolicyInvalidWindows},
		{"second not past first", func(p *SLAPolicy) { p.SecondEscalationLeadDays = intPtr(2) }, errors.ErrCodePolicyInvalidWindows},
		{"unknown classification", func(p *SLAPolicy) { p.Classification = "bogus" }, errors.ErrCodeValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := validPolicy()
			c.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected rejection")
			}
			if !errors.IsCode(err, c.code) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), c.code)
			}
		})
	}
}

func TestPolicyDeleted(t *testing.T) {
	p := validPolicy()
	if p.Deleted() {
		t.Error("fresh row should not read as deleted")
	}
	now := time.Now()
	p.DeletedAt = &now
	if !p.Deleted() {
		t.Error("stamped row should read as deleted")
	}
}

//Personal.AI order the ending
