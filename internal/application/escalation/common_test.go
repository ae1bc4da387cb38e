package escalation

import (
	"context"
	"sync"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/policy"
	"github.com/turtacn/SLA-Sentinel/internal/domain/profile"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-memory repositories
// ─────────────────────────────────────────────────────────────────────────────

type memFindingRepo struct {
	mu       sync.Mutex
	findings map[common.ID]*finding.Finding
	notes    map[common.ID][]string

	failMarkWarning     bool
	failRaiseEscalation bool
}

func newMemFindingRepo(fs ...*finding.Finding) *memFindingRepo {
	r := &memFindingRepo{
		findings: make(map[common.ID]*finding.Finding),
		notes:    make(map[common.ID][]string),
	}
	for _, f := range fs {
		r.findings[f.ID] = f
	}
	return r
}

func (r *memFindingRepo) ListOpenWithDueDates(context.Context) ([]*finding.Finding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*finding.Finding, 0, len(r.findings))
	for _, f := range r.findings {
		if f.Eligible() {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFindingRepo) MarkWarningSent(_ context.Context, id common.ID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failMarkWarning {
		return errors.New(errors.ErrCodeDatabaseError, "injected")
	}
	f, ok := r.findings[id]
	if !ok {
		return errors.NotFound("finding")
	}
	if f.WarningSentAt != nil {
		return errors.New(errors.ErrCodeConflict, "warning already sent")
	}
	stamp := at
	f.WarningSentAt = &stamp
	return nil
}

func (r *memFindingRepo) RaiseEscalation(_ context.Context, id common.ID, level int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failRaiseEscalation {
		return errors.New(errors.ErrCodeDatabaseError, "injected")
	}
	f, ok := r.findings[id]
	if !ok {
		return errors.NotFound("finding")
	}
	if level <= f.EscalationLevel {
		return errors.New(errors.ErrCodeConflict, "level would not increase")
	}
	f.EscalationLevel = level
	stamp := at
	f.LastEscalatedAt = &stamp
	return nil
}

func (r *memFindingRepo) AppendAuditNote(_ context.Context, id common.ID, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[id] = append(r.notes[id], note)
	return nil
}

type memPolicyRepo struct {
	rows []*policy.SLAPolicy
	err  error
}

func (r *memPolicyRepo) ListActive(context.Context) ([]*policy.SLAPolicy, error) {
	return r.rows, r.err
}

func (r *memPolicyRepo) FindByTenantAndClassification(context.Context, common.TenantID, finding.Classification) (*policy.SLAPolicy, error) {
	return nil, errors.NotFound("policy")
}

func (r *memPolicyRepo) Save(context.Context, *policy.SLAPolicy) error { return nil }
func (r *memPolicyRepo) SoftDelete(context.Context, common.ID) error   { return nil }

type memProfileRepo struct {
	byID       map[common.ID]*profile.Profile
	management map[common.TenantID][]*profile.Profile
	listErr    error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{
		byID:       make(map[common.ID]*profile.Profile),
		management: make(map[common.TenantID][]*profile.Profile),
	}
}

func (r *memProfileRepo) FindByID(_ context.Context, id common.ID) (*profile.Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("profile")
	}
	return p, nil
}

func (r *memProfileRepo) ListActiveByTenantRoles(_ context.Context, tenantID common.TenantID, _ []profile.Role) ([]*profile.Profile, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.management[tenantID], nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Channel fakes
// ─────────────────────────────────────────────────────────────────────────────

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (s *fakeEmail) SendEmail(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type sentText struct {
	Phone string
	Body  string
}

type fakeText struct {
	mu   sync.Mutex
	sent []sentText
	err  error
}

func (s *fakeText) SendText(_ context.Context, phone, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentText{Phone: phone, Body: body})
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Event publisher fake
// ─────────────────────────────────────────────────────────────────────────────

type capturedEvent struct {
	Kind        string
	Reference   string
	Level       int
	OverdueDays int
}

type fakePublisher struct {
	mu     sync.Mutex
	events []capturedEvent
	err    error
}

func (p *fakePublisher) PublishWarningSent(_ context.Context, f *finding.Finding) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, capturedEvent{Kind: "warning", Reference: f.Reference})
	return nil
}

func (p *fakePublisher) PublishEscalated(_ context.Context, f *finding.Finding, level, overdueDays int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, capturedEvent{
		Kind: "escalated", Reference: f.Reference, Level: level, OverdueDays: overdueDays,
	})
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Builders
// ─────────────────────────────────────────────────────────────────────────────

func testFinding(ref string, c finding.Classification, due time.Time) *finding.Finding {
	return &finding.Finding{
		ID:             common.NewID(),
		Reference:      ref,
		TenantID:       "acme",
		Classification: c,
		Status:         finding.StatusOpen,
		DueDate:        &due,
		CreatedBy:      common.ID("owner-1"),
	}
}

func testOwner() *profile.Profile {
	return &profile.Profile{
		ID:                common.ID("owner-1"),
		TenantID:          "acme",
		FullName:          "Owner One",
		Email:             "owner@acme.example",
		Phone:             "+966500000001",
		PreferredLanguage: profile.LanguageEnglish,
		Role:              profile.RoleTechnician,
		Active:            true,
	}
}

func testManager(id, email string, lang profile.Language) *profile.Profile {
	return &profile.Profile{
		ID:                common.ID(id),
		TenantID:          "acme",
		FullName:          "Manager " + id,
		Email:             email,
		PreferredLanguage: lang,
		Role:              profile.RoleHSEManager,
		Active:            true,
	}
}

//Personal.AI order the ending
