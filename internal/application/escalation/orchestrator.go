package escalation

import (
	"context"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/policy"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// RunSummary is the aggregate result of one batch run.  The JSON field names
// are part of the trigger contract.
type RunSummary struct {
	FindingsChecked        int `json:"findingsChecked"`
	WarningsSent           int `json:"warningsSent"`
	EscalationsSent        int `json:"escalationsSent"`
	EscalationsLevel1      int `json:"escalationsLevel1"`
	EscalationsLevel2      int `json:"escalationsLevel2"`
	UnresolvableRecipients int `json:"unresolvableRecipients"`
	Failures               int `json:"failures"`
}

// Orchestrator runs the full pipeline over every eligible finding: resolve
// policy, evaluate the due date, compose and dispatch notifications, commit
// markers, publish events.  Items are evaluated independently; one bad
// finding increments Failures and never takes the run down.
type Orchestrator struct {
	findings   finding.Repository
	policies   policy.Repository
	defaults   policy.DefaultTable
	recipients *RecipientResolver
	dispatcher *Dispatcher
	transition *Transitioner
	events     EventPublisher
	log        logging.Logger
	now        func() time.Time
}

// NewOrchestrator wires the pipeline.  events may be nil (replaced with a
// NopPublisher); now may be nil (replaced with time.Now).
func NewOrchestrator(
	findings finding.Repository,
	policies policy.Repository,
	defaults policy.DefaultTable,
	recipients *RecipientResolver,
	dispatcher *Dispatcher,
	transition *Transitioner,
	events EventPublisher,
	log logging.Logger,
) *Orchestrator {
	if events == nil {
		events = NopPublisher{}
	}
	return &Orchestrator{
		findings:   findings,
		policies:   policies,
		defaults:   defaults,
		recipients: recipients,
		dispatcher: dispatcher,
		transition: transition,
		events:     events,
		log:        log,
		now:        time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Run executes one batch pass and returns the summary.  It fails outright
// only when the candidate set or the policy snapshot cannot be loaded;
// everything after that is per-item.
func (o *Orchestrator) Run(ctx context.Context) (*RunSummary, error) {
	rows, err := o.policies.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodePolicyLoadFailed, "loading policy snapshot")
	}
	resolver := policy.NewResolver(rows, o.defaults)

	candidates, err := o.findings.ListOpenWithDueDates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeFindingLoadFailed, "loading candidate findings")
	}

	now := o.now()
	summary := &RunSummary{}
	for _, f := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, errors.Wrap(err, errors.ErrCodeRunAborted, "batch run interrupted")
		}
		if !f.Eligible() {
			continue
		}
		summary.FindingsChecked++

		ev := Evaluate(now, f, resolver.Resolve(f.TenantID, f.Classification))
		switch ev.Action {
		case ActionWarn:
			o.processWarning(ctx, f, ev, now, summary)
		case ActionEscalate:
			o.processEscalation(ctx, f, ev, now, summary)
		}
	}

	o.log.Info("escalation run complete",
		logging.Int("findings_checked", summary.FindingsChecked),
		logging.Int("warnings_sent", summary.WarningsSent),
		logging.Int("escalations_sent", summary.EscalationsSent),
		logging.Int("unresolvable_recipients", summary.UnresolvableRecipients),
		logging.Int("failures", summary.Failures))
	return summary, nil
}

// processWarning handles one finding inside the warning window.  If the
// owner cannot be resolved, nothing commits: the finding stays pending and
// every later run retries until the profile is fixed.
func (o *Orchestrator) processWarning(ctx context.Context, f *finding.Finding, ev Evaluation, now time.Time, summary *RunSummary) {
	owner, err := o.recipients.ResolveOwner(ctx, f)
	if err != nil {
		summary.UnresolvableRecipients++
		o.log.Warn("warning recipient unresolvable, will retry next run",
			logging.String("finding", f.Reference),
			logging.Err(err))
		return
	}

	msg := Compose(KindWarning, f, ev, owner.PreferredLanguage)
	out := o.dispatcher.Dispatch(ctx, owner, msg)

	// The marker commits after the dispatch attempt even when every channel
	// failed: the attempt is the one-shot event, not the delivery.
	if err := o.transition.CommitWarning(ctx, f, now, out); err != nil {
		summary.Failures++
		o.log.Error("warning marker not committed",
			logging.String("finding", f.Reference),
			logging.Err(err))
		return
	}
	summary.WarningsSent++

	if err := o.events.PublishWarningSent(ctx, f); err != nil {
		o.log.Warn("warning event not published",
			logging.String("finding", f.Reference),
			logging.Err(err))
	}
}

// processEscalation handles one overdue finding.  An empty management list
// still commits the level raise so the ratchet keeps moving; only a commit
// failure counts as a run failure.
func (o *Orchestrator) processEscalation(ctx context.Context, f *finding.Finding, ev Evaluation, now time.Time, summary *RunSummary) {
	recipients, err := o.recipients.ResolveManagement(ctx, f)
	if err != nil {
		summary.Failures++
		o.log.Error("management recipients not loaded",
			logging.String("finding", f.Reference),
			logging.Err(err))
		return
	}
	if len(recipients) == 0 {
		o.log.Warn("no management recipients configured, escalating silently",
			logging.String("finding", f.Reference),
			logging.String("tenant", f.TenantID.String()))
	}

	kind := KindForEscalation(ev.TargetLevel)
	for _, p := range recipients {
		msg := Compose(kind, f, ev, p.PreferredLanguage)
		o.dispatcher.Dispatch(ctx, p, msg)
	}

	if err := o.transition.CommitEscalation(ctx, f, ev.TargetLevel, ev.OverdueDays, now); err != nil {
		summary.Failures++
		o.log.Error("escalation not committed",
			logging.String("finding", f.Reference),
			logging.Int("target_level", ev.TargetLevel),
			logging.Err(err))
		return
	}
	summary.EscalationsSent++
	switch ev.TargetLevel {
	case finding.LevelOne:
		summary.EscalationsLevel1++
	case finding.LevelTwo:
		summary.EscalationsLevel2++
	}

	if err := o.events.PublishEscalated(ctx, f, ev.TargetLevel, ev.OverdueDays); err != nil {
		o.log.Warn("escalation event not published",
			logging.String("finding", f.Reference),
			logging.Err(err))
	}
}

//Personal.AI order the ending
