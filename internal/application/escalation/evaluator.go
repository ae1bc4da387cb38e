// Package escalation implements the batch SLA pipeline: evaluate each open
// finding against its effective policy, compose and dispatch notifications,
// and commit the state transition markers that keep every notification
// at-most-once.
package escalation

import (
	"math"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/policy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Temporal state
// ─────────────────────────────────────────────────────────────────────────────

// TemporalState is where a finding sits relative to its due date at
// evaluation time.
type TemporalState string

const (
	// StateOnTrack — due date further out than the warning window.
	StateOnTrack TemporalState = "on_track"
	// StateWarningWindow — inside the pre-due warning window.
	StateWarningWindow TemporalState = "warning_window"
	// StateOverdue — past due, but not yet past the second escalation window.
	StateOverdue TemporalState = "overdue"
	// StateCriticallyOverdue — past due by at least the second escalation window.
	StateCriticallyOverdue TemporalState = "critically_overdue"
)

// Action is what the pipeline should do for a finding this run.
type Action string

const (
	ActionNone     Action = "none"
	ActionWarn     Action = "warn"
	ActionEscalate Action = "escalate"
)

// Evaluation is the evaluator's verdict for one finding.
type Evaluation struct {
	State TemporalState

	// DaysDelta is the signed whole-day distance to the due date, rounded
	// toward the due date (ceiling of the hour difference over 24).  Positive
	// means the due date is ahead; zero or negative means it has passed.
	DaysDelta int

	// OverdueDays is max(0, -DaysDelta), for message text and audit notes.
	OverdueDays int

	Action Action

	// TargetLevel is the escalation level to raise to when Action is
	// ActionEscalate; zero otherwise.
	TargetLevel int
}

// ─────────────────────────────────────────────────────────────────────────────
// Evaluator
// ─────────────────────────────────────────────────────────────────────────────

// daysUntil computes the signed whole-day delta from now to due using ceiling
// rounding: a due date 36 hours ahead reads as 2 days out, a due date 36 hours
// past reads as 1 day overdue.
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// Evaluate decides the temporal state and the pending action for a single
// finding under its effective policy.  Precedence, most urgent first:
// second escalation, first escalation, warning, nothing.  The one-shot
// markers already on the finding (warning sent, current escalation level)
// suppress repeat actions, so running the batch twice is harmless.
func Evaluate(now time.Time, f *finding.Finding, pol policy.Effective) Evaluation {
	ev := Evaluation{Action: ActionNone}
	if !f.Eligible() {
		ev.State = StateOnTrack
		return ev
	}

	ev.DaysDelta = daysUntil(now, *f.DueDate)

	if ev.DaysDelta > 0 {
		if ev.DaysDelta > pol.WarningLeadDays {
			ev.State = StateOnTrack
			return ev
		}
		ev.State = StateWarningWindow
		if !f.WarningSent() {
			ev.Action = ActionWarn
		}
		return ev
	}

	ev.OverdueDays = -ev.DaysDelta
	if ev.OverdueDays >= pol.SecondEscalationLeadDays {
		ev.State = StateCriticallyOverdue
	} else {
		ev.State = StateOverdue
	}

	switch {
	case ev.OverdueDays >= pol.SecondEscalationLeadDays && f.EscalationLevel < finding.LevelTwo:
		ev.Action = ActionEscalate
		ev.TargetLevel = finding.LevelTwo
	case ev.OverdueDays >= pol.EscalationLeadDays && f.EscalationLevel < finding.LevelOne:
		ev.Action = ActionEscalate
		ev.TargetLevel = finding.LevelOne
	}
	return ev
}

//Personal.AI order the ending
