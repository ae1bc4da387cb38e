package escalation

import (
	"fmt"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/profile"
)

// ─────────────────────────────────────────────────────────────────────────────
// Event kinds
// ─────────────────────────────────────────────────────────────────────────────

// EventKind identifies which of the three notification templates applies.
type EventKind string

const (
	KindWarning      EventKind = "warning"
	KindEscalationL1 EventKind = "escalation_l1"
	KindEscalationL2 EventKind = "escalation_l2"
)

// KindForEscalation maps an escalation target level to its event kind.
func KindForEscalation(level int) EventKind {
	if level >= finding.LevelTwo {
		return KindEscalationL2
	}
	return KindEscalationL1
}

// Subject markers for the two escalation tiers.  These stay in English in
// both languages so that filtering rules and audit greps match regardless of
// recipient locale.
const (
	MarkerEscalated = "ESCALATED"
	MarkerCritical  = "CRITICAL"
)

// Message is one rendered notification: a subject plus an email body and a
// short plain-text body for the WhatsApp channel.
type Message struct {
	Subject   string
	EmailBody string
	TextBody  string
}

// ─────────────────────────────────────────────────────────────────────────────
// Composer
// ─────────────────────────────────────────────────────────────────────────────

// Compose renders the notification for a finding in the recipient's preferred
// language.  Unknown languages render as English.
func Compose(kind EventKind, f *finding.Finding, ev Evaluation, lang profile.Language) Message {
	if lang.Normalize() == profile.LanguageArabic {
		return composeArabic(kind, f, ev)
	}
	return composeEnglish(kind, f, ev)
}

func composeEnglish(kind EventKind, f *finding.Finding, ev Evaluation) Message {
	due := "-"
	if f.DueDate != nil {
		due = f.DueDate.Format("2006-01-02")
	}
	switch kind {
	case KindWarning:
		subject := fmt.Sprintf("Reminder: finding %s is due in %s", f.Reference, enDays(ev.DaysDelta))
		body := fmt.Sprintf(
			"Finding %s (%s) is due on %s, in %s.\n\n"+
				"Please resolve it before the due date to avoid escalation.",
			f.Reference, f.Classification, due, enDays(ev.DaysDelta))
		text := fmt.Sprintf("Reminder: finding %s is due in %s (due %s).",
			f.Reference, enDays(ev.DaysDelta), due)
		return Message{Subject: subject, EmailBody: body, TextBody: text}

	case KindEscalationL2:
		subject := fmt.Sprintf("%s: finding %s is %s overdue", MarkerCritical, f.Reference, enDays(ev.OverdueDays))
		body := fmt.Sprintf(
			"Finding %s (%s) was due on %s and is now %s overdue.\n\n"+
				"This is a Level 2 escalation. Immediate management action is required.",
			f.Reference, f.Classification, due, enDays(ev.OverdueDays))
		text := fmt.Sprintf("%s: finding %s is %s overdue. Level 2 escalation.",
			MarkerCritical, f.Reference, enDays(ev.OverdueDays))
		return Message{Subject: subject, EmailBody: body, TextBody: text}

	default: // KindEscalationL1
		subject := fmt.Sprintf("%s: finding %s is %s overdue", MarkerEscalated, f.Reference, enDays(ev.OverdueDays))
		body := fmt.Sprintf(
			"Finding %s (%s) was due on %s and is now %s overdue.\n\n"+
				"This is a Level 1 escalation. Please follow up with the finding owner.",
			f.Reference, f.Classification, due, enDays(ev.OverdueDays))
		text := fmt.Sprintf("%s: finding %s is %s overdue. Level 1 escalation.",
			MarkerEscalated, f.Reference, enDays(ev.OverdueDays))
		return Message{Subject: subject, EmailBody: body, TextBody: text}
	}
}

func composeArabic(kind EventKind, f *finding.Finding, ev Evaluation) Message {
	due := "-"
	if f.DueDate != nil {
		due = f.DueDate.Format("2006-01-02")
	}
	switch kind {
	case KindWarning:
		subject := fmt.Sprintf("تذكير: الملاحظة %s تستحق خلال %s", f.Reference, arDays(ev.DaysDelta))
		body := fmt.Sprintf(
			"الملاحظة %s (%s) تستحق بتاريخ %s، خلال %s.\n\n"+
				"يرجى معالجتها قبل تاريخ الاستحقاق لتجنب التصعيد.",
			f.Reference, f.Classification, due, arDays(ev.DaysDelta))
		text := fmt.Sprintf("تذكير: الملاحظة %s تستحق خلال %s (تاريخ الاستحقاق %s).",
			f.Reference, arDays(ev.DaysDelta), due)
		return Message{Subject: subject, EmailBody: body, TextBody: text}

	case KindEscalationL2:
		subject := fmt.Sprintf("%s: الملاحظة %s متأخرة %s", MarkerCritical, f.Reference, arDays(ev.OverdueDays))
		body := fmt.Sprintf(
			"الملاحظة %s (%s) كانت تستحق بتاريخ %s وهي الآن متأخرة %s.\n\n"+
				"هذا تصعيد من المستوى الثاني. مطلوب إجراء إداري فوري.",
			f.Reference, f.Classification, due, arDays(ev.OverdueDays))
		text := fmt.Sprintf("%s: الملاحظة %s متأخرة %s. تصعيد من المستوى الثاني.",
			MarkerCritical, f.Reference, arDays(ev.OverdueDays))
		return Message{Subject: subject, EmailBody: body, TextBody: text}

	default: // KindEscalationL1
		subject := fmt.Sprintf("%s: الملاحظة %s متأخرة %s", MarkerEscalated, f.Reference, arDays(ev.OverdueDays))
		body := fmt.Sprintf(
			"الملاحظة %s (%s) كانت تستحق بتاريخ %s وهي الآن متأخرة %s.\n\n"+
				"هذا تصعيد من المستوى الأول. يرجى المتابعة مع مالك الملاحظة.",
			f.Reference, f.Classification, due, arDays(ev.OverdueDays))
		text := fmt.Sprintf("%s: الملاحظة %s متأخرة %s. تصعيد من المستوى الأول.",
			MarkerEscalated, f.Reference, arDays(ev.OverdueDays))
		return Message{Subject: subject, EmailBody: body, TextBody: text}
	}
}

func enDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func arDays(n int) string {
	switch n {
	case 1:
		return "يوم واحد"
	case 2:
		return "يومين"
	default:
		return fmt.Sprintf("%d أيام", n)
	}
}

//Personal.AI order the ending
