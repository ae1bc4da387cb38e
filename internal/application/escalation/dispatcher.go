package escalation

import (
	"context"

	"github.com/turtacn/SLA-Sentinel/internal/domain/profile"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Channel ports
// ─────────────────────────────────────────────────────────────────────────────

// EmailSender delivers the email channel.  Implementations live under
// infrastructure/notify.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// TextSender delivers the WhatsApp channel.
type TextSender interface {
	SendText(ctx context.Context, phone, body string) error
}

// DispatchOutcome reports, per channel, what happened for one recipient.
// A channel that was never attempted (no phone on file) is distinct from a
// channel that failed.
type DispatchOutcome struct {
	EmailOK     bool
	TextOK      bool
	TextSkipped bool
}

// AnyDelivered reports whether at least one channel got through.
func (o DispatchOutcome) AnyDelivered() bool { return o.EmailOK || o.TextOK }

// ─────────────────────────────────────────────────────────────────────────────
// Dispatcher
// ─────────────────────────────────────────────────────────────────────────────

// Dispatcher fans one message out to a recipient's channels.  Email is always
// attempted; WhatsApp only when the profile has a phone on file.  Channel
// failures are logged and absorbed here: a gateway outage must never abort
// the batch or leave a per-item error behind.
type Dispatcher struct {
	email EmailSender
	text  TextSender
	log   logging.Logger
}

// NewDispatcher wires the dispatcher.  text may be nil when the WhatsApp
// gateway is not configured; recipients with phones then count as skipped.
func NewDispatcher(email EmailSender, text TextSender, log logging.Logger) *Dispatcher {
	return &Dispatcher{email: email, text: text, log: log}
}

// Dispatch sends msg to one recipient on every applicable channel and
// reports the per-channel outcome.  It never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, p *profile.Profile, msg Message) DispatchOutcome {
	out := DispatchOutcome{}

	if err := d.email.SendEmail(ctx, p.Email, msg.Subject, msg.EmailBody); err != nil {
		d.log.Warn("email delivery failed",
			logging.String("recipient", p.Email),
			logging.Err(err))
	} else {
		out.EmailOK = true
	}

	if !p.HasPhone() || d.text == nil {
		out.TextSkipped = true
		return out
	}
	if err := d.text.SendText(ctx, p.Phone, msg.TextBody); err != nil {
		d.log.Warn("whatsapp delivery failed",
			logging.String("recipient", p.Phone),
			logging.Err(err))
	} else {
		out.TextOK = true
	}
	return out
}

//Personal.AI order the ending
