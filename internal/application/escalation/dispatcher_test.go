package escalation

import (
	"context"
	"testing"

	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/internal/testutil"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

func TestDispatchBothChannels(t *testing.T) {
	email, text := &fakeEmail{}, &fakeText{}
	d := NewDispatcher(email, text, logging.NewNopLogger())

	out := d.Dispatch(context.Background(), testOwner(), Message{
		Subject: "s", EmailBody: "eb", TextBody: "tb",
	})
	if !out.EmailOK || !out.TextOK || out.TextSkipped {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if len(email.sent) != 1 || email.sent[0].To != "owner@acme.example" {
		t.Errorf("email not delivered: %+v", email.sent)
	}
	if len(text.sent) != 1 || text.sent[0].Body != "tb" {
		t.Errorf("text not delivered: %+v", text.sent)
	}
}

func TestDispatchSkipsTextWithoutPhone(t *testing.T) {
	email, text := &fakeEmail{}, &fakeText{}
	d := NewDispatcher(email, text, logging.NewNopLogger())

	p := testOwner()
	p.Phone = ""
	out := d.Dispatch(context.Background(), p, Message{Subject: "s"})
	if !out.TextSkipped || out.TextOK {
		t.Errorf("no-phone recipient should skip the text channel: %+v", out)
	}
	if len(text.sent) != 0 {
		t.Error("text gateway must not be called")
	}
}

func TestDispatchSwallowsChannelFailures(t *testing.T) {
	email := &fakeEmail{err: errors.New(errors.ErrCodeGatewayUnavailable, "down")}
	text := &fakeText{err: errors.New(errors.ErrCodeGatewayUnavailable, "down")}
	log := testutil.NewMockLogger()
	d := NewDispatcher(email, text, log)

	out := d.Dispatch(context.Background(), testOwner(), Message{Subject: "s"})
	if out.EmailOK || out.TextOK {
		t.Errorf("failed channels must not report ok: %+v", out)
	}
	if out.AnyDelivered() {
		t.Error("AnyDelivered should be false when every channel failed")
	}
	// Failures are swallowed, never returned, but each must surface as a warning.
	if !log.HasEntry("warn", "email delivery failed") {
		t.Error("email failure should be logged at warn level")
	}
	if !log.HasEntry("warn", "whatsapp delivery failed") {
		t.Error("whatsapp failure should be logged at warn level")
	}
	if log.CountLevel("error") != 0 {
		t.Error("channel failures must not log at error level")
	}
}

func TestDispatchEmailFailureDoesNotBlockText(t *testing.T) {
	email := &fakeEmail{err: errors.New(errors.ErrCodeGatewayUnavailable, "down")}
	text := &fakeText{}
	d := NewDispatcher(email, text, logging.NewNopLogger())

	out := d.Dispatch(context.Background(), testOwner(), Message{Subject: "s", TextBody: "tb"})
	if out.EmailOK {
		t.Error("email should have failed")
	}
	if !out.TextOK || !out.AnyDelivered() {
		t.Errorf("text should still deliver independently: %+v", out)
	}
}

func TestDispatchNilTextSender(t *testing.T) {
	email := &fakeEmail{}
	d := NewDispatcher(email, nil, logging.NewNopLogger())

	out := d.Dispatch(context.Background(), testOwner(), Message{Subject: "s"})
	if !out.EmailOK || !out.TextSkipped {
		t.Errorf("missing gateway should skip, not fail: %+v", out)
	}
}

//Personal.AI order the ending
