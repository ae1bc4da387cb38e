package escalation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

func TestCommitWarningStampsMarkerOnce(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	f := testFinding("FND-1", finding.ClassificationMajorNC, now.Add(24*time.Hour))
	repo := newMemFindingRepo(f)
	tr := NewTransitioner(repo, logging.NewNopLogger())

	if err := tr.CommitWarning(context.Background(), f, now, DispatchOutcome{EmailOK: true}); err != nil {
		t.Fatalf("first commit failed: %v", err)
	}
	if f.WarningSentAt == nil || !f.WarningSentAt.Equal(now) {
		t.Error("in-memory aggregate should carry the new marker")
	}

	// The repository guard rejects a second stamp.
	if err := tr.CommitWarning(context.Background(), f, now.Add(time.Hour), DispatchOutcome{}); err == nil {
		t.Error("second warning commit must fail on the only-if-unset guard")
	}
}

func TestCommitWarningNoteRecordsDeliveryOutcome(t *testing.T) {
	now := time.Now()
	f := testFinding("FND-1", finding.ClassificationMajorNC, now.Add(24*time.Hour))
	repo := newMemFindingRepo(f)
	tr := NewTransitioner(repo, logging.NewNopLogger())

	if err := tr.CommitWarning(context.Background(), f, now, DispatchOutcome{EmailOK: false}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	notes := repo.notes[f.ID]
	if len(notes) != 1 || !strings.Contains(notes[0], "email delivered: false") {
		t.Errorf("note should record the delivery outcome, got %v", notes)
	}
}

func TestCommitEscalationLevelAndNote(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	f := testFinding("FND-1", finding.ClassificationMajorNC, now.Add(-5*24*time.Hour))
	f.EscalationLevel = finding.LevelOne
	repo := newMemFindingRepo(f)
	tr := NewTransitioner(repo, logging.NewNopLogger())

	if err := tr.CommitEscalation(context.Background(), f, finding.LevelTwo, 5, now); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if f.EscalationLevel != finding.LevelTwo || f.LastEscalatedAt == nil {
		t.Error("aggregate should carry the raised level and stamp")
	}
	notes := repo.notes[f.ID]
	if len(notes) != 1 {
		t.Fatalf("expected one audit note, got %d", len(notes))
	}
	if !strings.Contains(notes[0], "Level 2") || !strings.Contains(notes[0], "5 days overdue") {
		t.Errorf("note must name the level and overdue days, got %q", notes[0])
	}
}

func TestCommitEscalationRejectsNonMonotonicLevel(t *testing.T) {
	now := time.Now()
	f := testFinding("FND-1", finding.ClassificationMajorNC, now.Add(-5*24*time.Hour))
	f.EscalationLevel = finding.LevelTwo
	repo := newMemFindingRepo(f)
	tr := NewTransitioner(repo, logging.NewNopLogger())

	err := tr.CommitEscalation(context.Background(), f, finding.LevelOne, 5, now)
	if err == nil {
		t.Fatal("level decrease must be rejected before hitting the store")
	}
	if !errors.IsCode(err, errors.ErrCodeFindingInvalidStatus) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeFindingInvalidStatus)
	}
	if len(repo.notes[f.ID]) != 0 {
		t.Error("no audit note may be written for a rejected transition")
	}
}

func TestCommitEscalationRepositoryFailure(t *testing.T) {
	now := time.Now()
	f := testFinding("FND-1", finding.ClassificationMajorNC, now.Add(-5*24*time.Hour))
	repo := newMemFindingRepo(f)
	repo.failRaiseEscalation = true
	tr := NewTransitioner(repo, logging.NewNopLogger())

	err := tr.CommitEscalation(context.Background(), f, finding.LevelOne, 2, now)
	if !errors.IsCode(err, errors.ErrCodeFindingTransitionLost) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeFindingTransitionLost)
	}
	if f.EscalationLevel != finding.LevelNone {
		t.Error("aggregate must not advance when the store rejects the write")
	}
}

//Personal.AI order the ending
