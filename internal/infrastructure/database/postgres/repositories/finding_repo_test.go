package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

func newMockRepo(t *testing.T) (finding.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := postgres.NewConnectionWithDB(db, logging.NewNopLogger())
	return NewPostgresFindingRepo(conn, logging.NewNopLogger()), mock
}

func TestListOpenWithDueDates_ExcludesTerminalAndUndated(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	due := now.Add(48 * time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "reference", "tenant_id", "classification", "status", "due_date",
		"escalation_level", "warning_sent_at", "last_escalated_at", "created_by",
		"created_at", "updated_at",
	}).AddRow(
		"f1", "FND-1", "acme", "major_nc", "open", due,
		0, nil, nil, "owner-1", now, now,
	)

	mock.ExpectQuery(`SELECT(.|\n)+FROM findings(.|\n)+status NOT IN \('closed', 'resolved'\)(.|\n)+due_date IS NOT NULL`).
		WillReturnRows(rows)

	got, err := repo.ListOpenWithDueDates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "FND-1", got[0].Reference)
	assert.NotNil(t, got[0].DueDate)
	assert.Nil(t, got[0].WarningSentAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkWarningSent_GuardedWrite(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Now()

	mock.ExpectExec(`UPDATE findings(.|\n)+SET warning_sent_at(.|\n)+warning_sent_at IS NULL`).
		WithArgs("f1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkWarningSent(context.Background(), common.ID("f1"), at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkWarningSent_ConflictWhenAlreadySet(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Now()

	mock.ExpectExec(`UPDATE findings`).
		WithArgs("f1", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkWarningSent(context.Background(), common.ID("f1"), at)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRaiseEscalation_MonotonicGuard(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Now()

	mock.ExpectExec(`UPDATE findings(.|\n)+escalation_level < \$2`).
		WithArgs("f1", 2, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RaiseEscalation(context.Background(), common.ID("f1"), 2, at))

	// A level that would not increase hits zero rows.
	mock.ExpectExec(`UPDATE findings`).
		WithArgs("f1", 1, at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RaiseEscalation(context.Background(), common.ID("f1"), 1, at)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.ErrCodeConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendAuditNote(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO finding_audit_notes`).
		WithArgs(sqlmock.AnyArg(), "f1", "Auto-escalated to Level 2 — 5 days overdue").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AppendAuditNote(context.Background(), common.ID("f1"),
		"Auto-escalated to Level 2 — 5 days overdue")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

//Personal.AI order the ending
