package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

type postgresFindingRepo struct {
	baseRepo
}

// NewPostgresFindingRepo returns the PostgreSQL implementation of the
// finding repository port.
func NewPostgresFindingRepo(conn *postgres.Connection, log logging.Logger) finding.Repository {
	return &postgresFindingRepo{
		baseRepo: baseRepo{conn: conn, log: log},
	}
}

const findingColumns = `
	id, reference, tenant_id, classification, status, due_date,
	escalation_level, warning_sent_at, last_escalated_at, created_by,
	created_at, updated_at
`

func (r *postgresFindingRepo) ListOpenWithDueDates(ctx context.Context) ([]*finding.Finding, error) {
	query := `
		SELECT ` + findingColumns + `
		FROM findings
		WHERE status NOT IN ('closed', 'resolved')
		  AND due_date IS NOT NULL
		ORDER BY due_date ASC
	`
	rows, err := r.executor().QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to query candidate findings")
	}
	defer rows.Close()

	var findings []*finding.Finding
	for rows.Next() {
		f, err := scanFinding(rows)
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate candidate findings")
	}
	return findings, nil
}

// MarkWarningSent stamps the one-shot warning marker.  The WHERE guard makes
// the write idempotent: a second stamp, from this run or a racing one, hits
// zero rows and surfaces as a conflict.
func (r *postgresFindingRepo) MarkWarningSent(ctx context.Context, id common.ID, at time.Time) error {
	query := `
		UPDATE findings
		SET warning_sent_at = $2, updated_at = NOW()
		WHERE id = $1 AND warning_sent_at IS NULL
	`
	res, err := r.executor().ExecContext(ctx, query, id.String(), at)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to mark warning sent")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.New(errors.ErrCodeConflict,
			"warning marker already set or finding missing").WithDetail(id.String())
	}
	return nil
}

// RaiseEscalation raises the level under the monotonic guard: the update only
// lands while the stored level is still below the target.
func (r *postgresFindingRepo) RaiseEscalation(ctx context.Context, id common.ID, level int, at time.Time) error {
	query := `
		UPDATE findings
		SET escalation_level = $2, last_escalated_at = $3, updated_at = NOW()
		WHERE id = $1 AND escalation_level < $2
	`
	res, err := r.executor().ExecContext(ctx, query, id.String(), level, at)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to raise escalation level")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.New(errors.ErrCodeConflict,
			"escalation level would not increase or finding missing").WithDetail(id.String())
	}
	return nil
}

func (r *postgresFindingRepo) AppendAuditNote(ctx context.Context, id common.ID, note string) error {
	query := `
		INSERT INTO finding_audit_notes (id, finding_id, note, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := r.executor().ExecContext(ctx, query, common.NewID().String(), id.String(), note); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to append audit note")
	}
	return nil
}

func scanFinding(s scanner) (*finding.Finding, error) {
	var (
		f               finding.Finding
		dueDate         sql.NullTime
		warningSentAt   sql.NullTime
		lastEscalatedAt sql.NullTime
	)
	err := s.Scan(
		&f.ID, &f.Reference, &f.TenantID, &f.Classification, &f.Status, &dueDate,
		&f.EscalationLevel, &warningSentAt, &lastEscalatedAt, &f.CreatedBy,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodeFindingNotFound, "finding not found")
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan finding row")
	}
	if dueDate.Valid {
		f.DueDate = &dueDate.Time
	}
	if warningSentAt.Valid {
		f.WarningSentAt = &warningSentAt.Time
	}
	if lastEscalatedAt.Valid {
		f.LastEscalatedAt = &lastEscalatedAt.Time
	}
	return &f, nil
}

//Personal.AI order the ending
