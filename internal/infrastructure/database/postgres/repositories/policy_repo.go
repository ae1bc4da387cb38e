package repositories

import (
	"context"
	"database/sql"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/policy"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

type postgresPolicyRepo struct {
	baseRepo
}

// NewPostgresPolicyRepo returns the PostgreSQL implementation of the SLA
// policy repository port.
func NewPostgresPolicyRepo(conn *postgres.Connection, log logging.Logger) policy.Repository {
	return &postgresPolicyRepo{
		baseRepo: baseRepo{conn: conn, log: log},
	}
}

const policyColumns = `
	id, tenant_id, classification, target_days, warning_lead_days,
	escalation_lead_days, second_escalation_lead_days, deleted_at,
	created_at, updated_at
`

func (r *postgresPolicyRepo) ListActive(ctx context.Context) ([]*policy.SLAPolicy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM sla_policies
		WHERE deleted_at IS NULL
	`
	rows, err := r.executor().QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to query active policies")
	}
	defer rows.Close()

	var policies []*policy.SLAPolicy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate policies")
	}
	return policies, nil
}

func (r *postgresPolicyRepo) FindByTenantAndClassification(ctx context.Context, tenantID common.TenantID, c finding.Classification) (*policy.SLAPolicy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM sla_policies
		WHERE tenant_id = $1 AND classification = $2 AND deleted_at IS NULL
	`
	p, err := scanPolicy(r.executor().QueryRowContext(ctx, query, tenantID.String(), string(c)))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresPolicyRepo) Save(ctx context.Context, p *policy.SLAPolicy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID.IsZero() {
		p.ID = common.NewID()
	}
	query := `
		INSERT INTO sla_policies (
			id, tenant_id, classification, target_days, warning_lead_days,
			escalation_lead_days, second_escalation_lead_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, classification) WHERE deleted_at IS NULL DO UPDATE SET
			target_days = EXCLUDED.target_days,
			warning_lead_days = EXCLUDED.warning_lead_days,
			escalation_lead_days = EXCLUDED.escalation_lead_days,
			second_escalation_lead_days = EXCLUDED.second_escalation_lead_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	var second sql.NullInt64
	if p.SecondEscalationLeadDays != nil {
		second = sql.NullInt64{Int64: int64(*p.SecondEscalationLeadDays), Valid: true}
	}
	err := r.executor().QueryRowContext(ctx, query,
		p.ID.String(), p.TenantID.String(), string(p.Classification),
		p.TargetDays, p.WarningLeadDays, p.EscalationLeadDays, second,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to save policy")
	}
	return nil
}

func (r *postgresPolicyRepo) SoftDelete(ctx context.Context, id common.ID) error {
	query := `
		UPDATE sla_policies
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	res, err := r.executor().ExecContext(ctx, query, id.String())
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete policy")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.New(errors.ErrCodePolicyNotFound, "policy not found").WithDetail(id.String())
	}
	return nil
}

func scanPolicy(s scanner) (*policy.SLAPolicy, error) {
	var (
		p         policy.SLAPolicy
		second    sql.NullInt64
		deletedAt sql.NullTime
	)
	err := s.Scan(
		&p.ID, &p.TenantID, &p.Classification, &p.TargetDays, &p.WarningLeadDays,
		&p.EscalationLeadDays, &second, &deletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodePolicyNotFound, "policy not found")
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan policy row")
	}
	if second.Valid {
		v := int(second.Int64)
		p.SecondEscalationLeadDays = &v
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		p.DeletedAt = &t
	}
	return &p, nil
}

//Personal.AI order the ending
