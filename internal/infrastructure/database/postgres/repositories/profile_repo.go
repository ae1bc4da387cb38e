package repositories

import (
	"context"
	"database/sql"

	"github.com/turtacn/SLA-Sentinel/internal/domain/profile"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

type postgresProfileRepo struct {
	baseRepo
}

// NewPostgresProfileRepo returns the PostgreSQL implementation of the
// profile repository port.
func NewPostgresProfileRepo(conn *postgres.Connection, log logging.Logger) profile.Repository {
	return &postgresProfileRepo{
		baseRepo: baseRepo{conn: conn, log: log},
	}
}

const profileColumns = `
	id, tenant_id, full_name, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(preferred_language, 'en'), role, active
`

func (r *postgresProfileRepo) FindByID(ctx context.Context, id common.ID) (*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1
	`
	p, err := scanProfile(r.executor().QueryRowContext(ctx, query, id.String()))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) ListActiveByTenantRoles(ctx context.Context, tenantID common.TenantID, roles []profile.Role) ([]*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE tenant_id = $1 AND active AND role = ANY($2)
	`
	roleNames := make([]string, len(roles))
	for i, role := range roles {
		roleNames[i] = string(role)
	}
	rows, err := r.executor().QueryContext(ctx, query, tenantID.String(), roleNames)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to query profiles by role")
	}
	defer rows.Close()

	var profiles []*profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate profiles")
	}
	return profiles, nil
}

func scanProfile(s scanner) (*profile.Profile, error) {
	var p profile.Profile
	err := s.Scan(
		&p.ID, &p.TenantID, &p.FullName, &p.Email, &p.Phone,
		&p.PreferredLanguage, &p.Role, &p.Active,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found")
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan profile row")
	}
	return &p, nil
}

//Personal.AI order the ending
