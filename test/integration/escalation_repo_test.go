//go:build integration

// Package integration exercises the PostgreSQL repositories against a real
// database.  Tests require Docker and are gated behind the "integration"
// build tag.
package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/policy"
	"github.com/turtacn/SLA-Sentinel/internal/domain/profile"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

const migrationsPath = "file://../../db/migrations"

// startPostgres launches a PostgreSQL 16 container, applies all migrations
// and returns a connected repository connection.
func startPostgres(t *testing.T) *postgres.Connection {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("sentinel_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, postgres.RunMigrations(dsn, migrationsPath))

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	conn := postgres.NewConnectionWithDB(db, logging.NewNopLogger())
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func insertFinding(t *testing.T, conn *postgres.Connection, ref string, due time.Time, ownerID common.ID) common.ID {
	t.Helper()
	id := common.NewID()
	_, err := conn.DB().Exec(`
		INSERT INTO findings (id, reference, tenant_id, classification, status, due_date, created_by)
		VALUES ($1, $2, 'acme', 'major_nc', 'open', $3, $4)`,
		id.String(), ref, due, ownerID.String())
	require.NoError(t, err)
	return id
}

func insertProfile(t *testing.T, conn *postgres.Connection, role profile.Role, email, lang string) common.ID {
	t.Helper()
	id := common.NewID()
	_, err := conn.DB().Exec(`
		INSERT INTO profiles (id, tenant_id, full_name, email, phone, preferred_language, role, active)
		VALUES ($1, 'acme', 'Test User', $2, '+966500000001', $3, $4, TRUE)`,
		id.String(), email, lang, string(role))
	require.NoError(t, err)
	return id
}

func TestPolicyRepo_SaveResolveSoftDelete(t *testing.T) {
	conn := startPostgres(t)
	repo := repositories.NewPostgresPolicyRepo(conn, logging.NewNopLogger())
	ctx := context.Background()

	second := 4
	p := &policy.SLAPolicy{
		TenantID:                 common.TenantID("acme"),
		Classification:           finding.ClassificationMajorNC,
		TargetDays:               5,
		WarningLeadDays:          2,
		EscalationLeadDays:       2,
		SecondEscalationLeadDays: &second,
	}
	require.NoError(t, repo.Save(ctx, p))
	require.False(t, p.ID.IsZero())
	require.False(t, p.CreatedAt.IsZero())

	// Upsert replaces the live row for the same tenant and classification.
	p2 := &policy.SLAPolicy{
		TenantID:           common.TenantID("acme"),
		Classification:     finding.ClassificationMajorNC,
		TargetDays:         9,
		WarningLeadDays:    3,
		EscalationLeadDays: 3,
	}
	require.NoError(t, repo.Save(ctx, p2))

	rows, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 9, rows[0].TargetDays)
	assert.Nil(t, rows[0].SecondEscalationLeadDays)

	require.NoError(t, repo.SoftDelete(ctx, rows[0].ID))
	rows, err = repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// A second delete finds nothing live.
	assert.True(t, errors.IsCode(repo.SoftDelete(ctx, p.ID), errors.ErrCodePolicyNotFound))
}

func TestFindingRepo_GuardedTransitions(t *testing.T) {
	conn := startPostgres(t)
	repo := repositories.NewPostgresFindingRepo(conn, logging.NewNopLogger())
	ctx := context.Background()

	owner := insertProfile(t, conn, profile.RoleTechnician, "owner@acme.example", "en")
	due := time.Now().Add(48 * time.Hour).UTC()
	id := insertFinding(t, conn, "FND-0001", due, owner)

	candidates, err := repo.ListOpenWithDueDates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "FND-0001", candidates[0].Reference)
	assert.Equal(t, 0, candidates[0].EscalationLevel)

	// Warning marker lands exactly once.
	now := time.Now().UTC()
	require.NoError(t, repo.MarkWarningSent(ctx, id, now))
	assert.True(t, errors.IsCode(repo.MarkWarningSent(ctx, id, now), errors.ErrCodeConflict))

	// Levels only ratchet upward.
	require.NoError(t, repo.RaiseEscalation(ctx, id, 2, now))
	assert.True(t, errors.IsCode(repo.RaiseEscalation(ctx, id, 1, now), errors.ErrCodeConflict))

	require.NoError(t, repo.AppendAuditNote(ctx, id, "Auto-escalated to Level 2 — 5 days overdue"))
	var count int
	require.NoError(t, conn.DB().QueryRow(
		`SELECT COUNT(*) FROM finding_audit_notes WHERE finding_id = $1`, id.String()).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestProfileRepo_ManagementLookup(t *testing.T) {
	conn := startPostgres(t)
	repo := repositories.NewPostgresProfileRepo(conn, logging.NewNopLogger())
	ctx := context.Background()

	hse := insertProfile(t, conn, profile.RoleHSEManager, "hse@acme.example", "ar")
	insertProfile(t, conn, profile.RoleOperationsManager, "ops@acme.example", "en")
	insertProfile(t, conn, profile.RoleTechnician, "owner@acme.example", "en")

	got, err := repo.FindByID(ctx, hse)
	require.NoError(t, err)
	assert.Equal(t, profile.LanguageArabic, got.PreferredLanguage)

	managers, err := repo.ListActiveByTenantRoles(ctx, common.TenantID("acme"), profile.ManagementRoles)
	require.NoError(t, err)
	assert.Len(t, managers, 2)

	_, err = repo.FindByID(ctx, common.NewID())
	assert.True(t, errors.IsCode(err, errors.ErrCodeProfileNotFound))
}

//Personal.AI order the ending
