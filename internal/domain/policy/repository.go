package policy

import (
	"context"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// Repository is the persistence port for tenant SLA policy rows.
type Repository interface {
	// ListActive returns every non-deleted policy row across all tenants.
	// The batch engine loads this snapshot once per run and resolves from
	// memory afterwards.
	ListActive(ctx context.Context) ([]*SLAPolicy, error)

	// FindByTenantAndClassification returns the active row for the pair, or
	// a not-found error when no override exists.
	FindByTenantAndClassification(ctx context.Context, tenantID common.TenantID, c finding.Classification) (*SLAPolicy, error)

	// Save inserts or updates a policy row after Validate has passed.
	Save(ctx context.Context, p *SLAPolicy) error

	// SoftDelete stamps deleted_at on the row; resolution ignores it from
	// the next run onward.
	SoftDelete(ctx context.Context, id common.ID) error
}

//Personal.AI order the ending
