package profile

import (
	"context"

	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// Repository is the persistence port for recipient profiles.
type Repository interface {
	// FindByID returns the profile for an id, or a not-found error.
	FindByID(ctx context.Context, id common.ID) (*Profile, error)

	// ListActiveByTenantRoles returns every active profile in the tenant
	// holding one of the given roles.  An empty result is not an error.
	ListActiveByTenantRoles(ctx context.Context, tenantID common.TenantID, roles []Role) ([]*Profile, error)
}

//Personal.AI order the ending
