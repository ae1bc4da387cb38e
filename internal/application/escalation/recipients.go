package escalation

import (
	"context"

	"github.com/turtacn/SLA-Sentinel/internal/domain/finding"
	"github.com/turtacn/SLA-Sentinel/internal/domain/profile"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// RecipientResolver maps a finding to the people who must hear about it.
// Warnings go to the single owner (the profile that created the finding);
// escalations fan out to the tenant's management roles.
type RecipientResolver struct {
	profiles profile.Repository
}

// NewRecipientResolver wires the resolver to the profile store.
func NewRecipientResolver(profiles profile.Repository) *RecipientResolver {
	return &RecipientResolver{profiles: profiles}
}

// ResolveOwner returns the finding owner's profile for a warning.  A missing,
// inactive or email-less owner is an error: the warning cannot be delivered
// and must stay pending so a later run retries once the profile is fixed.
func (r *RecipientResolver) ResolveOwner(ctx context.Context, f *finding.Finding) (*profile.Profile, error) {
	if f.CreatedBy.IsZero() {
		return nil, errors.New(errors.ErrCodeProfileNotFound,
			"finding has no owner on record").WithDetail(f.Reference)
	}
	p, err := r.profiles.FindByID(ctx, f.CreatedBy)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.New(errors.ErrCodeProfileNotFound,
				"finding owner profile not found").WithDetail(f.Reference)
		}
		return nil, errors.Wrap(err, errors.ErrCodeProfileLoadFailed,
			"loading finding owner profile")
	}
	if !p.Reachable() {
		return nil, errors.New(errors.ErrCodeProfileNoContact,
			"finding owner has no usable email address").WithDetail(f.Reference)
	}
	return p, nil
}

// ResolveManagement returns the tenant's active management profiles for an
// escalation.  An empty list is a valid answer, not an error: the escalation
// state transition still commits so the level keeps ratcheting even while the
// tenant has no managers configured.
func (r *RecipientResolver) ResolveManagement(ctx context.Context, f *finding.Finding) ([]*profile.Profile, error) {
	recipients, err := r.profiles.ListActiveByTenantRoles(ctx, f.TenantID, profile.ManagementRoles)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeProfileLoadFailed,
			"loading management profiles")
	}
	reachable := recipients[:0]
	for _, p := range recipients {
		if p.Reachable() {
			reachable = append(reachable, p)
		}
	}
	return reachable, nil
}

//Personal.AI order the ending
