// Package profile models the people notifications go to: finding owners and
// the management roles that receive escalations.
package profile

import (
	"strings"

	"github.com/turtacn/SLA-Sentinel/pkg/types/common"
)

// Language is a profile's preferred notification language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Normalize maps unknown or empty language codes to English so the composer
// always has a renderable language.
func (l Language) Normalize() Language {
	switch Language(strings.ToLower(string(l))) {
	case LanguageArabic:
		return LanguageArabic
	default:
		return LanguageEnglish
	}
}

// Role identifies a profile's function inside a tenant.
type Role string

const (
	RoleHSEManager        Role = "hse_manager"
	RoleOperationsManager Role = "operations_manager"
	RoleAuditor           Role = "auditor"
	RoleTechnician        Role = "technician"
)

// ManagementRoles are the roles that receive escalation notifications.
var ManagementRoles = []Role{RoleHSEManager, RoleOperationsManager}

// Profile is a notification recipient.  Phone is optional; a profile without
// one simply never receives WhatsApp messages.
type Profile struct {
	ID                common.ID       `json:"id"`
	TenantID          common.TenantID `json:"tenant_id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	PreferredLanguage Language        `json:"preferred_language"`
	Role              Role            `json:"role"`
	Active            bool            `json:"active"`
}

// Reachable reports whether the profile can receive email, the channel that
// is always attempted.
func (p *Profile) Reachable() bool {
	return p != nil && p.Active && p.Email != ""
}

// HasPhone reports whether the optional WhatsApp channel applies.
func (p *Profile) HasPhone() bool {
	return p != nil && p.Phone != ""
}

//Personal.AI order the ending
