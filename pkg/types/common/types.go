package common

import (
	"time"

	"github.com/google/uuid"
)

// ID carries a UUID v4 as a string; the zero value means unassigned.
type ID string

// NewID returns a freshly generated UUID v4 ID.
func NewID() ID { return ID(uuid.New().String()) }

// String returns the raw string form of the ID.
func (id ID) String() string { return string(id) }

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool { return id == "" }

// TenantID scopes rows and lookups to one tenant.
type TenantID string

// String returns the raw string form of the TenantID.
func (t TenantID) String() string { return string(t) }

// UserID identifies a profile owner.
type UserID string

// Metadata is an open-ended key-value bag attached to events and audit rows.
type Metadata map[string]interface{}

// Pagination bounds list queries.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total,omitempty"`
}

// ErrorDetail is the error shape embedded in API response envelopes.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// APIResponse is the generic wrapper for non-trigger API responses.
type APIResponse[T any] struct {
	Success   bool         `json:"success"`
	Data      T            `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id"`
	Timestamp time.Time    `json:"timestamp"`
}

//Personal.AI order the ending
