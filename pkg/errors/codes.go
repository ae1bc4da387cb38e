package errors

import (
	"net/http"
	"strings"
)

// ErrorCode names one failure condition as a module-prefixed string.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Cross-cutting codes shared by every module
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"
)

// SLA Policy Module Error Codes
const (
	ErrCodePolicyNotFound       ErrorCode = "SLA_001"
	ErrCodePolicyInvalidWindows ErrorCode = "SLA_002"
	ErrCodePolicyLoadFailed     ErrorCode = "SLA_003"
)

// Finding Module Error Codes
const (
	ErrCodeFindingNotFound       ErrorCode = "FND_001"
	ErrCodeFindingInvalidStatus  ErrorCode = "FND_002"
	ErrCodeFindingTransitionLost ErrorCode = "FND_003"
	ErrCodeFindingLoadFailed     ErrorCode = "FND_004"
)

// Profile Module Error Codes
const (
	ErrCodeProfileNotFound   ErrorCode = "PRF_001"
	ErrCodeProfileNoContact  ErrorCode = "PRF_002"
	ErrCodeProfileLoadFailed ErrorCode = "PRF_003"
)

// Notification Module Error Codes
const (
	ErrCodeEmailDeliveryFailed    ErrorCode = "NTF_001"
	ErrCodeWhatsAppDeliveryFailed ErrorCode = "NTF_002"
	ErrCodeGatewayUnavailable     ErrorCode = "NTF_003"
)

// Escalation Run Module Error Codes
const (
	ErrCodeRunInProgress  ErrorCode = "RUN_001"
	ErrCodeRunAborted     ErrorCode = "RUN_002"
	ErrCodeRunLockFailed  ErrorCode = "RUN_003"
	ErrCodeEventPublish   ErrorCode = "RUN_004"
)

// Aliases for the generic factory functions below.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeUnknown      = ErrorCode("")
	CodeOK           = ErrorCode("OK")
)

// ErrorCodeHTTPStatus gives each code its HTTP status for the trigger API.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodePolicyNotFound:       http.StatusNotFound,
	ErrCodePolicyInvalidWindows: http.StatusUnprocessableEntity,
	ErrCodePolicyLoadFailed:     http.StatusInternalServerError,

	ErrCodeFindingNotFound:       http.StatusNotFound,
	ErrCodeFindingInvalidStatus:  http.StatusUnprocessableEntity,
	ErrCodeFindingTransitionLost: http.StatusConflict,
	ErrCodeFindingLoadFailed:     http.StatusInternalServerError,

	ErrCodeProfileNotFound:   http.StatusNotFound,
	ErrCodeProfileNoContact:  http.StatusUnprocessableEntity,
	ErrCodeProfileLoadFailed: http.StatusInternalServerError,

	ErrCodeEmailDeliveryFailed:    http.StatusBadGateway,
	ErrCodeWhatsAppDeliveryFailed: http.StatusBadGateway,
	ErrCodeGatewayUnavailable:     http.StatusServiceUnavailable,

	ErrCodeRunInProgress: http.StatusConflict,
	ErrCodeRunAborted:    http.StatusInternalServerError,
	ErrCodeRunLockFailed: http.StatusServiceUnavailable,
	ErrCodeEventPublish:  http.StatusInternalServerError,
}

// ErrorCodeMessage holds the fallback message served when a handler has
// nothing more specific to say.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodePolicyNotFound:       "SLA policy not found",
	ErrCodePolicyInvalidWindows: "SLA policy windows are inconsistent",
	ErrCodePolicyLoadFailed:     "failed to load SLA policies",

	ErrCodeFindingNotFound:       "finding not found",
	ErrCodeFindingInvalidStatus:  "invalid finding status",
	ErrCodeFindingTransitionLost: "finding state transition was not applied",
	ErrCodeFindingLoadFailed:     "failed to load findings",

	ErrCodeProfileNotFound:   "profile not found",
	ErrCodeProfileNoContact:  "profile has no usable contact channel",
	ErrCodeProfileLoadFailed: "failed to load profiles",

	ErrCodeEmailDeliveryFailed:    "failed to deliver email",
	ErrCodeWhatsAppDeliveryFailed: "failed to deliver WhatsApp message",
	ErrCodeGatewayUnavailable:     "notification gateway unavailable",

	ErrCodeRunInProgress: "an escalation run is already in progress",
	ErrCodeRunAborted:    "escalation run aborted",
	ErrCodeRunLockFailed: "failed to acquire run lock",
	ErrCodeEventPublish:  "failed to publish escalation event",
}

// HTTPStatusForCode resolves a code to its HTTP status, defaulting to 500
// for anything unregistered.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode resolves a code to its fallback message.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError reports whether the code maps into the 4xx range.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the code maps into the 5xx range.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode strips the numeric suffix, leaving the module prefix.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
