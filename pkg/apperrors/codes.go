package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeTokenMalformed     = "AUTH_TOKEN_MALFORMED"
)

// Authorization errors (AUTHZ_*)
const (
	ErrCodeForbidden   = "AUTHZ_FORBIDDEN"
	ErrCodeInvalidRole = "AUTHZ_INVALID_ROLE"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "VALIDATION_INVALID_INPUT"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidRating    = "VALIDATION_INVALID_RATING"
	ErrCodeInvalidColor     = "VALIDATION_INVALID_COLOR"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodeThemeNotFound   = "RESOURCE_THEME_NOT_FOUND"
	ErrCodeRecordNotFound  = "RESOURCE_NOT_FOUND"
	ErrCodeUserNotFound    = "RESOURCE_USER_NOT_FOUND"
	ErrCodeResourceExists  = "RESOURCE_ALREADY_EXISTS"
	ErrCodeUploadRejected  = "RESOURCE_UPLOAD_REJECTED"
)

// Feature errors (FEATURE_*)
const (
	ErrCodeFeatureDisabled = "FEATURE_DISABLED"
)

// Rate limiting errors (RATE_*)
const (
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeAggregateFailed = "INTERNAL_AGGREGATE_FAILED"
	ErrCodeMailerError     = "INTERNAL_MAILER_ERROR"
	ErrCodeMediaError      = "INTERNAL_MEDIA_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
