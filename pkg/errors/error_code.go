package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter  ErrorCode = 100
	ErrCodeInvalidPeriod     ErrorCode = 101
	ErrCodeInvalidThreshold  ErrorCode = 102
	ErrCodeInvalidMultiplier ErrorCode = 103
	ErrCodeInvalidLookback   ErrorCode = 104
	ErrCodeMissingParameter  ErrorCode = 105
	ErrCodeInvalidType       ErrorCode = 106

	// Data errors (200-299)
	ErrCodeDataNotFound           ErrorCode = 200
	ErrCodeDataSourceUnavailable  ErrorCode = 201
	ErrCodeQueryFailed            ErrorCode = 202
	ErrCodeNonMonotonicTimestamps ErrorCode = 203
	ErrCodeSeriesMisaligned       ErrorCode = 204

	// Engine errors (300-399)
	ErrCodeEngineNotInitialized ErrorCode = 300
	ErrCodeEngineConfigError    ErrorCode = 301
	ErrCodeSchemaVersionError   ErrorCode = 302

	// Output errors (400-499)
	ErrCodeWriteFailed ErrorCode = 400
)
