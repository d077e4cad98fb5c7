package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Lock error codes (LOCK_*)
const (
	LockSessionRequired ErrorCode = "LOCK_001"
	LockSessionExpired  ErrorCode = "LOCK_002"
	LockInvalidSession  ErrorCode = "LOCK_003"
	LockAuthFailed      ErrorCode = "LOCK_004"
	LockPinIncorrect    ErrorCode = "LOCK_005"
	LockPinNotSet       ErrorCode = "LOCK_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerTransactionNotFound ErrorCode = "LEDGER_001"
	LedgerInvalidAmount       ErrorCode = "LEDGER_002"
	LedgerInvalidType         ErrorCode = "LEDGER_003"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound            ErrorCode = "GOAL_001"
	GoalInvalidTarget       ErrorCode = "GOAL_002"
	GoalInvalidContribution ErrorCode = "GOAL_003"
	GoalAlreadyReached      ErrorCode = "GOAL_004"
)

// Fixed charge error codes (CHARGE_*)
const (
	ChargeNotFound      ErrorCode = "CHARGE_001"
	ChargeInvalidAmount ErrorCode = "CHARGE_002"
)

// Currency error codes (CURRENCY_*)
const (
	CurrencyUnknownCode ErrorCode = "CURRENCY_001"
	CurrencyNotSelected ErrorCode = "CURRENCY_002"
)

// Backup error codes (BACKUP_*)
const (
	BackupInvalidFile  ErrorCode = "BACKUP_001"
	BackupInvalidShape ErrorCode = "BACKUP_002"
	BackupRelayFailed  ErrorCode = "BACKUP_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStorageError       ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Lock errors
	LockSessionRequired: "Unlock session token is required",
	LockSessionExpired:  "Unlock session has expired",
	LockInvalidSession:  "Invalid unlock session token",
	LockAuthFailed:      "Authentication failed, please retry",
	LockPinIncorrect:    "Incorrect PIN",
	LockPinNotSet:       "No PIN has been configured",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Ledger errors
	LedgerTransactionNotFound: "Transaction not found",
	LedgerInvalidAmount:       "Invalid transaction amount",
	LedgerInvalidType:         "Invalid transaction type",

	// Goal errors
	GoalNotFound:            "Goal not found",
	GoalInvalidTarget:       "Invalid goal target amount",
	GoalInvalidContribution: "Goal contribution must be a positive amount",
	GoalAlreadyReached:      "Goal target has already been reached",

	// Fixed charge errors
	ChargeNotFound:      "Fixed charge not found",
	ChargeInvalidAmount: "Invalid fixed charge amount",

	// Currency errors
	CurrencyUnknownCode: "Unknown currency code",
	CurrencyNotSelected: "No currency has been selected yet",

	// Backup errors
	BackupInvalidFile:  "Backup file is not valid JSON",
	BackupInvalidShape: "Backup file does not match the ledger document shape",
	BackupRelayFailed:  "Backup email could not be sent",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemStorageError:       "Storage error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
