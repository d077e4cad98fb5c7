package dto

// Backup Request DTOs

// EmailBackupRequest contains the recipient of a backup email
type EmailBackupRequest struct {
	To string `json:"to" validate:"required,email"`
}

// Backup Response DTOs

// ImportResponse summarizes a restored ledger document
type ImportResponse struct {
	Message      string `json:"message"`
	Transactions int    `json:"transactions"`
	Goals        int    `json:"goals"`
	FixedCharges int    `json:"fixedCharges"`
}

// EmailBackupResponse confirms a sent backup email
type EmailBackupResponse struct {
	Message string `json:"message"`
	To      string `json:"to"`
}
