package dto

import "time"

type GrantPermissionRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=Viewer Editor"`
}

type GrantPermissionResponse struct {
	NotebookID string `json:"notebook_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Created    bool   `json:"created"`
}

type ShareRow struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShareListResponse struct {
	NotebookID string     `json:"notebook_id"`
	Link       string     `json:"link"`
	Total      int        `json:"total"`
	Editors    int        `json:"editors"`
	// EmailList is comma-space joined so it pastes into the external share
	// dialog as multiple contacts.
	EmailList string     `json:"email_list"`
	Shares    []ShareRow `json:"shares"`
}

type BatchImportResponse struct {
	NotebookID string `json:"notebook_id"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
}
