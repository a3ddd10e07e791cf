package dto

import "time"

type UpsertNotebookRequest struct {
	// Blank id means "generate one": the service stamps a unix-timestamp
	// string, mirroring manual entry of the id from the notebook URL.
	NotebookID string `json:"notebook_id"`
	Name       string `json:"notebook_name" validate:"required"`
}

type UpsertNotebookResponse struct {
	NotebookID string `json:"notebook_id"`
	Created    bool   `json:"created"`
}

type NotebookResponse struct {
	NotebookID  string    `json:"notebook_id"`
	Name        string    `json:"notebook_name"`
	Owner       string    `json:"owner"`
	CreatedDate time.Time `json:"created_date"`
	Link        string    `json:"link"`
}
