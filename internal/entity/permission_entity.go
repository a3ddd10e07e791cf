package entity

import "time"

type PermissionRole string

const (
	RoleViewer PermissionRole = "Viewer"
	RoleEditor PermissionRole = "Editor"
)

type PermissionStatus string

const (
	StatusActive  PermissionStatus = "Active"
	StatusRevoked PermissionStatus = "Revoked"
)

// Permission is a share record. The pair (NotebookID, UserEmail) is its
// identity; the stores keep at most one row per pair, enforced by the
// service layer rather than the store itself.
type Permission struct {
	NotebookID string
	UserEmail  string
	Role       PermissionRole
	Status     PermissionStatus
	UpdatedAt  time.Time
}

func (p *Permission) IsActive() bool {
	return p.Status == StatusActive
}
