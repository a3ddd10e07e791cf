package contract

import (
	"context"

	"notebook-share-be/internal/entity"
)

// PermissionRepository addresses rows by the (notebook_id, user_email) pair.
// FindByPair returns (nil, nil) when no row matches. Update rewrites the
// role, status and updated_at fields of the row matching the pair.
type PermissionRepository interface {
	FindAll(ctx context.Context) ([]*entity.Permission, error)
	FindByPair(ctx context.Context, notebookID, email string) (*entity.Permission, error)
	FindActiveByNotebook(ctx context.Context, notebookID string) ([]*entity.Permission, error)
	Create(ctx context.Context, permission *entity.Permission) error
	Update(ctx context.Context, permission *entity.Permission) error
	CreateBatch(ctx context.Context, permissions []*entity.Permission) error
}
