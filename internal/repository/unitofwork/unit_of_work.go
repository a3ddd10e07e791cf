package unitofwork

import (
	"context"

	"notebook-share-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NotebookRepository() contract.NotebookRepository
	PermissionRepository() contract.PermissionRepository
	AdminRepository() contract.AdminRepository
}
