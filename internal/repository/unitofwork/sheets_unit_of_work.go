package unitofwork

import (
	"context"

	"notebook-share-be/internal/repository/contract"
	"notebook-share-be/internal/repository/sheets"
)

type SheetsRepositoryFactory struct {
	store *sheets.Store
}

func NewSheetsRepositoryFactory(store *sheets.Store) RepositoryFactory {
	return &SheetsRepositoryFactory{store: store}
}

func (f *SheetsRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &sheetsUnitOfWork{store: f.store}
}

// sheetsUnitOfWork keeps services store-agnostic. The spreadsheet has no
// transactions, so Begin, Commit and Rollback are no-ops and concurrent
// writers resolve as last-write-wins at the remote store.
type sheetsUnitOfWork struct {
	store *sheets.Store
}

func (u *sheetsUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *sheetsUnitOfWork) Commit() error                   { return nil }
func (u *sheetsUnitOfWork) Rollback() error                 { return nil }

func (u *sheetsUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return sheets.NewNotebookRepository(u.store)
}

func (u *sheetsUnitOfWork) PermissionRepository() contract.PermissionRepository {
	return sheets.NewPermissionRepository(u.store)
}

func (u *sheetsUnitOfWork) AdminRepository() contract.AdminRepository {
	return sheets.NewAdminRepository(u.store)
}
