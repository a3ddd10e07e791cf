package service

import (
	"context"

	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/repository/contract"
	"notebook-share-be/internal/repository/unitofwork"
)

// In-memory fakes implementing the repository contracts, mirroring the
// row-per-pair storage shape of the real stores.

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeNotebookRepo struct {
	notebooks []*entity.Notebook
}

func (r *fakeNotebookRepo) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	out := make([]*entity.Notebook, len(r.notebooks))
	for i, nb := range r.notebooks {
		cp := *nb
		out[i] = &cp
	}
	return out, nil
}

func (r *fakeNotebookRepo) FindByID(ctx context.Context, notebookID string) (*entity.Notebook, error) {
	for _, nb := range r.notebooks {
		if nb.NotebookID == notebookID {
			cp := *nb
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNotebookRepo) Create(ctx context.Context, notebook *entity.Notebook) error {
	cp := *notebook
	r.notebooks = append(r.notebooks, &cp)
	return nil
}

func (r *fakeNotebookRepo) Update(ctx context.Context, notebook *entity.Notebook) error {
	for _, nb := range r.notebooks {
		if nb.NotebookID == notebook.NotebookID {
			nb.Name = notebook.Name
			nb.Owner = notebook.Owner
			return nil
		}
	}
	return nil
}

type fakePermissionRepo struct {
	permissions []*entity.Permission
}

func (r *fakePermissionRepo) FindAll(ctx context.Context) ([]*entity.Permission, error) {
	out := make([]*entity.Permission, len(r.permissions))
	for i, p := range r.permissions {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *fakePermissionRepo) FindByPair(ctx context.Context, notebookID, email string) (*entity.Permission, error) {
	for _, p := range r.permissions {
		if p.NotebookID == notebookID && p.UserEmail == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePermissionRepo) FindActiveByNotebook(ctx context.Context, notebookID string) ([]*entity.Permission, error) {
	out := make([]*entity.Permission, 0)
	for _, p := range r.permissions {
		if p.NotebookID == notebookID && p.IsActive() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePermissionRepo) Create(ctx context.Context, permission *entity.Permission) error {
	cp := *permission
	r.permissions = append(r.permissions, &cp)
	return nil
}

func (r *fakePermissionRepo) Update(ctx context.Context, permission *entity.Permission) error {
	for _, p := range r.permissions {
		if p.NotebookID == permission.NotebookID && p.UserEmail == permission.UserEmail {
			p.Role = permission.Role
			p.Status = permission.Status
			p.UpdatedAt = permission.UpdatedAt
			return nil
		}
	}
	return nil
}

func (r *fakePermissionRepo) CreateBatch(ctx context.Context, permissions []*entity.Permission) error {
	for _, p := range permissions {
		cp := *p
		r.permissions = append(r.permissions, &cp)
	}
	return nil
}

type fakeAdminRepo struct {
	accounts []*entity.AdminAccount
}

func (r *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeUnitOfWork struct {
	notebooks   *fakeNotebookRepo
	permissions *fakePermissionRepo
	admins      *fakeAdminRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return u.notebooks
}

func (u *fakeUnitOfWork) PermissionRepository() contract.PermissionRepository {
	return u.permissions
}

func (u *fakeUnitOfWork) AdminRepository() contract.AdminRepository {
	return u.admins
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			notebooks:   &fakeNotebookRepo{},
			permissions: &fakePermissionRepo{},
			admins:      &fakeAdminRepo{},
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
