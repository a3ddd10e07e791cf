package sheets

import (
	"context"
	"fmt"

	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/repository/contract"
)

// permissions worksheet columns: A notebook_id, B user_email, C role, D status, E updated_at
const permissionReadRange = "permissions!A2:E"

type PermissionRepository struct {
	store *Store
}

func NewPermissionRepository(store *Store) contract.PermissionRepository {
	return &PermissionRepository{store: store}
}

func (r *PermissionRepository) rowToEntity(row []interface{}) *entity.Permission {
	return &entity.Permission{
		NotebookID: cellString(row, 0),
		UserEmail:  cellString(row, 1),
		Role:       entity.PermissionRole(cellString(row, 2)),
		Status:     entity.PermissionStatus(cellString(row, 3)),
		UpdatedAt:  parseTime(cellString(row, 4), timestampLayout, dateLayout),
	}
}

func (r *PermissionRepository) entityToRow(p *entity.Permission) []interface{} {
	return []interface{}{
		p.NotebookID,
		p.UserEmail,
		string(p.Role),
		string(p.Status),
		p.UpdatedAt.Format(timestampLayout),
	}
}

func (r *PermissionRepository) FindAll(ctx context.Context) ([]*entity.Permission, error) {
	rows, err := r.store.readRows(ctx, tablePermissions, permissionReadRange)
	if err != nil {
		return nil, err
	}
	permissions := make([]*entity.Permission, 0, len(rows))
	for _, row := range rows {
		if cellString(row, 0) == "" && cellString(row, 1) == "" {
			continue
		}
		permissions = append(permissions, r.rowToEntity(row))
	}
	return permissions, nil
}

// findRow returns the sheet row number of the pair, or 0 when absent.
func (r *PermissionRepository) findRow(ctx context.Context, notebookID, email string) (int, []interface{}, error) {
	rows, err := r.store.readRows(ctx, tablePermissions, permissionReadRange)
	if err != nil {
		return 0, nil, err
	}
	for idx, row := range rows {
		if cellString(row, 0) == notebookID && cellString(row, 1) == email {
			return idx + 2, row, nil
		}
	}
	return 0, nil, nil
}

func (r *PermissionRepository) FindByPair(ctx context.Context, notebookID, email string) (*entity.Permission, error) {
	rowNum, row, err := r.findRow(ctx, notebookID, email)
	if err != nil {
		return nil, err
	}
	if rowNum == 0 {
		return nil, nil
	}
	return r.rowToEntity(row), nil
}

func (r *PermissionRepository) FindActiveByNotebook(ctx context.Context, notebookID string) ([]*entity.Permission, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Permission, 0)
	for _, p := range all {
		if p.NotebookID == notebookID && p.IsActive() {
			active = append(active, p)
		}
	}
	return active, nil
}

func (r *PermissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	if err := r.store.values.Append(ctx, "permissions!A:E", [][]interface{}{r.entityToRow(permission)}); err != nil {
		return err
	}
	r.store.invalidate(tablePermissions)
	return nil
}

// Update rewrites the role, status and updated_at cells of the row matching
// the pair. The notebook_id and user_email cells are the row identity and
// stay in place.
func (r *PermissionRepository) Update(ctx context.Context, permission *entity.Permission) error {
	rowNum, _, err := r.findRow(ctx, permission.NotebookID, permission.UserEmail)
	if err != nil {
		return err
	}
	if rowNum == 0 {
		return serverutils.NewNotFound("share record not found")
	}
	updateRange := fmt.Sprintf("permissions!C%d:E%d", rowNum, rowNum)
	values := [][]interface{}{{
		string(permission.Role),
		string(permission.Status),
		permission.UpdatedAt.Format(timestampLayout),
	}}
	if err := r.store.values.Update(ctx, updateRange, values); err != nil {
		return err
	}
	r.store.invalidate(tablePermissions)
	return nil
}

func (r *PermissionRepository) CreateBatch(ctx context.Context, permissions []*entity.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	rows := make([][]interface{}, len(permissions))
	for i, p := range permissions {
		rows[i] = r.entityToRow(p)
	}
	if err := r.store.values.Append(ctx, "permissions!A:E", rows); err != nil {
		return err
	}
	r.store.invalidate(tablePermissions)
	return nil
}
