package sheets

import (
	"context"

	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/repository/contract"
)

// system_admin worksheet columns: A username, B password
const adminReadRange = "system_admin!A2:B"

type AdminRepository struct {
	store *Store
}

func NewAdminRepository(store *Store) contract.AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	rows, err := r.store.readRows(ctx, tableAdmin, adminReadRange)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if cellString(row, 0) == username {
			return &entity.AdminAccount{
				Username: cellString(row, 0),
				Password: cellString(row, 1),
			}, nil
		}
	}
	return nil, nil
}
