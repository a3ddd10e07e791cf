package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/mapper"
	"notebook-share-be/internal/model"
	"notebook-share-be/internal/repository/contract"
	"notebook-share-be/internal/repository/specification"
)

type AdminRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminMapper
}

func NewAdminRepository(db *gorm.DB) contract.AdminRepository {
	return &AdminRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminMapper(),
	}
}

func (r *AdminRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	var m model.AdminAccount
	query := specification.ByUsername{Username: username}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
