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

type PermissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PermissionMapper
}

func NewPermissionRepository(db *gorm.DB) contract.PermissionRepository {
	return &PermissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewPermissionMapper(),
	}
}

func (r *PermissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PermissionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Permission, error) {
	var models []*model.Permission
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PermissionRepositoryImpl) FindByPair(ctx context.Context, notebookID, email string) (*entity.Permission, error) {
	var m model.Permission
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByNotebookID{NotebookID: notebookID},
		specification.ByUserEmail{Email: email},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PermissionRepositoryImpl) FindActiveByNotebook(ctx context.Context, notebookID string) ([]*entity.Permission, error) {
	var models []*model.Permission
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByNotebookID{NotebookID: notebookID},
		specification.ByStatus{Status: entity.StatusActive},
		specification.OrderBy{Field: "user_email"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, permission *entity.Permission) error {
	m := r.mapper.ToModel(permission)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PermissionRepositoryImpl) Update(ctx context.Context, permission *entity.Permission) error {
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Permission{}),
		specification.ByNotebookID{NotebookID: permission.NotebookID},
		specification.ByUserEmail{Email: permission.UserEmail},
	)
	return query.Updates(map[string]interface{}{
		"role":       string(permission.Role),
		"status":     string(permission.Status),
		"updated_at": permission.UpdatedAt,
	}).Error
}

func (r *PermissionRepositoryImpl) CreateBatch(ctx context.Context, permissions []*entity.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	models := r.mapper.ToModels(permissions)
	return r.db.WithContext(ctx).Create(models).Error
}
