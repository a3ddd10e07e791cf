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

type NotebookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotebookMapper
}

func NewNotebookRepository(db *gorm.DB) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotebookMapper(),
	}
}

func (r *NotebookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NotebookRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	var models []*model.Notebook
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "created_date"})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NotebookRepositoryImpl) FindByID(ctx context.Context, notebookID string) (*entity.Notebook, error) {
	var m model.Notebook
	query := r.applySpecifications(r.db.WithContext(ctx), specification.Filter("notebook_id", notebookID))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NotebookRepositoryImpl) Create(ctx context.Context, notebook *entity.Notebook) error {
	m := r.mapper.ToModel(notebook)
	return r.db.WithContext(ctx).Create(m).Error
}

// Update overwrites name and owner only; notebook_id and created_date of the
// stored row are never touched.
func (r *NotebookRepositoryImpl) Update(ctx context.Context, notebook *entity.Notebook) error {
	query := r.applySpecifications(
		r.db.WithContext(ctx).Model(&model.Notebook{}),
		specification.Filter("notebook_id", notebook.NotebookID),
	)
	return query.Updates(map[string]interface{}{
		"notebook_name": notebook.Name,
		"owner":         notebook.Owner,
	}).Error
}
