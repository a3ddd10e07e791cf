package mapper

import (
	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/model"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	return &entity.Notebook{
		NotebookID:  n.NotebookID,
		Name:        n.NotebookName,
		Owner:       n.Owner,
		CreatedDate: n.CreatedDate,
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		NotebookID:   n.NotebookID,
		NotebookName: n.Name,
		Owner:        n.Owner,
		CreatedDate:  n.CreatedDate,
	}
}

func (m *NotebookMapper) ToEntities(notebooks []*model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
