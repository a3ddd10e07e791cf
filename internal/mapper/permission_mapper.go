package mapper

import (
	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/model"
)

type PermissionMapper struct{}

func NewPermissionMapper() *PermissionMapper {
	return &PermissionMapper{}
}

func (m *PermissionMapper) ToEntity(p *model.Permission) *entity.Permission {
	if p == nil {
		return nil
	}
	return &entity.Permission{
		NotebookID: p.NotebookID,
		UserEmail:  p.UserEmail,
		Role:       entity.PermissionRole(p.Role),
		Status:     entity.PermissionStatus(p.Status),
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToModel intentionally leaves ID zero: the surrogate key belongs to the
// relational store, rows are addressed by the (notebook_id, user_email) pair.
func (m *PermissionMapper) ToModel(p *entity.Permission) *model.Permission {
	if p == nil {
		return nil
	}
	return &model.Permission{
		NotebookID: p.NotebookID,
		UserEmail:  p.UserEmail,
		Role:       string(p.Role),
		Status:     string(p.Status),
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m *PermissionMapper) ToEntities(permissions []*model.Permission) []*entity.Permission {
	entities := make([]*entity.Permission, len(permissions))
	for i, p := range permissions {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PermissionMapper) ToModels(permissions []*entity.Permission) []*model.Permission {
	models := make([]*model.Permission, len(permissions))
	for i, p := range permissions {
		models[i] = m.ToModel(p)
	}
	return models
}
