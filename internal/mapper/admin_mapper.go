package mapper

import (
	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.AdminAccount) *entity.AdminAccount {
	if a == nil {
		return nil
	}
	return &entity.AdminAccount{
		Username: a.Username,
		Password: a.Password,
	}
}
