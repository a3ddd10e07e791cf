package contract

import (
	"context"

	"notebook-share-be/internal/entity"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error)
}
