package contract

import (
	"context"

	"notebook-share-be/internal/entity"
)

// NotebookRepository is implemented by both the relational store and the
// spreadsheet-backed store. FindByID returns (nil, nil) when no row matches.
type NotebookRepository interface {
	FindAll(ctx context.Context) ([]*entity.Notebook, error)
	FindByID(ctx context.Context, notebookID string) (*entity.Notebook, error)
	Create(ctx context.Context, notebook *entity.Notebook) error
	Update(ctx context.Context, notebook *entity.Notebook) error
}
