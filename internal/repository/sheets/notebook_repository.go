package sheets

import (
	"context"
	"fmt"

	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/repository/contract"
)

// notebooks worksheet columns: A notebook_id, B notebook_name, C owner, D created_date
const notebookReadRange = "notebooks!A2:D"

type NotebookRepository struct {
	store *Store
}

func NewNotebookRepository(store *Store) contract.NotebookRepository {
	return &NotebookRepository{store: store}
}

func (r *NotebookRepository) rowToEntity(row []interface{}) *entity.Notebook {
	return &entity.Notebook{
		NotebookID:  cellString(row, 0),
		Name:        cellString(row, 1),
		Owner:       cellString(row, 2),
		CreatedDate: parseTime(cellString(row, 3), dateLayout),
	}
}

func (r *NotebookRepository) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	rows, err := r.store.readRows(ctx, tableNotebooks, notebookReadRange)
	if err != nil {
		return nil, err
	}
	notebooks := make([]*entity.Notebook, 0, len(rows))
	for _, row := range rows {
		if cellString(row, 0) == "" {
			continue
		}
		notebooks = append(notebooks, r.rowToEntity(row))
	}
	return notebooks, nil
}

func (r *NotebookRepository) FindByID(ctx context.Context, notebookID string) (*entity.Notebook, error) {
	rows, err := r.store.readRows(ctx, tableNotebooks, notebookReadRange)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if cellString(row, 0) == notebookID {
			return r.rowToEntity(row), nil
		}
	}
	return nil, nil
}

func (r *NotebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	row := [][]interface{}{{
		notebook.NotebookID,
		notebook.Name,
		notebook.Owner,
		notebook.CreatedDate.Format(dateLayout),
	}}
	if err := r.store.values.Append(ctx, "notebooks!A:D", row); err != nil {
		return err
	}
	r.store.invalidate(tableNotebooks)
	return nil
}

// Update rewrites the name and owner cells of the matched row. The id and
// created_date cells stay untouched.
func (r *NotebookRepository) Update(ctx context.Context, notebook *entity.Notebook) error {
	rows, err := r.store.readRows(ctx, tableNotebooks, notebookReadRange)
	if err != nil {
		return err
	}
	for idx, row := range rows {
		if cellString(row, 0) != notebook.NotebookID {
			continue
		}
		sheetRow := idx + 2 // data starts on row 2
		updateRange := fmt.Sprintf("notebooks!B%d:C%d", sheetRow, sheetRow)
		values := [][]interface{}{{notebook.Name, notebook.Owner}}
		if err := r.store.values.Update(ctx, updateRange, values); err != nil {
			return err
		}
		r.store.invalidate(tableNotebooks)
		return nil
	}
	return serverutils.NewNotFound("notebook not found")
}
