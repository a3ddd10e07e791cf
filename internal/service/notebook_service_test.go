package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/entity"
)

func newNotebookFixture() (INotebookService, *fakeFactory) {
	factory := newFakeFactory()
	svc := NewNotebookService(factory, nopLogger{})
	return svc, factory
}

func TestUpsertNotebookCreatesNewRow(t *testing.T) {
	svc, factory := newNotebookFixture()

	res, err := svc.Upsert(context.Background(), "alice", &dto.UpsertNotebookRequest{
		NotebookID: "NB1",
		Name:       "Research",
	})
	assert.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "NB1", res.NotebookID)

	rows := factory.uow.notebooks.notebooks
	assert.Len(t, rows, 1)
	assert.Equal(t, "NB1", rows[0].NotebookID)
	assert.Equal(t, "Research", rows[0].Name)
	assert.Equal(t, "alice", rows[0].Owner)
	assert.Equal(t, time.Now().Format("2006-01-02"), rows[0].CreatedDate.Format("2006-01-02"))
}

func TestUpsertNotebookUpdatesExistingRowInPlace(t *testing.T) {
	svc, factory := newNotebookFixture()

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	factory.uow.notebooks.notebooks = []*entity.Notebook{
		{NotebookID: "NB1", Name: "Research", Owner: "alice", CreatedDate: created},
	}

	res, err := svc.Upsert(context.Background(), "bob", &dto.UpsertNotebookRequest{
		NotebookID: "NB1",
		Name:       "Research v2",
	})
	assert.NoError(t, err)
	assert.False(t, res.Created)

	rows := factory.uow.notebooks.notebooks
	assert.Len(t, rows, 1, "upsert must not duplicate the row")
	assert.Equal(t, "Research v2", rows[0].Name)
	assert.Equal(t, "bob", rows[0].Owner)
	assert.Equal(t, created, rows[0].CreatedDate, "created_date must survive the update")
}

func TestUpsertNotebookGeneratesTimestampID(t *testing.T) {
	svc, factory := newNotebookFixture()

	res, err := svc.Upsert(context.Background(), "alice", &dto.UpsertNotebookRequest{
		NotebookID: "  ",
		Name:       "Untitled",
	})
	assert.NoError(t, err)
	assert.True(t, res.Created)

	id, parseErr := strconv.ParseInt(res.NotebookID, 10, 64)
	assert.NoError(t, parseErr)
	assert.InDelta(t, time.Now().Unix(), id, 5)

	assert.Len(t, factory.uow.notebooks.notebooks, 1)
}

func TestGetAllNotebooksCarriesDeepLink(t *testing.T) {
	svc, factory := newNotebookFixture()
	factory.uow.notebooks.notebooks = []*entity.Notebook{
		{NotebookID: "abc123", Name: "Research", Owner: "alice"},
	}

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "https://notebooklm.google.com/notebook/abc123", res[0].Link)
}
