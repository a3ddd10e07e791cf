package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"

	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/pkg/serverutils"
)

// fakeValues scripts the spreadsheet surface: tables hold the sheet contents,
// errs is a per-Get error queue consumed front to back, and every call is
// recorded for assertions on ranges and payloads.
type fakeValues struct {
	tables map[string][][]interface{}
	errs   []error

	getCalls    []string
	updateCalls []struct {
		updateRange string
		values      [][]interface{}
	}
	appendCalls []struct {
		appendRange string
		values      [][]interface{}
	}
}

func newFakeValues() *fakeValues {
	return &fakeValues{tables: map[string][][]interface{}{}}
}

func tableOfRange(r string) string {
	for i := 0; i < len(r); i++ {
		if r[i] == '!' {
			return r[:i]
		}
	}
	return r
}

func (f *fakeValues) Get(ctx context.Context, readRange string) ([][]interface{}, error) {
	f.getCalls = append(f.getCalls, readRange)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.tables[tableOfRange(readRange)], nil
}

func (f *fakeValues) Update(ctx context.Context, updateRange string, values [][]interface{}) error {
	f.updateCalls = append(f.updateCalls, struct {
		updateRange string
		values      [][]interface{}
	}{updateRange, values})
	return nil
}

func (f *fakeValues) Append(ctx context.Context, appendRange string, values [][]interface{}) error {
	f.appendCalls = append(f.appendCalls, struct {
		appendRange string
		values      [][]interface{}
	}{appendRange, values})
	f.tables[tableOfRange(appendRange)] = append(f.tables[tableOfRange(appendRange)], values...)
	return nil
}

func (f *fakeValues) Ping(ctx context.Context) error { return nil }

func newTestStore(values *fakeValues, cacheTTL time.Duration) *Store {
	store := NewStore(values, cacheTTL)
	store.retryDelay = time.Millisecond
	return store
}

func rateLimitErr() error {
	return &googleapi.Error{Code: 429, Message: "Quota exceeded"}
}

func TestReadRowsRetriesRateLimitedReads(t *testing.T) {
	values := newFakeValues()
	values.tables["permissions"] = [][]interface{}{
		{"NB1", "a@x.com", "Viewer", "Active", "2024-05-01 10:00"},
	}
	values.errs = []error{rateLimitErr(), rateLimitErr()}
	store := newTestStore(values, 0)

	rows, err := store.readRows(context.Background(), tablePermissions, permissionReadRange)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Len(t, values.getCalls, 3)
}

func TestReadRowsExhaustedRetriesIsUnavailable(t *testing.T) {
	values := newFakeValues()
	values.errs = []error{rateLimitErr(), rateLimitErr(), rateLimitErr()}
	store := newTestStore(values, 0)

	_, err := store.readRows(context.Background(), tablePermissions, permissionReadRange)

	var appErr *serverutils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, serverutils.KindUnavailable, appErr.Kind)
	assert.Len(t, values.getCalls, 3)
}

func TestReadRowsDoesNotRetryOtherErrors(t *testing.T) {
	values := newFakeValues()
	values.errs = []error{&googleapi.Error{Code: 403, Message: "forbidden"}}
	store := newTestStore(values, 0)

	_, err := store.readRows(context.Background(), tablePermissions, permissionReadRange)

	var gerr *googleapi.Error
	assert.True(t, errors.As(err, &gerr))
	assert.Equal(t, 403, gerr.Code)
	assert.Len(t, values.getCalls, 1)
}

func TestReadRowsServesFromCache(t *testing.T) {
	values := newFakeValues()
	values.tables["notebooks"] = [][]interface{}{{"NB1", "Research", "alice", "2024-05-01"}}
	store := newTestStore(values, time.Minute)
	repo := NewNotebookRepository(store)

	_, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	_, err = repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, values.getCalls, 1, "second read must come from cache")
}

func TestWritesInvalidateCache(t *testing.T) {
	values := newFakeValues()
	store := newTestStore(values, time.Minute)
	repo := NewPermissionRepository(store)
	ctx := context.Background()

	_, err := repo.FindAll(ctx)
	assert.NoError(t, err)

	err = repo.Create(ctx, &entity.Permission{NotebookID: "NB1", UserEmail: "a@x.com", Role: entity.RoleViewer, Status: entity.StatusActive})
	assert.NoError(t, err)

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Len(t, values.getCalls, 2, "write must evict the cached table")
}

func TestPermissionUpdateAddressesMatchedRow(t *testing.T) {
	values := newFakeValues()
	values.tables["permissions"] = [][]interface{}{
		{"NB1", "a@x.com", "Viewer", "Active", "2024-05-01 10:00"},
		{"NB1", "b@x.com", "Viewer", "Active", "2024-05-01 10:00"},
	}
	store := newTestStore(values, 0)
	repo := NewPermissionRepository(store)

	updated := time.Date(2024, 6, 2, 9, 15, 0, 0, time.UTC)
	err := repo.Update(context.Background(), &entity.Permission{
		NotebookID: "NB1",
		UserEmail:  "b@x.com",
		Role:       entity.RoleEditor,
		Status:     entity.StatusActive,
		UpdatedAt:  updated,
	})
	assert.NoError(t, err)

	assert.Len(t, values.updateCalls, 1)
	call := values.updateCalls[0]
	assert.Equal(t, "permissions!C3:E3", call.updateRange)
	assert.Equal(t, [][]interface{}{{"Editor", "Active", "2024-06-02 09:15"}}, call.values)
}

func TestPermissionUpdateMissingPairIsNotFound(t *testing.T) {
	values := newFakeValues()
	store := newTestStore(values, 0)
	repo := NewPermissionRepository(store)

	err := repo.Update(context.Background(), &entity.Permission{NotebookID: "NB1", UserEmail: "nobody@x.com"})

	var appErr *serverutils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
	assert.Empty(t, values.updateCalls)
}

func TestPermissionCreateBatchAppendsAllRowsAtOnce(t *testing.T) {
	values := newFakeValues()
	store := newTestStore(values, 0)
	repo := NewPermissionRepository(store)

	now := time.Date(2024, 6, 2, 9, 15, 0, 0, time.UTC)
	err := repo.CreateBatch(context.Background(), []*entity.Permission{
		{NotebookID: "NB1", UserEmail: "a@x.com", Role: entity.RoleViewer, Status: entity.StatusActive, UpdatedAt: now},
		{NotebookID: "NB1", UserEmail: "b@x.com", Role: entity.RoleEditor, Status: entity.StatusActive, UpdatedAt: now},
	})
	assert.NoError(t, err)

	assert.Len(t, values.appendCalls, 1, "a batch is one append call")
	assert.Equal(t, "permissions!A:E", values.appendCalls[0].appendRange)
	assert.Len(t, values.appendCalls[0].values, 2)
}

func TestPermissionCreateBatchEmptyIsNoop(t *testing.T) {
	values := newFakeValues()
	store := newTestStore(values, 0)
	repo := NewPermissionRepository(store)

	assert.NoError(t, repo.CreateBatch(context.Background(), nil))
	assert.Empty(t, values.appendCalls)
}

func TestNotebookUpdateRewritesNameAndOwnerCells(t *testing.T) {
	values := newFakeValues()
	values.tables["notebooks"] = [][]interface{}{
		{"NB1", "Research", "alice", "2024-05-01"},
	}
	store := newTestStore(values, 0)
	repo := NewNotebookRepository(store)

	err := repo.Update(context.Background(), &entity.Notebook{NotebookID: "NB1", Name: "Research v2", Owner: "bob"})
	assert.NoError(t, err)

	assert.Len(t, values.updateCalls, 1)
	call := values.updateCalls[0]
	assert.Equal(t, "notebooks!B2:C2", call.updateRange)
	assert.Equal(t, [][]interface{}{{"Research v2", "bob"}}, call.values)
}

func TestNotebookFindByIDParsesRow(t *testing.T) {
	values := newFakeValues()
	values.tables["notebooks"] = [][]interface{}{
		{"NB1", "Research", "alice", "2024-05-01"},
		{"NB2", "Notes", "bob", "not-a-date"},
	}
	store := newTestStore(values, 0)
	repo := NewNotebookRepository(store)
	ctx := context.Background()

	nb, err := repo.FindByID(ctx, "NB1")
	assert.NoError(t, err)
	assert.Equal(t, "Research", nb.Name)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), nb.CreatedDate)

	nb, err = repo.FindByID(ctx, "NB2")
	assert.NoError(t, err)
	assert.True(t, nb.CreatedDate.IsZero(), "bad dates degrade to the zero time")

	nb, err = repo.FindByID(ctx, "NB3")
	assert.NoError(t, err)
	assert.Nil(t, nb)
}

func TestPermissionFindAllSkipsBlankRows(t *testing.T) {
	values := newFakeValues()
	values.tables["permissions"] = [][]interface{}{
		{"NB1", "a@x.com", "Viewer", "Active", "2024-05-01 10:00"},
		{"", "", "", "", ""},
		{"NB1", "b@x.com", "Editor", "Revoked", "2024-05-02 11:30"},
	}
	store := newTestStore(values, 0)
	repo := NewPermissionRepository(store)

	all, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, entity.StatusRevoked, all[1].Status)
	assert.Equal(t, time.Date(2024, 5, 2, 11, 30, 0, 0, time.UTC), all[1].UpdatedAt)
}

func TestAdminFindByUsername(t *testing.T) {
	values := newFakeValues()
	values.tables["system_admin"] = [][]interface{}{
		{"admin", "s3cret"},
	}
	store := newTestStore(values, 0)
	repo := NewAdminRepository(store)
	ctx := context.Background()

	account, err := repo.FindByUsername(ctx, "admin")
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", account.Password)

	account, err = repo.FindByUsername(ctx, "root")
	assert.NoError(t, err)
	assert.Nil(t, account)
}
