// Package sheets implements the repository contracts on top of the Google
// Sheets values API. Tables are worksheets, rows are addressed positionally
// (header on row 1, data from row 2), and lookups are linear scans over a
// full-table read. That matches the expected scale of hundreds of rows.
package sheets

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"google.golang.org/api/googleapi"
	sheetsapi "google.golang.org/api/sheets/v4"

	"notebook-share-be/internal/pkg/serverutils"
)

const (
	tableNotebooks   = "notebooks"
	tablePermissions = "permissions"
	tableAdmin       = "system_admin"

	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04"

	readAttempts = 3
)

// ValuesAPI is the slice of the spreadsheet API the store needs: full-range
// reads, in-place range updates and row appends.
type ValuesAPI interface {
	Get(ctx context.Context, readRange string) ([][]interface{}, error)
	Update(ctx context.Context, updateRange string, values [][]interface{}) error
	Append(ctx context.Context, appendRange string, values [][]interface{}) error
	Ping(ctx context.Context) error
}

type googleValues struct {
	srv           *sheetsapi.Service
	spreadsheetID string
}

func NewGoogleValues(srv *sheetsapi.Service, spreadsheetID string) ValuesAPI {
	return &googleValues{srv: srv, spreadsheetID: spreadsheetID}
}

func (g *googleValues) Get(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := g.srv.Spreadsheets.Values.Get(g.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *googleValues) Update(ctx context.Context, updateRange string, values [][]interface{}) error {
	vr := &sheetsapi.ValueRange{Values: values}
	_, err := g.srv.Spreadsheets.Values.Update(g.spreadsheetID, updateRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	return err
}

func (g *googleValues) Append(ctx context.Context, appendRange string, values [][]interface{}) error {
	vr := &sheetsapi.ValueRange{Values: values}
	_, err := g.srv.Spreadsheets.Values.Append(g.spreadsheetID, appendRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

func (g *googleValues) Ping(ctx context.Context) error {
	_, err := g.srv.Spreadsheets.Get(g.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}

// Store owns the shared read cache and retry policy for all sheet-backed
// repositories. Constructed once per process and reused.
type Store struct {
	values     ValuesAPI
	cache      *cache.Cache
	cacheTTL   time.Duration
	retryDelay time.Duration
}

func NewStore(values ValuesAPI, cacheTTL time.Duration) *Store {
	return &Store{
		values:     values,
		cache:      cache.New(cacheTTL, 5*time.Minute),
		cacheTTL:   cacheTTL,
		retryDelay: time.Second,
	}
}

// Ping verifies the spreadsheet is reachable. Called once at startup; a
// failure is fatal, there is no degraded mode.
func (s *Store) Ping(ctx context.Context) error {
	return s.values.Ping(ctx)
}

func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}

// readRows fetches a whole table. Rate-limited reads are retried up to three
// times with a fixed backoff; exhaustion surfaces a typed unavailable error
// so callers can tell "fetch failed" from "table is empty". Mutations never
// retry.
func (s *Store) readRows(ctx context.Context, table, readRange string) ([][]interface{}, error) {
	if s.cacheTTL > 0 {
		if v, found := s.cache.Get(table); found {
			return v.([][]interface{}), nil
		}
	}

	var lastErr error
	for attempt := 0; attempt < readAttempts; attempt++ {
		rows, err := s.values.Get(ctx, readRange)
		if err == nil {
			if s.cacheTTL > 0 {
				s.cache.Set(table, rows, cache.DefaultExpiration)
			}
			return rows, nil
		}
		if !isRateLimited(err) {
			return nil, err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
	return nil, serverutils.NewUnavailable("share store is rate limited", lastErr)
}

func (s *Store) invalidate(table string) {
	s.cache.Delete(table)
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	v, ok := row[idx].(string)
	if !ok {
		return ""
	}
	return v
}

// parseTime tolerates hand-edited cells: an unparseable value maps to the
// zero time instead of failing the whole read.
func parseTime(value string, layouts ...string) time.Time {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
