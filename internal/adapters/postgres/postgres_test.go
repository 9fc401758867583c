package postgres

import (
	"context"
	"errors"
	"listing-service/internal/core/domain"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow раскладывает values по указателям Scan
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

type fakeDB struct {
	execTag  pgconn.CommandTag
	execErr  error
	row      pgx.Row
	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }

func TestConstructorsRejectNilDB(t *testing.T) {
	_, err := NewListingSource(nil)
	assert.Error(t, err)
	_, err = NewFavoritesRepository(nil)
	assert.Error(t, err)
}

func TestListingSource_GetByID(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{
		int64(2), "반포 자이", "아파트", domain.TransactionSale, i64(850000000), (*int64)(nil), (*int64)(nil),
		132.0, 165.0, "15/25", "남향", 2020, true, 1.5,
		[]string{"a.jpg"}, "서울시 서초구 반포동", "", intp(4), intp(2), i64(350000), intp(1200),
		37.5046, 126.9989,
	}}}
	source, err := NewListingSource(db)
	require.NoError(t, err)

	p, err := source.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
	assert.Equal(t, int64(850000000), *p.Price)
	assert.Nil(t, p.Deposit)
	assert.Equal(t, 132.0, p.Area.Exclusive)
	assert.Equal(t, 4, *p.Rooms)
	assert.Equal(t, []any{int64(2)}, db.lastArgs)
}

func TestListingSource_GetByIDNotFound(t *testing.T) {
	source, err := NewListingSource(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})
	require.NoError(t, err)

	_, err = source.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	source, err = NewListingSource(&fakeDB{row: fakeRow{err: errors.New("conn reset")}})
	require.NoError(t, err)
	_, err = source.GetByID(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestListingSource_GetByIDsEmpty(t *testing.T) {
	source, err := NewListingSource(&fakeDB{})
	require.NoError(t, err)

	props, err := source.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, props)
	assert.Empty(t, props)
}

func TestPropertyRows(t *testing.T) {
	rows := propertyRows([]domain.Property{{ID: 7, Title: "t"}})
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 23)
	assert.Equal(t, []string{}, rows[0][14])
}

func TestFavoritesRepository_Add(t *testing.T) {
	visitor := uuid.New()

	db := &fakeDB{execTag: pgconn.NewCommandTag("INSERT 0 1")}
	repo, err := NewFavoritesRepository(db)
	require.NoError(t, err)
	added, err := repo.Add(context.Background(), visitor, 3)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []any{visitor, int64(3)}, db.lastArgs)

	db.execTag = pgconn.NewCommandTag("INSERT 0 0")
	added, err = repo.Add(context.Background(), visitor, 3)
	require.NoError(t, err)
	assert.False(t, added)

	db.execErr = &pgconn.PgError{Code: uniqueViolationCode}
	added, err = repo.Add(context.Background(), visitor, 3)
	require.NoError(t, err)
	assert.False(t, added)

	db.execErr = errors.New("connection refused")
	_, err = repo.Add(context.Background(), visitor, 3)
	assert.Error(t, err)
}

func TestFavoritesRepository_Remove(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo, err := NewFavoritesRepository(db)
	require.NoError(t, err)

	removed, err := repo.Remove(context.Background(), uuid.Nil, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	db.execTag = pgconn.NewCommandTag("DELETE 0")
	removed, err = repo.Remove(context.Background(), uuid.Nil, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.Contains(t, db.lastSQL, "CREATE TABLE IF NOT EXISTS properties")
	assert.Contains(t, db.lastSQL, "visitor_favorites")

	db.execErr = errors.New("permission denied")
	assert.Error(t, EnsureSchema(context.Background(), db))
}
