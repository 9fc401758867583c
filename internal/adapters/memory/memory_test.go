package memory

import (
	"context"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingSource_ListReturnsFreshCopy(t *testing.T) {
	src := NewListingSource()
	ctx := context.Background()

	first, err := src.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)

	*first[0].Price = 1
	first[0].Images[0] = "mutated"
	first[1].Title = "mutated"

	second, err := src.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(850000000), *second[0].Price)
	assert.NotEqual(t, "mutated", second[0].Images[0])
	assert.Equal(t, "서초구 반포동 리모델링 아파트", second[1].Title)
}

func TestListingSource_InsertionOrder(t *testing.T) {
	props, err := NewListingSource().List(context.Background())
	require.NoError(t, err)

	ids := make([]int64, len(props))
	for i, p := range props {
		ids[i] = p.ID
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
}

func TestListingSource_GetByID(t *testing.T) {
	src := NewListingSource()

	p, err := src.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(280000000), p.ComparisonPrice())

	_, err = src.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestListingSource_GetByIDsKeepsOrder(t *testing.T) {
	props, err := NewListingSource().GetByIDs(context.Background(), []int64{4, 99, 2})
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, int64(4), props[0].ID)
	assert.Equal(t, int64(2), props[1].ID)
}

func TestListingSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewListingSource().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilterCatalog_OptionLists(t *testing.T) {
	opts, err := NewFilterCatalog().GetOptionLists(context.Background())
	require.NoError(t, err)

	assert.Len(t, opts.TransactionTypes, 3)
	assert.Len(t, opts.PropertyTypes, 6)
	assert.Equal(t, 1234, opts.PropertyTypes[0].Count)
	assert.Len(t, opts.StructureTypes, 5)
	require.Len(t, opts.RoomCounts, 5)
	assert.Equal(t, "5개", opts.RoomCounts[4].Label)
	assert.Len(t, opts.BathroomCounts, 3)
	assert.Len(t, opts.Directions, 8)
}

func TestFilterCatalog_Dictionaries(t *testing.T) {
	catalog := NewFilterCatalog()
	for _, name := range catalog.DictionaryNames() {
		items, err := catalog.GetDictionary(context.Background(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, items, name)
	}

	items, err := catalog.GetDictionary(context.Background(), constants.DictDirections)
	require.NoError(t, err)
	assert.Equal(t, domain.DictionaryItem{SystemName: "north", DisplayName: "북"}, items[0])

	_, err = catalog.GetDictionary(context.Background(), "unknown")
	assert.Error(t, err)
}

func TestShowcase(t *testing.T) {
	showcase, err := NewShowcaseSource().GetShowcase(context.Background())
	require.NoError(t, err)
	require.Len(t, showcase.Properties, 3)
	assert.True(t, showcase.Properties[0].Featured)
	assert.Equal(t, "https://picsum.photos/400/300?random=2", showcase.Properties[1].ImageURL)
	assert.Len(t, showcase.FilterOptions.PriceRanges, 4)
}

func TestFavoritesRepository_AddRemoveIdempotent(t *testing.T) {
	repo := NewFavoritesRepository()
	ctx := context.Background()
	visitor := uuid.New()

	added, err := repo.Add(ctx, visitor, 1)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(ctx, visitor, 1)
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := repo.Remove(ctx, visitor, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, visitor, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFavoritesRepository_NewestFirstPerVisitor(t *testing.T) {
	repo := NewFavoritesRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()
	visitor, other := uuid.New(), uuid.New()

	_, _ = repo.Add(ctx, visitor, 2)
	_, _ = repo.Add(ctx, visitor, 1)
	_, _ = repo.Add(ctx, other, 3)

	items, err := repo.FindByVisitor(ctx, visitor)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].PropertyID)
	assert.Equal(t, int64(2), items[1].PropertyID)

	items, err = repo.FindByVisitor(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFavoritesRepository_Concurrent(t *testing.T) {
	repo := NewFavoritesRepository()
	ctx := context.Background()
	visitor := uuid.New()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, _ = repo.Add(ctx, visitor, id)
			_, _ = repo.FindByVisitor(ctx, visitor)
		}(int64(i))
	}
	wg.Wait()

	items, err := repo.FindByVisitor(ctx, visitor)
	require.NoError(t, err)
	assert.Len(t, items, 50)
}
