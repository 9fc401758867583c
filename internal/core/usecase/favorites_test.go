package usecase

import (
	"context"
	"errors"
	"listing-service/internal/adapters/memory"
	"listing-service/internal/core/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEvents struct {
	events []domain.FavoriteEvent
	err    error
}

func (r *recordingEvents) PublishFavoriteEvent(_ context.Context, event domain.FavoriteEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func TestAddToFavorites_PublishesOnlyOnChange(t *testing.T) {
	repo := memory.NewFavoritesRepository()
	events := &recordingEvents{}
	uc := NewAddToFavoritesUseCase(repo, memory.NewListingSource(), events)
	visitor := uuid.New()

	require.NoError(t, uc.Execute(context.Background(), visitor, 1))
	require.NoError(t, uc.Execute(context.Background(), visitor, 1))

	require.Len(t, events.events, 1)
	assert.True(t, events.events[0].Added)
	assert.Equal(t, visitor, events.events[0].VisitorID)
	assert.Equal(t, int64(1), events.events[0].PropertyID)
	assert.NotEqual(t, uuid.Nil, events.events[0].EventID)
}

func TestAddToFavorites_Errors(t *testing.T) {
	uc := NewAddToFavoritesUseCase(memory.NewFavoritesRepository(), memory.NewListingSource(), nil)

	err := uc.Execute(context.Background(), uuid.Nil, 77)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	err = uc.Execute(context.Background(), uuid.Nil, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidPropertyID)
}

func TestAddToFavorites_PublishFailureDoesNotFail(t *testing.T) {
	events := &recordingEvents{err: errors.New("broker down")}
	uc := NewAddToFavoritesUseCase(memory.NewFavoritesRepository(), memory.NewListingSource(), events)

	assert.NoError(t, uc.Execute(context.Background(), uuid.New(), 2))
	assert.Len(t, events.events, 1)
}

func TestRemoveFromFavorites(t *testing.T) {
	repo := memory.NewFavoritesRepository()
	events := &recordingEvents{}
	visitor := uuid.New()
	_, err := repo.Add(context.Background(), visitor, 3)
	require.NoError(t, err)

	uc := NewRemoveFromFavoritesUseCase(repo, events)
	require.NoError(t, uc.Execute(context.Background(), visitor, 3))
	require.NoError(t, uc.Execute(context.Background(), visitor, 3))

	require.Len(t, events.events, 1)
	assert.False(t, events.events[0].Added)

	assert.ErrorIs(t, uc.Execute(context.Background(), visitor, 0), domain.ErrInvalidPropertyID)
}

func TestGetFavorites(t *testing.T) {
	repo := memory.NewFavoritesRepository()
	source := memory.NewListingSource()
	visitor := uuid.New()
	add := NewAddToFavoritesUseCase(repo, source, nil)
	require.NoError(t, add.Execute(context.Background(), visitor, 2))
	require.NoError(t, add.Execute(context.Background(), visitor, 4))

	props, err := NewGetFavoritesUseCase(repo, source).Execute(context.Background(), visitor)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 4}, ids(props))

	empty, err := NewGetFavoritesUseCase(repo, source).Execute(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
