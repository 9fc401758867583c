package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase struct {
	repo   port.FavoritesRepositoryPort
	source port.ListingSourcePort
	events port.FavoriteEventsPort
}

// NewAddToFavoritesUseCase - events может быть nil, тогда события не публикуются
func NewAddToFavoritesUseCase(repo port.FavoritesRepositoryPort, source port.ListingSourcePort, events port.FavoriteEventsPort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{repo: repo, source: source, events: events}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, visitorID uuid.UUID, propertyID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddToFavorites",
		"visitor_id":  visitorID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	if propertyID <= 0 {
		return domain.ErrInvalidPropertyID
	}

	// Объявление должно существовать
	if _, err := uc.source.GetByID(ctx, propertyID); err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return err
	}

	added, err := uc.repo.Add(ctx, visitorID, propertyID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	if added {
		publishFavoriteEvent(ctx, uc.events, ucLogger, visitorID, propertyID, true)
	} else {
		ucLogger.Debug("Property already in favorites", nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type RemoveFromFavoritesUseCase struct {
	repo   port.FavoritesRepositoryPort
	events port.FavoriteEventsPort
}

func NewRemoveFromFavoritesUseCase(repo port.FavoritesRepositoryPort, events port.FavoriteEventsPort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{repo: repo, events: events}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, visitorID uuid.UUID, propertyID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFromFavorites",
		"visitor_id":  visitorID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	if propertyID <= 0 {
		return domain.ErrInvalidPropertyID
	}

	removed, err := uc.repo.Remove(ctx, visitorID, propertyID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	if removed {
		publishFavoriteEvent(ctx, uc.events, ucLogger, visitorID, propertyID, false)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"removed": removed})
	return nil
}

// publishFavoriteEvent - fire-and-forget: ошибка публикации только логируется
func publishFavoriteEvent(ctx context.Context, events port.FavoriteEventsPort, logger port.LoggerPort, visitorID uuid.UUID, propertyID int64, added bool) {
	if events == nil {
		return
	}
	event := domain.FavoriteEvent{
		EventID:    uuid.New(),
		VisitorID:  visitorID,
		PropertyID: propertyID,
		OccurredAt: time.Now().UTC(),
		Added:      added,
	}
	if err := events.PublishFavoriteEvent(ctx, event); err != nil {
		logger.Error("Failed to publish favorite event", err, port.Fields{"event_id": event.EventID})
	}
}

type GetFavoritesUseCase struct {
	repo   port.FavoritesRepositoryPort
	source port.ListingSourcePort
}

func NewGetFavoritesUseCase(repo port.FavoritesRepositoryPort, source port.ListingSourcePort) *GetFavoritesUseCase {
	return &GetFavoritesUseCase{repo: repo, source: source}
}

// Execute возвращает объявления из избранного, новые первыми.
// Объявления, которых больше нет в источнике, пропускаются.
func (uc *GetFavoritesUseCase) Execute(ctx context.Context, visitorID uuid.UUID) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetFavorites",
		"visitor_id": visitorID,
	})

	ucLogger.Info("Use case started", nil)

	items, err := uc.repo.FindByVisitor(ctx, visitorID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if len(items) == 0 {
		ucLogger.Info("Use case finished successfully, no favorites", nil)
		return []domain.Property{}, nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.PropertyID
	}

	props, err := uc.source.GetByIDs(ctx, ids)
	if err != nil {
		ucLogger.Error("Listing source returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"favorites":      len(items),
		"found_listings": len(props),
	})
	return props, nil
}
