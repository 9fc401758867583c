package port

import (
	"context"
	"listing-service/internal/core/domain"
)

type FavoriteEventsPort interface {
	PublishFavoriteEvent(ctx context.Context, event domain.FavoriteEvent) error
}
