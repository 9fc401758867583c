package rabbitmq

import (
	"listing-service/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// FavoriteEventDTO - тело событий PropertyFavoritedEvent и PropertyUnfavoritedEvent
type FavoriteEventDTO struct {
	EventID    uuid.UUID `json:"event_id"`
	VisitorID  uuid.UUID `json:"visitor_id"`
	PropertyID int64     `json:"property_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toFavoriteEventDTO(event domain.FavoriteEvent) FavoriteEventDTO {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return FavoriteEventDTO{
		EventID:    event.EventID,
		VisitorID:  event.VisitorID,
		PropertyID: event.PropertyID,
		OccurredAt: occurredAt.UTC(),
	}
}
