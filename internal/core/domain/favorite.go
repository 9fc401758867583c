package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteItem - одна запись избранного посетителя.
// Анонимный посетитель имеет VisitorID = uuid.Nil.
type FavoriteItem struct {
	VisitorID  uuid.UUID
	PropertyID int64
	CreatedAt  time.Time
}

// FavoriteEvent - событие добавления или удаления из избранного
type FavoriteEvent struct {
	EventID    uuid.UUID
	VisitorID  uuid.UUID
	PropertyID int64
	OccurredAt time.Time
	Added      bool
}
