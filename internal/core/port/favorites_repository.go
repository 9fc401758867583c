package port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort - хранилище избранного.
// Add и Remove идемпотентны, bool сообщает, изменилось ли состояние.
type FavoritesRepositoryPort interface {
	Add(ctx context.Context, visitorID uuid.UUID, propertyID int64) (bool, error)
	Remove(ctx context.Context, visitorID uuid.UUID, propertyID int64) (bool, error)
	FindByVisitor(ctx context.Context, visitorID uuid.UUID) ([]domain.FavoriteItem, error)
}
