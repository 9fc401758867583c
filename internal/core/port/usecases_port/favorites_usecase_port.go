package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase interface {
	Execute(ctx context.Context, visitorID uuid.UUID, propertyID int64) error
}

type RemoveFromFavoritesUseCase interface {
	Execute(ctx context.Context, visitorID uuid.UUID, propertyID int64) error
}

type GetFavoritesUseCase interface {
	Execute(ctx context.Context, visitorID uuid.UUID) ([]domain.Property, error)
}
