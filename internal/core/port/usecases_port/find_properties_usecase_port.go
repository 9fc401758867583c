package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.PropertySearchResult, error)
}
