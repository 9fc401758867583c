package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type IngestListingsUseCase interface {
	Execute(ctx context.Context, props []domain.Property) (int64, error)
}
