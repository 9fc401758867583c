package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetShowcaseUseCase interface {
	Execute(ctx context.Context) (*domain.Showcase, error)
}
