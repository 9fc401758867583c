package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Property, error)
}
