package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ListingWriterPort сохраняет объявления пачкой, существующие id перезаписываются.
// Возвращает число затронутых строк.
type ListingWriterPort interface {
	UpsertListings(ctx context.Context, props []domain.Property) (int64, error)
}
