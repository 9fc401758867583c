package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ListingSourcePort - источник объявлений. Каждый вызов List возвращает
// собственную копию набора в порядке добавления.
type ListingSourcePort interface {
	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Property, error)
}

// ShowcaseSourcePort - данные для витрины UI-компонентов
type ShowcaseSourcePort interface {
	GetShowcase(ctx context.Context) (*domain.Showcase, error)
}
