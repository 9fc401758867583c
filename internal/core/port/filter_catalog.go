package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// FilterCatalogPort отдает статические списки вариантов для панели фильтров
type FilterCatalogPort interface {
	GetOptionLists(ctx context.Context) (*domain.FilterOptions, error)
	GetDictionary(ctx context.Context, name string) ([]domain.DictionaryItem, error)
	DictionaryNames() []string
}
