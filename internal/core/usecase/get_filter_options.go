package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	catalog port.FilterCatalogPort
	source  port.ListingSourcePort
}

func NewGetFilterOptionsUseCase(catalog port.FilterCatalogPort, source port.ListingSourcePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{catalog: catalog, source: source}
}

// Execute собирает списки вариантов и наблюдаемые диапазоны.
// Ошибка источника объявлений не критична: вернутся списки без диапазонов.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptionsUseCase",
	})

	ucLogger.Info("Use case started", nil)

	options, err := uc.catalog.GetOptionLists(ctx)
	if err != nil {
		ucLogger.Error("Filter catalog returned an error", err, nil)
		return nil, err
	}

	// --- Диапазоны по фактическим объявлениям ---
	props, err := uc.source.List(ctx)
	if err != nil {
		ucLogger.Error("WARN: Failed to get listings for ranges", err, nil)
		return options, nil
	}

	options.TotalCount = len(props)
	options.PriceRange = observedRange(props, func(p *domain.Property) (float64, bool) {
		price := p.ComparisonPrice()
		return float64(price), price > 0
	})
	options.AreaRange = observedRange(props, func(p *domain.Property) (float64, bool) {
		return p.Area.Exclusive, p.Area.Exclusive > 0
	})
	options.BuiltYearRange = observedRange(props, func(p *domain.Property) (float64, bool) {
		return float64(p.YearBuilt), p.YearBuilt > 0
	})

	ucLogger.Info("Use case finished successfully", port.Fields{"total_count": options.TotalCount})
	return options, nil
}

// observedRange возвращает nil, если ни у одного объявления нет значения
func observedRange(props []domain.Property, value func(p *domain.Property) (float64, bool)) *domain.NumericRange {
	var result *domain.NumericRange
	for i := range props {
		v, ok := value(&props[i])
		if !ok {
			continue
		}
		if result == nil {
			result = &domain.NumericRange{Min: v, Max: v}
			continue
		}
		if v < result.Min {
			result.Min = v
		}
		if v > result.Max {
			result.Max = v
		}
	}
	return result
}
