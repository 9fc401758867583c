package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	source port.ListingSourcePort
}

func NewFindPropertiesUseCase(source port.ListingSourcePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{source: source}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.PropertySearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"sort":     criteria.Sort,
	})

	ucLogger.Info("Use case started", nil)

	all, err := uc.source.List(ctx)
	if err != nil {
		ucLogger.Error("Listing source returned an error", err, nil)
		return nil, err
	}

	filtered := applyFilters(all, &criteria, ucLogger)
	sorted := sortProperties(filtered, criteria.Sort)

	areaUnit := criteria.AreaUnit
	if !domain.IsKnownAreaUnit(areaUnit) {
		areaUnit = domain.AreaUnitSqm
	}

	result := &domain.PropertySearchResult{
		Properties: sorted,
		TotalCount: len(sorted),
		HasFilters: criteria.HasFilters(),
		AreaUnit:   areaUnit,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_listings": len(all),
		"total_found":    result.TotalCount,
		"has_filters":    result.HasFilters,
	})

	return result, nil
}
