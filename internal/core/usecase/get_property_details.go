package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	source port.ListingSourcePort
}

func NewGetPropertyDetailsUseCase(source port.ListingSourcePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{source: source}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id int64) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if id <= 0 {
		return nil, domain.ErrInvalidPropertyID
	}

	property, err := uc.source.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Listing source returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
