package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"strings"
)

type IngestListingsUseCase struct {
	writer port.ListingWriterPort
}

func NewIngestListingsUseCase(writer port.ListingWriterPort) *IngestListingsUseCase {
	return &IngestListingsUseCase{writer: writer}
}

// Execute сохраняет корректные объявления, некорректные пропускаются с предупреждением.
// При повторе id в пачке побеждает последнее объявление.
func (uc *IngestListingsUseCase) Execute(ctx context.Context, props []domain.Property) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "IngestListings",
		"batch_size": len(props),
	})

	ucLogger.Debug("Use case started", nil)

	valid := make([]domain.Property, 0, len(props))
	position := make(map[int64]int, len(props))
	for _, p := range props {
		if err := validateListing(p); err != nil {
			ucLogger.Warn("Skipping invalid listing", port.Fields{"property_id": p.ID, "error": err.Error()})
			continue
		}
		if idx, ok := position[p.ID]; ok {
			valid[idx] = p
			continue
		}
		position[p.ID] = len(valid)
		valid = append(valid, p)
	}

	if len(valid) == 0 {
		ucLogger.Info("No valid listings in batch", nil)
		return 0, nil
	}

	affected, err := uc.writer.UpsertListings(ctx, valid)
	if err != nil {
		ucLogger.Error("Failed to upsert listings", err, nil)
		return 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"accepted": len(valid),
		"skipped":  len(props) - len(valid),
		"affected": affected,
	})
	return affected, nil
}

func validateListing(p domain.Property) error {
	if p.ID <= 0 {
		return domain.ErrInvalidPropertyID
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is empty")
	}
	if !domain.IsKnownTransaction(p.TransactionType) {
		return errors.New("unknown transaction type " + p.TransactionType)
	}
	return nil
}
