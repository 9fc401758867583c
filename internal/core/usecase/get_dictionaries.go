package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"strings"
)

type GetDictionariesUseCase struct {
	catalog port.FilterCatalogPort
}

func NewGetDictionariesUseCase(catalog port.FilterCatalogPort) *GetDictionariesUseCase {
	return &GetDictionariesUseCase{catalog: catalog}
}

// Execute получает список имен справочников и возвращает их содержимое.
// Пустой список означает "все справочники", неизвестные имена пропускаются.
func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string) (map[string][]domain.DictionaryItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDictionariesUseCase",
	})

	ucLogger.Info("Use case started", nil)

	requested := make([]string, 0, len(names))
	for _, name := range names {
		if n := strings.TrimSpace(name); n != "" {
			requested = append(requested, n)
		}
	}
	if len(requested) == 0 {
		requested = uc.catalog.DictionaryNames()
	}

	result := make(map[string][]domain.DictionaryItem, len(requested))
	for _, name := range requested {
		items, err := uc.catalog.GetDictionary(ctx, name)
		if err != nil {
			ucLogger.Warn("Skipping dictionary", port.Fields{"dictionary": name, "error": err.Error()})
			continue
		}
		result[name] = items
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"dictionaries": len(result)})
	return result, nil
}
