package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetShowcaseUseCase struct {
	source port.ShowcaseSourcePort
}

func NewGetShowcaseUseCase(source port.ShowcaseSourcePort) *GetShowcaseUseCase {
	return &GetShowcaseUseCase{source: source}
}

func (uc *GetShowcaseUseCase) Execute(ctx context.Context) (*domain.Showcase, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetShowcase"})
	ucLogger.Info("Use case started", nil)

	showcase, err := uc.source.GetShowcase(ctx)
	if err != nil {
		ucLogger.Error("Showcase source returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"properties": len(showcase.Properties)})
	return showcase, nil
}
