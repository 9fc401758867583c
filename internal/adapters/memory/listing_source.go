package memory

import (
	"context"
	"fmt"
	"listing-service/internal/core/domain"
)

// ListingSource отдает объявления из фиксированного набора.
// Набор не меняется после создания, поэтому блокировки не нужны.
type ListingSource struct {
	props []domain.Property
	byID  map[int64]int
}

// NewListingSource без аргументов использует SampleProperties
func NewListingSource(props ...domain.Property) *ListingSource {
	if len(props) == 0 {
		props = SampleProperties()
	}
	s := &ListingSource{
		props: make([]domain.Property, len(props)),
		byID:  make(map[int64]int, len(props)),
	}
	for i, p := range props {
		s.props[i] = p.Clone()
		s.byID[p.ID] = i
	}
	return s
}

// List возвращает новую копию набора на каждый вызов
func (s *ListingSource) List(ctx context.Context) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]domain.Property, len(s.props))
	for i, p := range s.props {
		result[i] = p.Clone()
	}
	return result, nil
}

func (s *ListingSource) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("listing %d: %w", id, domain.ErrPropertyNotFound)
	}
	p := s.props[idx].Clone()
	return &p, nil
}

// GetByIDs сохраняет порядок ids, неизвестные id пропускаются
func (s *ListingSource) GetByIDs(ctx context.Context, ids []int64) ([]domain.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		if idx, ok := s.byID[id]; ok {
			result = append(result, s.props[idx].Clone())
		}
	}
	return result, nil
}
