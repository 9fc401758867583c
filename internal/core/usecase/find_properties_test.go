package usecase

import (
	"context"
	"errors"
	"listing-service/internal/adapters/memory"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(props []domain.Property) []int64 {
	result := make([]int64, len(props))
	for i, p := range props {
		result[i] = p.ID
	}
	return result
}

func runFilters(t *testing.T, c domain.FilterCriteria) []int64 {
	t.Helper()
	props, err := memory.NewListingSource().List(context.Background())
	require.NoError(t, err)
	return ids(applyFilters(props, &c, contextkeys.LoggerFromContext(context.Background())))
}

func boolPtr(v bool) *bool { return &v }

func TestApplyFilters_EmptyCriteriaKeepsEverythingInOrder(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3, 4}, runFilters(t, domain.FilterCriteria{}))
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []int64
	}{
		{"transaction jeonse", domain.FilterCriteria{TransactionType: "jeonse"}, []int64{2}},
		{"unknown transaction is no-op", domain.FilterCriteria{TransactionType: "lease"}, []int64{1, 2, 3, 4}},
		{"property types", domain.FilterCriteria{PropertyTypes: []string{"apartment", "castle"}}, []int64{2, 3}},
		{"only unknown property types", domain.FilterCriteria{PropertyTypes: []string{"castle"}}, []int64{1, 2, 3, 4}},
		{
			"sale max only, other transactions pass",
			domain.FilterCriteria{SalePrice: domain.RangeParams{"max": "500"}},
			[]int64{2, 3},
		},
		{
			"sale max 5억",
			domain.FilterCriteria{SalePrice: domain.RangeParams{"max": "50000"}},
			[]int64{2, 3, 4},
		},
		{
			"monthly rent in 만원",
			domain.FilterCriteria{MonthlyRent: domain.RangeParams{"min": "100", "max": "200"}},
			[]int64{1, 2, 3, 4},
		},
		{
			"monthly rent too high",
			domain.FilterCriteria{MonthlyRent: domain.RangeParams{"min": "200"}},
			[]int64{1, 2, 4},
		},
		{
			"exclusive area in pyeong",
			domain.FilterCriteria{ExclusiveArea: domain.RangeParams{"min": "30"}, AreaUnit: domain.AreaUnitPyeong},
			[]int64{2, 3},
		},
		{
			"supply area in sqm",
			domain.FilterCriteria{SupplyArea: domain.RangeParams{"max": "115"}},
			[]int64{1, 4},
		},
		{
			"built year min only",
			domain.FilterCriteria{BuiltYear: domain.RangeParams{"min": "2020"}},
			[]int64{1, 3},
		},
		{"no elevator", domain.FilterCriteria{HasElevator: boolPtr(false)}, []int64{4}},
		{"with photos", domain.FilterCriteria{HasPhotos: boolPtr(true)}, []int64{1, 2, 3, 4}},
		{"without photos", domain.FilterCriteria{HasPhotos: boolPtr(false)}, []int64{}},
		{"direction code", domain.FilterCriteria{Directions: []string{"south"}}, []int64{1, 2, 3, 4}},
		{"direction label", domain.FilterCriteria{Directions: []string{"남향"}}, []int64{2, 3, 4}},
		{"direction northeast", domain.FilterCriteria{Directions: []string{"northeast"}}, []int64{}},
		{"direction southeast matches both spellings", domain.FilterCriteria{Directions: []string{"southeast"}}, []int64{1, 3}},
		{"direction label in reversed order", domain.FilterCriteria{Directions: []string{"동남"}}, []int64{1, 3}},
		{"blank direction is no-op", domain.FilterCriteria{Directions: []string{""}}, []int64{1, 2, 3, 4}},
		{"floor descriptor", domain.FilterCriteria{FloorDescriptor: "10+"}, []int64{1, 2}},
		{"invalid floor descriptor ignored", domain.FilterCriteria{FloorDescriptor: "21/20"}, []int64{1, 2, 3, 4}},
		{"floor max", domain.FilterCriteria{Floor: domain.RangeParams{"max": "5"}}, []int64{4}},
		{"huge floor max keeps everything", domain.FilterCriteria{Floor: domain.RangeParams{"max": "1e20"}}, []int64{1, 2, 3, 4}},
		{"overflowing floor max keeps everything", domain.FilterCriteria{Floor: domain.RangeParams{"max": "1e400"}}, []int64{1, 2, 3, 4}},
		{"huge floor min matches nothing", domain.FilterCriteria{Floor: domain.RangeParams{"min": "1e20"}}, []int64{}},
		{"negative floor max matches nothing", domain.FilterCriteria{Floor: domain.RangeParams{"max": "-1e20"}}, []int64{}},
		{"room count", domain.FilterCriteria{RoomCount: domain.RangeParams{"min": "4"}}, []int64{2}},
		{"bathroom count", domain.FilterCriteria{BathroomCount: domain.RangeParams{"min": "2", "max": "2"}}, []int64{2, 3}},
		{"household count", domain.FilterCriteria{HouseholdCount: domain.RangeParams{"min": "1000"}}, []int64{2, 3}},
		{"maintenance fee", domain.FilterCriteria{MaintenanceFee: domain.RangeParams{"max": "10"}}, []int64{4}},
		{"parking ratio", domain.FilterCriteria{ParkingRatio: domain.RangeParams{"min": "1.2"}}, []int64{1, 2}},
		{"locations", domain.FilterCriteria{Locations: []string{"서울"}}, []int64{1, 2, 3}},
		{"inverted range matches nothing", domain.FilterCriteria{BuiltYear: domain.RangeParams{"min": "2024", "max": "2000"}}, []int64{}},
		{
			"combined",
			domain.FilterCriteria{
				TransactionType: "sale",
				SalePrice:       domain.RangeParams{"min": "40000", "max": "90000"},
				HasElevator:     boolPtr(true),
			},
			[]int64{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runFilters(t, tt.criteria))
		})
	}
}

func TestApplyFilters_BuiltYearHasNoUpperDefault(t *testing.T) {
	props := []domain.Property{
		{ID: 8, YearBuilt: 2018},
		{ID: 9, YearBuilt: 2025},
		{ID: 10, YearBuilt: 2031},
	}
	logger := contextkeys.LoggerFromContext(context.Background())

	got := applyFilters(props, &domain.FilterCriteria{BuiltYear: domain.RangeParams{"min": "2020"}}, logger)
	assert.Equal(t, []int64{9, 10}, ids(got))

	got = applyFilters(props, &domain.FilterCriteria{BuiltYear: domain.RangeParams{"max": "2025"}}, logger)
	assert.Equal(t, []int64{8, 9}, ids(got))
}

func TestApplyFilters_Geohash(t *testing.T) {
	p, err := memory.NewListingSource().GetByID(context.Background(), 4)
	require.NoError(t, err)

	prefix := p.Geohash()[:5]
	assert.Equal(t, []int64{4}, runFilters(t, domain.FilterCriteria{Geohash: prefix}))
}

func TestSortProperties(t *testing.T) {
	props, err := memory.NewListingSource().List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 2, 1}, ids(sortProperties(props[:3], domain.SortPriceLow)))
	assert.Equal(t, []int64{3, 4, 2, 1}, ids(sortProperties(props, domain.SortPriceLow)))
	assert.Equal(t, []int64{1, 2, 4, 3}, ids(sortProperties(props, domain.SortPriceHigh)))
	assert.Equal(t, []int64{2, 3, 4, 1}, ids(sortProperties(props, domain.SortAreaLarge)))
	assert.Equal(t, []int64{1, 4, 3, 2}, ids(sortProperties(props, domain.SortAreaSmall)))
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(sortProperties(props, domain.SortLatest)))
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(sortProperties(props, "")))
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(sortProperties(props, "random")))

	// Исходный срез не меняется
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(props))
}

func TestSortProperties_Stable(t *testing.T) {
	props := []domain.Property{
		{ID: 1, Area: domain.Area{Exclusive: 50}},
		{ID: 2, Area: domain.Area{Exclusive: 50}},
		{ID: 3, Area: domain.Area{Exclusive: 40}},
	}
	assert.Equal(t, []int64{1, 2, 3}, ids(sortProperties(props, domain.SortAreaLarge)))
	assert.Equal(t, []int64{3, 1, 2}, ids(sortProperties(props, domain.SortAreaSmall)))
}

type failingSource struct{ err error }

func (f failingSource) List(context.Context) ([]domain.Property, error) { return nil, f.err }
func (f failingSource) GetByID(context.Context, int64) (*domain.Property, error) {
	return nil, f.err
}
func (f failingSource) GetByIDs(context.Context, []int64) ([]domain.Property, error) {
	return nil, f.err
}

func TestFindPropertiesUseCase(t *testing.T) {
	uc := NewFindPropertiesUseCase(memory.NewListingSource())

	res, err := uc.Execute(context.Background(), domain.FilterCriteria{Sort: domain.SortPriceLow, AreaUnit: "acre"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 2, 1}, ids(res.Properties))
	assert.Equal(t, 4, res.TotalCount)
	assert.False(t, res.HasFilters)
	assert.Equal(t, domain.AreaUnitSqm, res.AreaUnit)

	res, err = uc.Execute(context.Background(), domain.FilterCriteria{TransactionType: "sale", AreaUnit: domain.AreaUnitPyeong})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 1}, ids(res.Properties))
	assert.True(t, res.HasFilters)
	assert.Equal(t, domain.AreaUnitPyeong, res.AreaUnit)
}

func TestFindPropertiesUseCase_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewFindPropertiesUseCase(failingSource{err: boom}).Execute(context.Background(), domain.FilterCriteria{})
	assert.ErrorIs(t, err, boom)
}

func TestGetPropertyDetailsUseCase(t *testing.T) {
	uc := NewGetPropertyDetailsUseCase(memory.NewListingSource())

	p, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "서초구 반포동 리모델링 아파트", p.Title)

	_, err = uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	_, err = uc.Execute(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPropertyID)
}

func TestGetFilterOptionsUseCase(t *testing.T) {
	uc := NewGetFilterOptionsUseCase(memory.NewFilterCatalog(), memory.NewListingSource())

	opts, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, opts.TotalCount)
	require.NotNil(t, opts.PriceRange)
	assert.Equal(t, domain.NumericRange{Min: 280000000, Max: 850000000}, *opts.PriceRange)
	assert.Equal(t, domain.NumericRange{Min: 84, Max: 132}, *opts.AreaRange)
	assert.Equal(t, domain.NumericRange{Min: 2018, Max: 2024}, *opts.BuiltYearRange)
}

func TestGetFilterOptionsUseCase_DegradesWithoutListings(t *testing.T) {
	uc := NewGetFilterOptionsUseCase(memory.NewFilterCatalog(), failingSource{err: errors.New("db down")})

	opts, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, opts.PriceRange)
	assert.NotEmpty(t, opts.PropertyTypes)
}

func TestGetDictionariesUseCase(t *testing.T) {
	uc := NewGetDictionariesUseCase(memory.NewFilterCatalog())

	all, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	some, err := uc.Execute(context.Background(), []string{" directions", "unknown", ""})
	require.NoError(t, err)
	assert.Len(t, some, 1)
	assert.Len(t, some["directions"], 8)
}

func TestGetShowcaseUseCase(t *testing.T) {
	showcase, err := NewGetShowcaseUseCase(memory.NewShowcaseSource()).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, showcase.Properties, 3)
}
