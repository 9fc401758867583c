package memory

import (
	"context"
	"fmt"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
)

// FilterCatalog - статические списки для панели фильтров
type FilterCatalog struct{}

func NewFilterCatalog() *FilterCatalog {
	return &FilterCatalog{}
}

func transactionTypeOptions() []domain.OptionItem {
	return []domain.OptionItem{
		{Label: domain.TransactionSaleLabel, Value: domain.TransactionSale},
		{Label: domain.TransactionJeonseLabel, Value: domain.TransactionJeonse},
		{Label: domain.TransactionMonthlyLabel, Value: domain.TransactionMonthly},
	}
}

// Счетчики демонстрационные, как на исходной витрине
func propertyTypeOptions() []domain.OptionItem {
	return []domain.OptionItem{
		{Label: "아파트", Value: constants.PropertyTypeApartment, Count: 1234},
		{Label: "오피스텔", Value: constants.PropertyTypeOfficetel, Count: 567},
		{Label: "빌라/연립", Value: constants.PropertyTypeVilla, Count: 890},
		{Label: "단독주택", Value: constants.PropertyTypeHouse, Count: 234},
		{Label: "상가주택", Value: constants.PropertyTypeCommercialHouse, Count: 123},
		{Label: "다가구주택", Value: constants.PropertyTypeMultiHouse, Count: 345},
	}
}

func structureTypeOptions() []domain.OptionItem {
	return []domain.OptionItem{
		{Label: "철근콘크리트", Value: "reinforced_concrete"},
		{Label: "철골철근콘크리트", Value: "steel_reinforced_concrete"},
		{Label: "벽돌구조", Value: "brick"},
		{Label: "목구조", Value: "wood"},
		{Label: "기타", Value: "other"},
	}
}

func countOptions(n int) []domain.OptionItem {
	result := make([]domain.OptionItem, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, domain.OptionItem{Label: fmt.Sprintf("%d개", i), Value: fmt.Sprint(i)})
	}
	return result
}

func locationOptions() []domain.OptionItem {
	names := []string{"강남구", "서초구", "송파구", "마포구", "용산구", "성동구", "안산시"}
	result := make([]domain.OptionItem, len(names))
	for i, n := range names {
		result[i] = domain.OptionItem{Label: n, Value: n}
	}
	return result
}

func (c *FilterCatalog) GetOptionLists(ctx context.Context) (*domain.FilterOptions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	directions := make([]domain.DirectionOption, len(constants.Directions))
	for i, d := range constants.Directions {
		directions[i] = domain.DirectionOption{Value: d.Code, Label: d.Label, Short: d.Short}
	}
	return &domain.FilterOptions{
		TransactionTypes: transactionTypeOptions(),
		PropertyTypes:    propertyTypeOptions(),
		StructureTypes:   structureTypeOptions(),
		RoomCounts:       countOptions(5),
		BathroomCounts:   countOptions(3),
		Directions:       directions,
		Locations:        locationOptions(),
	}, nil
}

func (c *FilterCatalog) DictionaryNames() []string {
	return []string{
		constants.DictTransactionTypes,
		constants.DictPropertyTypes,
		constants.DictStructureTypes,
		constants.DictDirections,
		constants.DictSortOptions,
		constants.DictAreaUnits,
	}
}

func toDictionary(options []domain.OptionItem) []domain.DictionaryItem {
	result := make([]domain.DictionaryItem, len(options))
	for i, o := range options {
		result[i] = domain.DictionaryItem{SystemName: o.Value, DisplayName: o.Label}
	}
	return result
}

func (c *FilterCatalog) GetDictionary(ctx context.Context, name string) ([]domain.DictionaryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch name {
	case constants.DictTransactionTypes:
		return toDictionary(transactionTypeOptions()), nil
	case constants.DictPropertyTypes:
		return toDictionary(propertyTypeOptions()), nil
	case constants.DictStructureTypes:
		return toDictionary(structureTypeOptions()), nil
	case constants.DictDirections:
		result := make([]domain.DictionaryItem, len(constants.Directions))
		for i, d := range constants.Directions {
			result[i] = domain.DictionaryItem{SystemName: d.Code, DisplayName: d.Label}
		}
		return result, nil
	case constants.DictSortOptions:
		return []domain.DictionaryItem{
			{SystemName: domain.SortLatest, DisplayName: "최신순"},
			{SystemName: domain.SortPriceLow, DisplayName: "낮은 가격순"},
			{SystemName: domain.SortPriceHigh, DisplayName: "높은 가격순"},
			{SystemName: domain.SortAreaLarge, DisplayName: "넓은 면적순"},
			{SystemName: domain.SortAreaSmall, DisplayName: "좁은 면적순"},
		}, nil
	case constants.DictAreaUnits:
		return []domain.DictionaryItem{
			{SystemName: domain.AreaUnitSqm, DisplayName: "㎡"},
			{SystemName: domain.AreaUnitPyeong, DisplayName: "평"},
		}, nil
	default:
		return nil, fmt.Errorf("unknown dictionary %q", name)
	}
}
