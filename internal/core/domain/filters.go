package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Варианты сортировки
const (
	SortLatest    = "latest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortAreaLarge = "area_large"
	SortAreaSmall = "area_small"
)

// Единицы площади
const (
	AreaUnitSqm    = "sqm"
	AreaUnitPyeong = "pyeong"
)

// Множитель для денежных границ фильтра: пользователь вводит суммы в 만원
const PriceBoundMultiplier = 10000

// RangeParams - сырые границы диапазона из query-параметров (ключи min / max).
type RangeParams map[string]string

var leadingNumberRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Bound возвращает числовую границу по ключу или значение по умолчанию.
// Некорректная строка не ошибка: разбирается самый длинный числовой префикс,
// а если его нет, результат равен 0.
func (r RangeParams) Bound(key string, defaultValue float64) float64 {
	if len(r) == 0 {
		return defaultValue
	}
	raw, ok := r[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	return parseLeadingFloat(raw)
}

// Present сообщает, передан ли диапазон вообще
func (r RangeParams) Present() bool {
	return len(r) > 0
}

// Bounds - удобная обертка для пары min/max
func (r RangeParams) Bounds(defMin, defMax float64) (float64, float64) {
	return r.Bound("min", defMin), r.Bound("max", defMax)
}

func parseLeadingFloat(s string) float64 {
	match := leadingNumberRe.FindString(strings.TrimLeft(s, " \t\n"))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		// Переполнение экспоненты, ParseFloat уже вернул ±Inf
		if math.IsInf(v, 0) {
			return v
		}
		return 0
	}
	return v
}

// FilterCriteria - набор необязательных критериев поиска.
// Пустое значение любого поля означает, что соответствующий фильтр не применяется.
type FilterCriteria struct {
	TransactionType string
	PropertyTypes   []string
	Locations       []string
	Directions      []string
	Structures      []string

	SalePrice      RangeParams
	JeonseDeposit  RangeParams
	MonthlyRent    RangeParams
	MaintenanceFee RangeParams
	ExclusiveArea  RangeParams
	SupplyArea     RangeParams
	RoomCount      RangeParams
	BathroomCount  RangeParams
	BuiltYear      RangeParams
	ParkingRatio   RangeParams
	Floor          RangeParams
	HouseholdCount RangeParams

	HasElevator *bool
	HasPhotos   *bool

	FloorDescriptor string
	Geohash         string

	Sort     string
	AreaUnit string
}

// HasFilters сообщает, задан ли хотя бы один фильтр (сортировка и единицы не считаются)
func (c *FilterCriteria) HasFilters() bool {
	if c.TransactionType != "" || c.FloorDescriptor != "" || c.Geohash != "" {
		return true
	}
	if len(c.PropertyTypes) > 0 || len(c.Locations) > 0 || len(c.Directions) > 0 || len(c.Structures) > 0 {
		return true
	}
	if c.HasElevator != nil || c.HasPhotos != nil {
		return true
	}
	for _, r := range c.ranges() {
		if r.Present() {
			return true
		}
	}
	return false
}

// HasPriceFilter - задан ли хотя бы один из ценовых диапазонов
func (c *FilterCriteria) HasPriceFilter() bool {
	return c.SalePrice.Present() || c.JeonseDeposit.Present() || c.MonthlyRent.Present()
}

func (c *FilterCriteria) ranges() []RangeParams {
	return []RangeParams{
		c.SalePrice, c.JeonseDeposit, c.MonthlyRent, c.MaintenanceFee,
		c.ExclusiveArea, c.SupplyArea, c.RoomCount, c.BathroomCount,
		c.BuiltYear, c.ParkingRatio, c.Floor, c.HouseholdCount,
	}
}

// PropertySearchResult - результат фильтрации и сортировки
type PropertySearchResult struct {
	Properties []Property
	TotalCount int
	HasFilters bool
	AreaUnit   string
}
