package usecase

import (
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"math"
	"sort"
	"strings"
)

// propertyFilter - одна стадия конвейера. Стадия без критерия возвращает вход как есть.
type propertyFilter func(props []domain.Property, c *domain.FilterCriteria) []domain.Property

// filterPipeline - стадии в порядке применения
func filterPipeline(logger port.LoggerPort) []propertyFilter {
	return []propertyFilter{
		filterByTransactionType,
		filterByPropertyTypes,
		filterByPrice,
		filterByArea,
		filterByCounts,
		filterByMaintenanceFee,
		filterByBuiltYear,
		filterByParkingRatio,
		floorFilter(logger),
		filterByElevator,
		filterByPhotos,
		filterByDirection,
		filterByLocations,
		filterByGeohash,
	}
}

// applyFilters прогоняет объявления через все стадии, порядок внутри стадий сохраняется
func applyFilters(props []domain.Property, c *domain.FilterCriteria, logger port.LoggerPort) []domain.Property {
	result := props
	for _, stage := range filterPipeline(logger) {
		result = stage(result, c)
	}
	return result
}

func selectWhere(props []domain.Property, keep func(p *domain.Property) bool) []domain.Property {
	result := make([]domain.Property, 0, len(props))
	for i := range props {
		if keep(&props[i]) {
			result = append(result, props[i])
		}
	}
	return result
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func filterByTransactionType(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !domain.IsKnownTransaction(c.TransactionType) {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		return p.TransactionType == c.TransactionType
	})
}

func filterByPropertyTypes(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	allowed := make(map[string]struct{})
	for _, code := range c.PropertyTypes {
		if label, ok := constants.PropertyTypeLabels[code]; ok {
			allowed[label] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		_, ok := allowed[p.Type]
		return ok
	})
}

// moneyBounds - границы в 만원, переведенные в воны
func moneyBounds(r domain.RangeParams) (float64, float64) {
	lo, hi := r.Bounds(0, math.Inf(1))
	return lo * domain.PriceBoundMultiplier, hi * domain.PriceBoundMultiplier
}

func amountInRange(v *int64, r domain.RangeParams) bool {
	if v == nil {
		return false
	}
	lo, hi := moneyBounds(r)
	return inRange(float64(*v), lo, hi)
}

// filterByPrice сравнивает с диапазоном своего типа сделки:
// продажа - цену, 전세 - депозит, 월세 - ежемесячную аренду.
// Объявление, для типа которого диапазон не задан, проходит.
func filterByPrice(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !c.HasPriceFilter() {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		switch p.TransactionType {
		case domain.TransactionSale:
			return !c.SalePrice.Present() || amountInRange(p.Price, c.SalePrice)
		case domain.TransactionJeonse:
			return !c.JeonseDeposit.Present() || amountInRange(p.Deposit, c.JeonseDeposit)
		case domain.TransactionMonthly:
			return !c.MonthlyRent.Present() || amountInRange(p.MonthlyRent, c.MonthlyRent)
		default:
			return true
		}
	})
}

func filterByArea(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !c.ExclusiveArea.Present() && !c.SupplyArea.Present() {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		if c.ExclusiveArea.Present() {
			lo, hi := c.ExclusiveArea.Bounds(0, math.Inf(1))
			if !inRange(domain.AreaIn(p.Area.Exclusive, c.AreaUnit), lo, hi) {
				return false
			}
		}
		if c.SupplyArea.Present() {
			lo, hi := c.SupplyArea.Bounds(0, math.Inf(1))
			if !inRange(domain.AreaIn(p.Area.Supply, c.AreaUnit), lo, hi) {
				return false
			}
		}
		return true
	})
}

func countInRange(v *int, r domain.RangeParams) bool {
	if !r.Present() {
		return true
	}
	if v == nil {
		return false
	}
	lo, hi := r.Bounds(0, constants.DefaultCountMax)
	return inRange(float64(*v), lo, hi)
}

// filterByCounts - комнаты, санузлы и число квартир в комплексе
func filterByCounts(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !c.RoomCount.Present() && !c.BathroomCount.Present() && !c.HouseholdCount.Present() {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		return countInRange(p.Rooms, c.RoomCount) &&
			countInRange(p.Bathrooms, c.BathroomCount) &&
			countInRange(p.HouseholdCount, c.HouseholdCount)
	})
}

func filterByMaintenanceFee(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !c.MaintenanceFee.Present() {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		return amountInRange(p.MaintenanceFee, c.MaintenanceFee)
	})
}

func filterByBuiltYear(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !c.BuiltYear.Present() {
		return props
	}
	lo, hi := c.BuiltYear.Bounds(0, math.Inf(1))
	return selectWhere(props, func(p *domain.Property) bool {
		return inRange(float64(p.YearBuilt), lo, hi)
	})
}

func filterByParkingRatio(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if !c.ParkingRatio.Present() {
		return props
	}
	lo, hi := c.ParkingRatio.Bounds(0, math.Inf(1))
	return selectWhere(props, func(p *domain.Property) bool {
		return inRange(p.ParkingRatio, lo, hi)
	})
}

// clampFloor приводит границу к [0, MaxFloorSentinel] до перевода в int,
// иначе огромные значения и ±Inf переполняют int
func clampFloor(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= domain.MaxFloorSentinel:
		return domain.MaxFloorSentinel
	default:
		return int(v)
	}
}

// floorFilter: границы берутся из floor[min]/[max] либо из строки этажа,
// строка имеет приоритет. Невалидная строка игнорируется.
func floorFilter(logger port.LoggerPort) propertyFilter {
	return func(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
		var bounds *domain.FloorRange
		if c.Floor.Present() {
			lo, hi := c.Floor.Bounds(0, domain.MaxFloorSentinel)
			bounds = &domain.FloorRange{Min: clampFloor(math.Ceil(lo)), Max: clampFloor(math.Floor(hi))}
		}
		if c.FloorDescriptor != "" {
			desc, err := domain.ParseFloor(c.FloorDescriptor)
			switch {
			case err != nil:
				logger.Warn("Ignoring invalid floor descriptor", port.Fields{
					"floor_descriptor": c.FloorDescriptor,
					"error":            err.Error(),
				})
			case desc != nil:
				bounds = &desc.Current
			}
		}
		if bounds == nil {
			return props
		}

		return selectWhere(props, func(p *domain.Property) bool {
			own, err := domain.ParseFloor(p.Floor)
			if err != nil || own == nil {
				return false
			}
			return bounds.Contains(own.Current)
		})
	}
}

func filterByElevator(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if c.HasElevator == nil {
		return props
	}
	want := *c.HasElevator
	return selectWhere(props, func(p *domain.Property) bool {
		return p.HasElevator == want
	})
}

func filterByPhotos(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if c.HasPhotos == nil {
		return props
	}
	want := *c.HasPhotos
	return selectWhere(props, func(p *domain.Property) bool {
		return (len(p.Images) > 0) == want
	})
}

// containsAny - содержит ли строка хотя бы один непустой токен.
// ok=false, если непустых токенов нет и стадию нужно пропустить.
func containsAny(s string, tokens []string) (matched bool, ok bool) {
	for _, t := range tokens {
		if t == "" {
			continue
		}
		ok = true
		if strings.Contains(s, t) {
			return true, true
		}
	}
	return false, ok
}

// filterByDirection принимает как коды (south), так и подписи (남)
func filterByDirection(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	tokens := make([]string, 0, len(c.Directions)*2)
	for _, d := range c.Directions {
		tokens = append(tokens, constants.DirectionTokens(strings.TrimSpace(d))...)
	}
	if _, ok := containsAny("", tokens); !ok {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		matched, _ := containsAny(p.Direction, tokens)
		return matched
	})
}

func filterByLocations(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	if _, ok := containsAny("", c.Locations); !ok {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		matched, _ := containsAny(p.Address, c.Locations)
		return matched
	})
}

func filterByGeohash(props []domain.Property, c *domain.FilterCriteria) []domain.Property {
	prefix := strings.ToLower(strings.TrimSpace(c.Geohash))
	if prefix == "" {
		return props
	}
	return selectWhere(props, func(p *domain.Property) bool {
		hash := p.Geohash()
		return hash != "" && strings.HasPrefix(hash, prefix)
	})
}

// sortProperties сортирует стабильно. latest и неизвестные значения -
// обратный порядок добавления.
func sortProperties(props []domain.Property, sortBy string) []domain.Property {
	result := append([]domain.Property(nil), props...)

	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ComparisonPrice() < result[j].ComparisonPrice()
		})
	case domain.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ComparisonPrice() > result[j].ComparisonPrice()
		})
	case domain.SortAreaLarge:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Area.Exclusive > result[j].Area.Exclusive
		})
	case domain.SortAreaSmall:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Area.Exclusive < result[j].Area.Exclusive
		})
	default:
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result
}
