package rest

import (
	"listing-service/internal/core/domain"
)

type AreaResponse struct {
	Exclusive      float64 `json:"exclusive"`
	Supply         float64 `json:"supply"`
	ExclusiveValue float64 `json:"exclusive_value"` // в запрошенной единице
	SupplyValue    float64 `json:"supply_value"`
	Unit           string  `json:"unit"`
	ExclusiveLabel string  `json:"exclusive_label"`
	SupplyLabel    string  `json:"supply_label"`
}

// PropertyResponse - карточка объявления с готовыми подписями
type PropertyResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Type             string `json:"type"`
	TransactionType  string `json:"transaction_type"`
	TransactionLabel string `json:"transaction_label"`
	Price            *int64 `json:"price,omitempty"`
	Deposit          *int64 `json:"deposit,omitempty"`
	MonthlyRent      *int64 `json:"monthly_rent,omitempty"`
	PriceLabel       string `json:"price_label"`
	ComparisonPrice  int64  `json:"comparison_price"`

	Area AreaResponse `json:"area"`

	Floor        string   `json:"floor"`
	FloorLabel   string   `json:"floor_label"`
	Direction    string   `json:"direction"`
	YearBuilt    int      `json:"year_built"`
	HasElevator  bool     `json:"has_elevator"`
	ParkingRatio float64  `json:"parking_ratio"`
	ParkingLabel string   `json:"parking_label"`
	Images       []string `json:"images"`
	Address      string   `json:"address"`
	Description  string   `json:"description,omitempty"`

	Rooms               *int   `json:"rooms,omitempty"`
	Bathrooms           *int   `json:"bathrooms,omitempty"`
	MaintenanceFee      *int64 `json:"maintenance_fee,omitempty"`
	MaintenanceFeeLabel string `json:"maintenance_fee_label,omitempty"`
	HouseholdCount      *int   `json:"household_count,omitempty"`

	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Geohash   string  `json:"geohash,omitempty"`
}

type PropertiesResponse struct {
	Data       []PropertyResponse `json:"data"`
	Total      int                `json:"total"`
	HasFilters bool               `json:"has_filters"`
	AreaUnit   string             `json:"area_unit"`
}

// priceLabel: "8억 5000만원", "전세 5억원", "1억원 / 180만원"
func priceLabel(p *domain.Property) string {
	switch p.TransactionType {
	case domain.TransactionSale:
		return domain.FormatKRW(derefInt64(p.Price))
	case domain.TransactionJeonse:
		return domain.FormatKRW(derefInt64(p.Deposit))
	case domain.TransactionMonthly:
		return domain.FormatKRW(derefInt64(p.Deposit)) + " / " + domain.FormatKRW(derefInt64(p.MonthlyRent))
	default:
		return ""
	}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func toPropertyResponse(p *domain.Property, unit string) PropertyResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	resp := PropertyResponse{
		ID:               p.ID,
		Title:            p.Title,
		Type:             p.Type,
		TransactionType:  p.TransactionType,
		TransactionLabel: p.TransactionLabel(),
		Price:            p.Price,
		Deposit:          p.Deposit,
		MonthlyRent:      p.MonthlyRent,
		PriceLabel:       priceLabel(p),
		ComparisonPrice:  p.ComparisonPrice(),
		Area: AreaResponse{
			Exclusive:      p.Area.Exclusive,
			Supply:         p.Area.Supply,
			ExclusiveValue: domain.AreaIn(p.Area.Exclusive, unit),
			SupplyValue:    domain.AreaIn(p.Area.Supply, unit),
			Unit:           unit,
			ExclusiveLabel: domain.FormatArea(p.Area.Exclusive, unit),
			SupplyLabel:    domain.FormatArea(p.Area.Supply, unit),
		},
		Floor:          p.Floor,
		FloorLabel:     domain.FormatFloor(p.Floor),
		Direction:      p.Direction,
		YearBuilt:      p.YearBuilt,
		HasElevator:    p.HasElevator,
		ParkingRatio:   p.ParkingRatio,
		ParkingLabel:   domain.FormatParkingRatio(p.ParkingRatio),
		Images:         images,
		Address:        p.Address,
		Description:    p.Description,
		Rooms:          p.Rooms,
		Bathrooms:      p.Bathrooms,
		MaintenanceFee: p.MaintenanceFee,
		HouseholdCount: p.HouseholdCount,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Geohash:        p.Geohash(),
	}
	if p.MaintenanceFee != nil {
		resp.MaintenanceFeeLabel = domain.FormatKRW(*p.MaintenanceFee)
	}
	return resp
}

func toPropertyResponses(props []domain.Property, unit string) []PropertyResponse {
	result := make([]PropertyResponse, len(props))
	for i := range props {
		result[i] = toPropertyResponse(&props[i], unit)
	}
	return result
}

// --- Фильтры и справочники ---

type OptionItemResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count,omitempty"`
}

type DirectionOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Short string `json:"short"`
}

type RangeResponse struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	MinLabel string  `json:"min_label,omitempty"`
	MaxLabel string  `json:"max_label,omitempty"`
}

type FilterOptionsResponse struct {
	TransactionTypes []OptionItemResponse      `json:"transaction_types"`
	PropertyTypes    []OptionItemResponse      `json:"property_types"`
	StructureTypes   []OptionItemResponse      `json:"structure_types"`
	RoomCounts       []OptionItemResponse      `json:"room_counts"`
	BathroomCounts   []OptionItemResponse      `json:"bathroom_counts"`
	Directions       []DirectionOptionResponse `json:"directions"`
	Locations        []OptionItemResponse      `json:"locations"`
	PriceRange       *RangeResponse            `json:"price_range,omitempty"`
	AreaRange        *RangeResponse            `json:"area_range,omitempty"`
	BuiltYearRange   *RangeResponse            `json:"built_year_range,omitempty"`
	TotalCount       int                       `json:"total_count"`
}

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type DictionaryItemsResponse map[string][]DictionaryItemResponse

func toOptionItems(items []domain.OptionItem) []OptionItemResponse {
	result := make([]OptionItemResponse, len(items))
	for i, item := range items {
		result[i] = OptionItemResponse{Label: item.Label, Value: item.Value, Count: item.Count}
	}
	return result
}

func toRange(r *domain.NumericRange, label func(float64) string) *RangeResponse {
	if r == nil {
		return nil
	}
	resp := &RangeResponse{Min: r.Min, Max: r.Max}
	if label != nil {
		resp.MinLabel = label(r.Min)
		resp.MaxLabel = label(r.Max)
	}
	return resp
}

func toFilterOptionsResponse(o *domain.FilterOptions) FilterOptionsResponse {
	directions := make([]DirectionOptionResponse, len(o.Directions))
	for i, d := range o.Directions {
		directions[i] = DirectionOptionResponse{Value: d.Value, Label: d.Label, Short: d.Short}
	}
	return FilterOptionsResponse{
		TransactionTypes: toOptionItems(o.TransactionTypes),
		PropertyTypes:    toOptionItems(o.PropertyTypes),
		StructureTypes:   toOptionItems(o.StructureTypes),
		RoomCounts:       toOptionItems(o.RoomCounts),
		BathroomCounts:   toOptionItems(o.BathroomCounts),
		Directions:       directions,
		Locations:        toOptionItems(o.Locations),
		PriceRange:       toRange(o.PriceRange, func(v float64) string { return domain.FormatKRW(int64(v)) }),
		AreaRange:        toRange(o.AreaRange, func(v float64) string { return domain.FormatArea(v, "") }),
		BuiltYearRange:   toRange(o.BuiltYearRange, nil),
		TotalCount:       o.TotalCount,
	}
}

// --- Этажи и единицы ---

type FloorRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type FloorParseResponse struct {
	Valid       bool                `json:"valid"`
	Message     string              `json:"message,omitempty"`
	Input       string              `json:"input,omitempty"`
	Type        string              `json:"type,omitempty"`
	Current     *FloorRangeResponse `json:"current,omitempty"`
	Total       *int                `json:"total,omitempty"`
	Description string              `json:"description,omitempty"`
	Label       string              `json:"label,omitempty"`
}

func toFloorParseResponse(d *domain.FloorDescriptor) FloorParseResponse {
	return FloorParseResponse{
		Valid:       true,
		Message:     domain.FloorMsgValid,
		Input:       d.Input,
		Type:        string(d.Kind),
		Current:     &FloorRangeResponse{Min: d.Current.Min, Max: d.Current.Max},
		Total:       d.Total,
		Description: d.Description,
		Label:       domain.FormatFloor(d.Input),
	}
}

type AreaConversionResponse struct {
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
	Label  string  `json:"label"`
}

// --- Витрина ---

type ShowcasePropertyResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Price      int64    `json:"price"`
	PriceLabel string   `json:"price_label"`
	Location   string   `json:"location"`
	Type       string   `json:"type"`
	Rooms      int      `json:"rooms"`
	Bathrooms  int      `json:"bathrooms"`
	Area       float64  `json:"area"`
	AreaLabel  string   `json:"area_label"`
	Status     string   `json:"status"`
	Featured   bool     `json:"featured"`
	ImageURL   string   `json:"image_url"`
	Tags       []string `json:"tags"`
}

type ShowcaseFilterOptionsResponse struct {
	PropertyTypes []string             `json:"property_types"`
	PriceRanges   []OptionItemResponse `json:"price_ranges"`
	Locations     []string             `json:"locations"`
}

type ShowcaseResponse struct {
	Properties    []ShowcasePropertyResponse    `json:"properties"`
	FilterOptions ShowcaseFilterOptionsResponse `json:"filter_options"`
}

func toShowcaseResponse(s *domain.Showcase) ShowcaseResponse {
	props := make([]ShowcasePropertyResponse, len(s.Properties))
	for i, p := range s.Properties {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		props[i] = ShowcasePropertyResponse{
			ID:         p.ID,
			Title:      p.Title,
			Price:      p.Price,
			PriceLabel: domain.FormatKRW(p.Price),
			Location:   p.Location,
			Type:       p.Type,
			Rooms:      p.Rooms,
			Bathrooms:  p.Bathrooms,
			Area:       p.Area,
			AreaLabel:  domain.FormatArea(p.Area, ""),
			Status:     p.Status,
			Featured:   p.Featured,
			ImageURL:   p.ImageURL,
			Tags:       tags,
		}
	}
	return ShowcaseResponse{
		Properties: props,
		FilterOptions: ShowcaseFilterOptionsResponse{
			PropertyTypes: s.FilterOptions.PropertyTypes,
			PriceRanges:   toOptionItems(s.FilterOptions.PriceRanges),
			Locations:     s.FilterOptions.Locations,
		},
	}
}

// --- Избранное ---

// AddFavoriteRequest - property_id может прийти числом или строкой
type AddFavoriteRequest struct {
	PropertyID interface{} `json:"property_id"`
}

type FavoriteAddedResponse struct {
	PropertyID int64  `json:"property_id"`
	Status     string `json:"status"`
}
