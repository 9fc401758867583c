package rabbitmq

import "listing-service/internal/core/domain"

// ListingUpsertedDTO - тело события ListingUpsertedEvent. Суммы в вонах.
type ListingUpsertedDTO struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Type            string         `json:"type"`
	TransactionType string         `json:"transaction_type"`
	Price           *int64         `json:"price"`
	Deposit         *int64         `json:"deposit"`
	MonthlyRent     *int64         `json:"monthly_rent"`
	Area            ListingAreaDTO `json:"area"`
	Floor           string         `json:"floor"`
	Direction       string         `json:"direction"`
	YearBuilt       int            `json:"year_built"`
	HasElevator     bool           `json:"has_elevator"`
	ParkingRatio    float64        `json:"parking_ratio"`
	Images          []string       `json:"images"`
	Address         string         `json:"address"`
	Description     string         `json:"description"`

	Rooms          *int   `json:"rooms"`
	Bathrooms      *int   `json:"bathrooms"`
	MaintenanceFee *int64 `json:"maintenance_fee"`
	HouseholdCount *int   `json:"household_count"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListingAreaDTO struct {
	Exclusive float64 `json:"exclusive"`
	Supply    float64 `json:"supply"`
}

func (dto ListingUpsertedDTO) toDomain() domain.Property {
	return domain.Property{
		ID:              dto.ID,
		Title:           dto.Title,
		Type:            dto.Type,
		TransactionType: dto.TransactionType,
		Price:           dto.Price,
		Deposit:         dto.Deposit,
		MonthlyRent:     dto.MonthlyRent,
		Area:            domain.Area{Exclusive: dto.Area.Exclusive, Supply: dto.Area.Supply},
		Floor:           dto.Floor,
		Direction:       dto.Direction,
		YearBuilt:       dto.YearBuilt,
		HasElevator:     dto.HasElevator,
		ParkingRatio:    dto.ParkingRatio,
		Images:          dto.Images,
		Address:         dto.Address,
		Description:     dto.Description,
		Rooms:           dto.Rooms,
		Bathrooms:       dto.Bathrooms,
		MaintenanceFee:  dto.MaintenanceFee,
		HouseholdCount:  dto.HouseholdCount,
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
	}
}
