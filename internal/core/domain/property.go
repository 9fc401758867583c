package domain

import "github.com/mmcloughlin/geohash"

// Типы сделок (системные значения из query-параметров)
const (
	TransactionSale    = "sale"
	TransactionJeonse  = "jeonse"
	TransactionMonthly = "monthly"
)

// Отображаемые названия типов сделок
const (
	TransactionSaleLabel    = "매매"
	TransactionJeonseLabel  = "전세"
	TransactionMonthlyLabel = "월세"
)

// MonthlyRentWeight - множитель аренды при сравнении цен месячной аренды с депозитами
const MonthlyRentWeight = 100

// Area - площадь в квадратных метрах
type Area struct {
	Exclusive float64
	Supply    float64
}

// Property - объявление о продаже/аренде недвижимости.
// Суммы хранятся в вонах, отсутствующая сумма = nil.
type Property struct {
	ID              int64
	Title           string
	Type            string // отображаемое название: 아파트, 오피스텔, ...
	TransactionType string // sale | jeonse | monthly
	Price           *int64
	Deposit         *int64
	MonthlyRent     *int64
	Area            Area
	Floor           string
	Direction       string
	YearBuilt       int
	HasElevator     bool
	ParkingRatio    float64
	Images          []string
	Address         string
	Description     string

	Rooms          *int
	Bathrooms      *int
	MaintenanceFee *int64
	HouseholdCount *int

	Latitude  float64
	Longitude float64
}

// ComparisonPrice возвращает цену, по которой объявления сравниваются при сортировке.
// Для месячной аренды: депозит + аренда * 100.
func (p *Property) ComparisonPrice() int64 {
	switch p.TransactionType {
	case TransactionSale:
		return valueOrZero(p.Price)
	case TransactionJeonse:
		return valueOrZero(p.Deposit)
	case TransactionMonthly:
		return valueOrZero(p.Deposit) + valueOrZero(p.MonthlyRent)*MonthlyRentWeight
	default:
		return 0
	}
}

// Geohash объявления (12 символов). Без координат возвращается пустая строка.
func (p *Property) Geohash() string {
	if p.Latitude == 0 && p.Longitude == 0 {
		return ""
	}
	return geohash.Encode(p.Latitude, p.Longitude)
}

// TransactionLabel - отображаемое название типа сделки
func (p *Property) TransactionLabel() string {
	return TransactionLabel(p.TransactionType)
}

func TransactionLabel(code string) string {
	switch code {
	case TransactionSale:
		return TransactionSaleLabel
	case TransactionJeonse:
		return TransactionJeonseLabel
	case TransactionMonthly:
		return TransactionMonthlyLabel
	default:
		return code
	}
}

// IsKnownTransaction проверяет системное значение типа сделки
func IsKnownTransaction(code string) bool {
	return code == TransactionSale || code == TransactionJeonse || code == TransactionMonthly
}

// Clone возвращает глубокую копию объявления
func (p Property) Clone() Property {
	c := p
	c.Price = clonePtr(p.Price)
	c.Deposit = clonePtr(p.Deposit)
	c.MonthlyRent = clonePtr(p.MonthlyRent)
	c.MaintenanceFee = clonePtr(p.MaintenanceFee)
	c.Rooms = clonePtr(p.Rooms)
	c.Bathrooms = clonePtr(p.Bathrooms)
	c.HouseholdCount = clonePtr(p.HouseholdCount)
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
