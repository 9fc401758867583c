package constants

// Коды типов недвижимости из query-параметра property_types[]
const (
	PropertyTypeApartment       = "apartment"
	PropertyTypeOfficetel       = "officetel"
	PropertyTypeVilla           = "villa"
	PropertyTypeHouse           = "house"
	PropertyTypeCommercialHouse = "commercial_house"
	PropertyTypeMultiHouse      = "multi_house"
)

// PropertyTypeLabels сопоставляет код типа с отображаемым названием в объявлении
var PropertyTypeLabels = map[string]string{
	PropertyTypeApartment:       "아파트",
	PropertyTypeOfficetel:       "오피스텔",
	PropertyTypeVilla:           "빌라",
	PropertyTypeHouse:           "단독주택",
	PropertyTypeCommercialHouse: "상가주택",
	PropertyTypeMultiHouse:      "다가구주택",
}

// Верхняя граница счетчиков (комнаты, санузлы, квартиры) по умолчанию
const DefaultCountMax = 999

// Имена справочников для /dictionaries
const (
	DictTransactionTypes = "transaction_types"
	DictPropertyTypes    = "property_types"
	DictStructureTypes   = "structure_types"
	DictDirections       = "directions"
	DictSortOptions      = "sort_options"
	DictAreaUnits        = "area_units"
)

// DirectionOption - сторона света: код, подпись и короткое обозначение
type DirectionOption struct {
	Code  string
	Label string
	Short string
}

// Directions в порядке обхода компаса по часовой стрелке
var Directions = []DirectionOption{
	{Code: "north", Label: "북", Short: "N"},
	{Code: "northeast", Label: "북동", Short: "NE"},
	{Code: "east", Label: "동", Short: "E"},
	{Code: "southeast", Label: "남동", Short: "SE"},
	{Code: "south", Label: "남", Short: "S"},
	{Code: "southwest", Label: "남서", Short: "SW"},
	{Code: "west", Label: "서", Short: "W"},
	{Code: "northwest", Label: "북서", Short: "NW"},
}

// DirectionTokens переводит код стороны света в подписи для поиска в строке направления.
// Для промежуточных сторон возвращаются оба порядка слогов: 남동 и 동남.
// Неизвестные значения возвращаются как есть (клиент мог прислать подпись напрямую).
func DirectionTokens(value string) []string {
	label := value
	for _, d := range Directions {
		if d.Code == value {
			label = d.Label
			break
		}
	}

	runes := []rune(label)
	if len(runes) != 2 {
		return []string{label}
	}
	swapped := string([]rune{runes[1], runes[0]})
	for _, d := range Directions {
		if d.Label == label || d.Label == swapped {
			return []string{label, swapped}
		}
	}
	return []string{label}
}
