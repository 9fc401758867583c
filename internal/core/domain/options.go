package domain

// OptionItem - элемент выпадающего списка фильтра
type OptionItem struct {
	Label string
	Value string
	Count int
}

// NumericRange - наблюдаемый диапазон значений по всем объявлениям
type NumericRange struct {
	Min float64
	Max float64
}

// FilterOptions - списки вариантов для панели фильтров
type FilterOptions struct {
	TransactionTypes []OptionItem
	PropertyTypes    []OptionItem
	StructureTypes   []OptionItem
	RoomCounts       []OptionItem
	BathroomCounts   []OptionItem
	Directions       []DirectionOption
	Locations        []OptionItem

	PriceRange     *NumericRange
	AreaRange      *NumericRange
	BuiltYearRange *NumericRange
	TotalCount     int
}

// DirectionOption - сторона света с коротким кодом для компаса
type DirectionOption struct {
	Value string
	Label string
	Short string
}

// DictionaryItem - элемент справочника
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}

// ShowcaseProperty - карточка для витрины компонентов
type ShowcaseProperty struct {
	ID        int64
	Title     string
	Price     int64
	Location  string
	Type      string
	Rooms     int
	Bathrooms int
	Area      float64
	Status    string
	Featured  bool
	ImageURL  string
	Tags      []string
}

// ShowcaseFilterOptions - варианты фильтров на витрине компонентов
type ShowcaseFilterOptions struct {
	PropertyTypes []string
	PriceRanges   []OptionItem
	Locations     []string
}

type Showcase struct {
	Properties    []ShowcaseProperty
	FilterOptions ShowcaseFilterOptions
}
