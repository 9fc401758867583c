package constants

// Ключи маршрутизации событий избранного
const (
	RoutingKeyPropertyFavorited   = "property.favorited"
	RoutingKeyPropertyUnfavorited = "property.unfavorited"
)

// Входящие события объявлений
const (
	RoutingKeyListingUpserted = "listing.upserted"
)

// Имена и версии контрактов, по ним выбирается JSON-схема
const (
	EventPropertyFavorited   = "PropertyFavoritedEvent"
	EventPropertyUnfavorited = "PropertyUnfavoritedEvent"
	EventListingUpserted     = "ListingUpsertedEvent"
	RequestAddFavorite       = "AddFavoriteRequest"

	ContractVersionV1 = "1.0.0"
)
