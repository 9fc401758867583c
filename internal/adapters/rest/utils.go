package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"listing-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}

// parseStringSlice принимает и "name[]=a&name[]=b", и "name=a,b"
func parseStringSlice(query url.Values, key string) []string {
	var raw []string
	raw = append(raw, query[key+"[]"]...)
	raw = append(raw, query[key]...)

	var result []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

// parseRange собирает "name[min]" и "name[max]" в RangeParams.
// Ключ попадает в набор, даже если значение пустое.
func parseRange(query url.Values, key string) domain.RangeParams {
	var params domain.RangeParams
	for _, bound := range []string{"min", "max"} {
		values, ok := query[key+"["+bound+"]"]
		if !ok || len(values) == 0 {
			continue
		}
		if params == nil {
			params = make(domain.RangeParams, 2)
		}
		params[bound] = values[0]
	}
	return params
}

// parseBool: неизвестное значение считается отсутствующим
func parseBool(query url.Values, key string) *bool {
	raw := parseString(query, key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parsePositiveID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseFilterCriteria переносит query-параметры в критерии поиска
func parseFilterCriteria(query url.Values) domain.FilterCriteria {
	directions := parseStringSlice(query, "direction")
	directions = append(directions, parseStringSlice(query, "directions")...)

	return domain.FilterCriteria{
		TransactionType: parseString(query, "transaction_type"),
		PropertyTypes:   parseStringSlice(query, "property_types"),
		Locations:       parseStringSlice(query, "locations"),
		Directions:      directions,
		Structures:      parseStringSlice(query, "structures"),

		SalePrice:      parseRange(query, "sale_price"),
		JeonseDeposit:  parseRange(query, "jeonse_deposit"),
		MonthlyRent:    parseRange(query, "monthly_rent"),
		MaintenanceFee: parseRange(query, "maintenance_fee"),
		ExclusiveArea:  parseRange(query, "exclusive_area"),
		SupplyArea:     parseRange(query, "supply_area"),
		RoomCount:      parseRange(query, "room_count"),
		BathroomCount:  parseRange(query, "bathroom_count"),
		BuiltYear:      parseRange(query, "built_year"),
		ParkingRatio:   parseRange(query, "parking_ratio"),
		Floor:          parseRange(query, "floor"),
		HouseholdCount: parseRange(query, "household_count"),

		HasElevator: parseBool(query, "has_elevator"),
		HasPhotos:   parseBool(query, "has_photos"),

		FloorDescriptor: parseString(query, "floor_descriptor"),
		Geohash:         parseString(query, "geohash"),
		Sort:            parseString(query, "sort"),
		AreaUnit:        parseString(query, "area_unit"),
	}
}
