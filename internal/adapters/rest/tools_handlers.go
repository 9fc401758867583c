package rest

import (
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"net/http"
	"strconv"
	"strings"
)

// ToolsHandler - разбор строки этажа и перевод площадей для виджетов
type ToolsHandler struct{}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// ParseFloor обрабатывает GET /floors/parse?input=...
func (h *ToolsHandler) ParseFloor(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")

	descriptor, err := domain.ParseFloor(input)
	if err != nil {
		var validationErr *domain.FloorValidationError
		if errors.As(err, &validationErr) {
			RespondWithJSON(w, http.StatusUnprocessableEntity, FloorParseResponse{
				Valid:   false,
				Message: validationErr.Message,
				Input:   validationErr.Input,
			})
			return
		}
		contextkeys.LoggerFromContext(r.Context()).Error("Floor parsing failed", err, port.Fields{"handler": "ParseFloor"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to parse floor")
		return
	}

	// Пустая строка допустима: фильтр по этажу просто не задан
	if descriptor == nil {
		RespondWithJSON(w, http.StatusOK, FloorParseResponse{Valid: true})
		return
	}

	RespondWithJSON(w, http.StatusOK, toFloorParseResponse(descriptor))
}

// ConvertArea обрабатывает GET /units/area?value=84&from=sqm&to=pyeong
func (h *ToolsHandler) ConvertArea(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	value, err := strconv.ParseFloat(strings.TrimSpace(query.Get("value")), 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Parameter 'value' must be a number")
		return
	}
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))

	result, err := domain.ConvertArea(value, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUnit) || errors.Is(err, domain.ErrInvalidAreaValue) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to convert area")
		return
	}

	RespondWithJSON(w, http.StatusOK, AreaConversionResponse{
		Value:  value,
		From:   from,
		To:     to,
		Result: result,
		Label:  areaUnitLabel(result, to),
	})
}

func areaUnitLabel(value float64, unit string) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == domain.AreaUnitPyeong {
		return text + "평"
	}
	return text + "㎡"
}
