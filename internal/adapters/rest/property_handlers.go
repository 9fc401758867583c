package rest

import (
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	findPropertiesUC usecases_port.FindPropertiesUseCase
	getDetailsUC     usecases_port.GetPropertyDetailsUseCase
}

func NewPropertyHandler(findPropertiesUC usecases_port.FindPropertiesUseCase,
	getDetailsUC usecases_port.GetPropertyDetailsUseCase) *PropertyHandler {
	return &PropertyHandler{
		findPropertiesUC: findPropertiesUC,
		getDetailsUC:     getDetailsUC,
	}
}

// FindProperties обрабатывает GET /properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	criteria := parseFilterCriteria(r.URL.Query())

	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":          "FindProperties",
		"transaction_type": criteria.TransactionType,
		"sort":             criteria.Sort,
		"area_unit":        criteria.AreaUnit,
	})
	handlerLogger.Debug("Processing request to find properties", nil)

	result, err := h.findPropertiesUC.Execute(r.Context(), criteria)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	handlerLogger.Info("Successfully found properties", port.Fields{
		"total_found": result.TotalCount,
		"has_filters": result.HasFilters,
	})

	RespondWithJSON(w, http.StatusOK, PropertiesResponse{
		Data:       toPropertyResponses(result.Properties, result.AreaUnit),
		Total:      result.TotalCount,
		HasFilters: result.HasFilters,
		AreaUnit:   result.AreaUnit,
	})
}

// GetPropertyDetails обрабатывает GET /properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "propertyID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": rawID,
	})

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		handlerLogger.Warn("Invalid property ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	property, err := h.getDetailsUC.Execute(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPropertyID):
			WriteJSONError(w, http.StatusBadRequest, "Invalid property ID")
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		default:
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property details")
		}
		return
	}

	unit := r.URL.Query().Get("area_unit")
	if !domain.IsKnownAreaUnit(unit) {
		unit = domain.AreaUnitSqm
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property, unit))
}
