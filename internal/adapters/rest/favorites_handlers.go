package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxRequestBodyBytes = 1 << 20

type FavoritesHandler struct {
	addUC    usecases_port.AddToFavoritesUseCase
	removeUC usecases_port.RemoveFromFavoritesUseCase
	getUC    usecases_port.GetFavoritesUseCase
}

func NewFavoritesHandler(addUC usecases_port.AddToFavoritesUseCase,
	removeUC usecases_port.RemoveFromFavoritesUseCase,
	getUC usecases_port.GetFavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{
		addUC:    addUC,
		removeUC: removeUC,
		getUC:    getUC,
	}
}

// GetFavorites обрабатывает GET /favorites
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	visitorID := contextkeys.VisitorIDFromContext(r.Context())
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":    "GetFavorites",
		"visitor_id": visitorID,
	})

	props, err := h.getUC.Execute(r.Context(), visitorID)
	if err != nil {
		handlerLogger.Error("Get favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	unit := r.URL.Query().Get("area_unit")
	if !domain.IsKnownAreaUnit(unit) {
		unit = domain.AreaUnitSqm
	}
	RespondWithJSON(w, http.StatusOK, PropertiesResponse{
		Data:     toPropertyResponses(props, unit),
		Total:    len(props),
		AreaUnit: unit,
	})
}

// AddToFavorites обрабатывает POST /favorites
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	visitorID := contextkeys.VisitorIDFromContext(r.Context())
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":    "AddToFavorites",
		"visitor_id": visitorID,
	})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.ValidateRequest(constants.RequestAddFavorite, constants.ContractVersionV1, body); err != nil {
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := decodePropertyID(body)
	if err != nil {
		handlerLogger.Warn("Invalid property_id", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property_id")
		return
	}

	handlerLogger = handlerLogger.WithFields(port.Fields{"property_id": propertyID})
	if err := h.addUC.Execute(r.Context(), visitorID, propertyID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPropertyID):
			WriteJSONError(w, http.StatusBadRequest, "Invalid property_id")
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		default:
			handlerLogger.Error("Add to favorites use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to add to favorites")
		}
		return
	}

	RespondWithJSON(w, http.StatusCreated, FavoriteAddedResponse{PropertyID: propertyID, Status: "added"})
}

// RemoveFromFavorites обрабатывает DELETE /favorites/{propertyID}
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	visitorID := contextkeys.VisitorIDFromContext(r.Context())
	rawID := chi.URLParam(r, "propertyID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "RemoveFromFavorites",
		"visitor_id":  visitorID,
		"property_id": rawID,
	})

	propertyID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	if err := h.removeUC.Execute(r.Context(), visitorID, propertyID); err != nil {
		if errors.Is(err, domain.ErrInvalidPropertyID) {
			WriteJSONError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}
		handlerLogger.Error("Remove from favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove from favorites")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodePropertyID достает property_id, который схема разрешает числом или строкой
func decodePropertyID(body []byte) (int64, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var req AddFavoriteRequest
	if err := decoder.Decode(&req); err != nil {
		return 0, err
	}

	switch v := req.PropertyID.(type) {
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected property_id type %T", v)
	}
}
