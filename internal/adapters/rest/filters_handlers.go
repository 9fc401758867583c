package rest

import (
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
	"strings"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getDictionariesUC  usecases_port.GetDictionariesUseCase
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getDictionariesUC usecases_port.GetDictionariesUseCase) *FilterHandler {
	return &FilterHandler{
		getFilterOptionsUC: getFilterOptionsUC,
		getDictionariesUC:  getDictionariesUC,
	}
}

func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetFilterOptions"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, toFilterOptionsResponse(options))
}

func (h *FilterHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	var names []string
	if namesStr := r.URL.Query().Get("names"); namesStr != "" {
		names = strings.Split(namesStr, ",")
	}

	// Пустой names - все справочники
	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names)
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetDictionaries"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionaryItemsResponse, len(dictionaries))
	for key, items := range dictionaries {
		responseItems := make([]DictionaryItemResponse, 0, len(items))
		for _, item := range items {
			responseItems = append(responseItems, DictionaryItemResponse{
				SystemName:  item.SystemName,
				DisplayName: item.DisplayName,
			})
		}
		response[key] = responseItems
	}

	RespondWithJSON(w, http.StatusOK, response)
}
