package rest

import (
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
)

type ShowcaseHandler struct {
	getShowcaseUC usecases_port.GetShowcaseUseCase
}

func NewShowcaseHandler(getShowcaseUC usecases_port.GetShowcaseUseCase) *ShowcaseHandler {
	return &ShowcaseHandler{getShowcaseUC: getShowcaseUC}
}

// GetComponents обрабатывает GET /components
func (h *ShowcaseHandler) GetComponents(w http.ResponseWriter, r *http.Request) {
	showcase, err := h.getShowcaseUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetComponents"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve showcase")
		return
	}
	RespondWithJSON(w, http.StatusOK, toShowcaseResponse(showcase))
}
