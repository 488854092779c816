package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

// QueryHandler exposes the intent dispatcher directly, bypassing the LLM.
// Clients that already know the intent vocabulary post structured intents.
type QueryHandler struct {
	dispatch *service.DispatchService
}

func NewQueryHandler(dispatch *service.DispatchService) *QueryHandler {
	return &QueryHandler{dispatch: dispatch}
}

func (h *QueryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var intent domain.Intent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if intent.Kind == "" {
		writeError(w, http.StatusBadRequest, "Missing intent")
		return
	}

	payload, err := h.dispatch.Dispatch(r.Context(), &intent)
	if err != nil {
		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			writeJSON(w, http.StatusNotFound, service.ErrorPayload(err))
			return
		}
		log.Printf("ERROR [query.Handle]: %v", err)
		writeJSON(w, http.StatusBadRequest, service.ErrorPayload(err))
		return
	}

	writeJSON(w, http.StatusOK, payload)
}
