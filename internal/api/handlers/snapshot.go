package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/domain"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

type SnapshotsResponse struct {
	Games []service.GameSummary `json:"games"`
	Count int                   `json:"count"`
}

func (h *SnapshotHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	games := h.snapshotService.AvailableGames()
	writeJSON(w, http.StatusOK, SnapshotsResponse{Games: games, Count: len(games)})
}

// Analyze runs one analysis type on one snapshot. Unlike the chat path, an
// out-of-range index is a 404 here, not a fallback to the first game.
func (h *SnapshotHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid snapshot index")
		return
	}

	snap, err := h.snapshotService.Snapshot(index)
	if err != nil {
		if errors.Is(err, domain.ErrNoSnapshot) || errors.Is(err, domain.ErrSnapshotOutOfRange) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR [snapshot.Analyze]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}

	var payload any
	switch r.URL.Query().Get("type") {
	case "items":
		payload, err = h.snapshotService.AnalyzeItems(r.Context(), snap)
	case "counters":
		payload, err = h.snapshotService.AnalyzeCounters(r.Context(), snap)
	case "game_state":
		payload, err = h.snapshotService.AnalyzeGameState(r.Context(), snap)
	default:
		payload, err = h.snapshotService.FullAnalysis(r.Context(), snap)
	}
	if err != nil {
		if errors.Is(err, domain.ErrMissingSubjectPlayer) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("ERROR [snapshot.Analyze]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze snapshot")
		return
	}

	writeJSON(w, http.StatusOK, payload)
}
