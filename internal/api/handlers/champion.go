package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

type ChampionHandler struct {
	championRepo  repository.ChampionRepository
	lookupService *service.LookupService
}

func NewChampionHandler(championRepo repository.ChampionRepository, lookupService *service.LookupService) *ChampionHandler {
	return &ChampionHandler{championRepo: championRepo, lookupService: lookupService}
}

type ChampionSummary struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type ChampionsResponse struct {
	Champions []ChampionSummary `json:"champions"`
	Count     int               `json:"count"`
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [champion.GetAll]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get champions")
		return
	}

	resp := ChampionsResponse{
		Champions: make([]ChampionSummary, len(champions)),
		Count:     len(champions),
	}
	for i, c := range champions {
		resp.Champions[i] = ChampionSummary{Key: c.Key, Name: c.Name, Title: c.Title}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get resolves free-form names, so /champions/j4 and /champions/Jarvan%20IV
// both work.
func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	info, err := h.lookupService.ChampionInfo(r.Context(), name)
	if err != nil {
		var notFound *service.NotFoundError
		if errors.As(err, &notFound) {
			writeJSON(w, http.StatusNotFound, service.ErrorPayload(err))
			return
		}
		log.Printf("ERROR [champion.Get]: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get champion")
		return
	}

	writeJSON(w, http.StatusOK, info)
}
