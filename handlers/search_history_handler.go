package handlers

import (
	"context"
	"net/http"
	"time"

	"istanbulGuideAPI/services"

	"github.com/gorilla/mux"
)

type SearchHistoryHandler struct {
	searchHistoryService *services.SearchHistoryService
}

func NewSearchHistoryHandler(searchHistoryService *services.SearchHistoryService) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		searchHistoryService: searchHistoryService,
	}
}

func (h *SearchHistoryHandler) GetSearchHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	history, err := h.searchHistoryService.ListSearchHistory(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, history)
}
