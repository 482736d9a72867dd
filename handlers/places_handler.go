package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"istanbulGuideAPI/middleware"
	"istanbulGuideAPI/services"

	"github.com/gorilla/mux"
)

type PlacesHandler struct {
	placesService *services.PlacesService
}

func NewPlacesHandler(placesService *services.PlacesService) *PlacesHandler {
	return &PlacesHandler{
		placesService: placesService,
	}
}

// ImportPlaces pulls businesses from the places provider into the store.
// The provider call dominates the budget, hence the longer timeout.
func (h *PlacesHandler) ImportPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var req services.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.placesService.Import(ctx, &req)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Places provider request failed")
		return
	}
	middleware.CountPlacesImport(result.Imported, result.Updated)

	respondWithJSON(w, http.StatusOK, result)
}

func (h *PlacesHandler) RefreshPlace(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	placeID := mux.Vars(r)["placeId"]

	b, err := h.placesService.RefreshPlace(ctx, placeID)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			respondWithError(w, http.StatusNotFound, "Business not found")
			return
		}
		respondWithError(w, http.StatusBadGateway, "Places provider request failed")
		return
	}

	respondWithJSON(w, http.StatusOK, b)
}
