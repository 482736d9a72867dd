package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"istanbulGuideAPI/internal/types/favorite"
	"istanbulGuideAPI/services"

	"github.com/gorilla/mux"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req favorite.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fav, err := h.favoriteService.AddFavorite(ctx, &req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, fav)
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	vars := mux.Vars(r)
	businessID, err := strconv.Atoi(vars["businessId"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid business ID")
		return
	}
	userID := vars["userId"]

	removed, err := h.favoriteService.RemoveFavorite(ctx, businessID, userID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !removed {
		respondWithError(w, http.StatusNotFound, "Favorite not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}

func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["userId"]

	businesses, err := h.favoriteService.ListFavorites(ctx, userID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, businesses)
}
