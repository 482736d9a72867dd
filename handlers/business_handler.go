package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"istanbulGuideAPI/internal/types/business"
	"istanbulGuideAPI/middleware"
	"istanbulGuideAPI/services"

	"github.com/gorilla/mux"
)

type BusinessHandler struct {
	businessService *services.BusinessService
}

func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

func (h *BusinessHandler) SearchBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		business.SearchFilters
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.businessService.SearchBusinesses(ctx, req.SearchFilters, req.UserID)
	if err != nil {
		middleware.CountSearch("invalid")
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	middleware.CountSearch("ok")

	respondWithJSON(w, http.StatusOK, response)
}

func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid business ID")
		return
	}

	b, err := h.businessService.GetBusiness(ctx, id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Business not found")
		return
	}

	respondWithJSON(w, http.StatusOK, b)
}

func (h *BusinessHandler) GetBusinessByPlaceID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	placeID := mux.Vars(r)["placeId"]

	b, err := h.businessService.GetBusinessByPlaceID(ctx, placeID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Business not found")
		return
	}

	respondWithJSON(w, http.StatusOK, b)
}

func (h *BusinessHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req business.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.businessService.CreateBusiness(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicatePlace):
			respondWithError(w, http.StatusConflict, "Business with this place id is already registered")
		case errors.Is(err, services.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Unable to create business")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, b)
}

func (h *BusinessHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid business ID")
		return
	}

	var req business.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.businessService.UpdateBusiness(ctx, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBusinessNotFound):
			respondWithError(w, http.StatusNotFound, "Business not found")
		case errors.Is(err, services.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Unable to update business")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, b)
}

func (h *BusinessHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"districts":  business.Districts,
		"categories": business.Categories,
	})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
