package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"istanbulGuideAPI/clients"
	"istanbulGuideAPI/handlers"
	"istanbulGuideAPI/internal/storage"
	"istanbulGuideAPI/middleware"
	"istanbulGuideAPI/services"

	_ "net/http/pprof"
)

var (
	memStorage           *storage.MemStorage
	businessService      *services.BusinessService
	favoriteService      *services.FavoriteService
	searchHistoryService *services.SearchHistoryService
	placesService        *services.PlacesService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GOOGLE_MAPS_API_KEY not set, places import will return empty results")
	}

	// The store is the single owner of all directory state. Everything else
	// gets a handle to this one instance.
	memStorage = storage.NewMemStorage()

	placesClient := clients.NewGooglePlacesClient(apiKey)

	businessService = services.NewBusinessService(memStorage)
	favoriteService = services.NewFavoriteService(memStorage)
	searchHistoryService = services.NewSearchHistoryService(memStorage)
	placesService = services.NewPlacesService(memStorage, placesClient)

	middleware.InitPrometheus()
}

func main() {
	// Initialize handlers
	businessHandler := handlers.NewBusinessHandler(businessService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	searchHistoryHandler := handlers.NewSearchHistoryHandler(searchHistoryService)
	placesHandler := handlers.NewPlacesHandler(placesService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "istanbul-guide-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"name": "İstanbul Keşif Rehberi API", "version": "1.0.0"}`))
	}).Methods("GET")

	api.HandleFunc("/businesses/search", businessHandler.SearchBusinesses).Methods("POST")
	api.HandleFunc("/businesses/place/{placeId}", businessHandler.GetBusinessByPlaceID).Methods("GET")
	api.HandleFunc("/businesses/{id}", businessHandler.GetBusiness).Methods("GET")
	api.HandleFunc("/businesses/{id}", businessHandler.UpdateBusiness).Methods("PUT")
	api.HandleFunc("/businesses", businessHandler.CreateBusiness).Methods("POST")

	api.HandleFunc("/favorites/{businessId}/{userId}", favoriteHandler.RemoveFavorite).Methods("DELETE")
	api.HandleFunc("/favorites/{userId}", favoriteHandler.ListFavorites).Methods("GET")
	api.HandleFunc("/favorites", favoriteHandler.AddFavorite).Methods("POST")

	api.HandleFunc("/search-history/{userId}", searchHistoryHandler.GetSearchHistory).Methods("GET")

	api.HandleFunc("/districts", businessHandler.GetDistricts).Methods("GET")

	api.HandleFunc("/places/import", placesHandler.ImportPlaces).Methods("POST")
	api.HandleFunc("/places/refresh/{placeId}", placesHandler.RefreshPlace).Methods("POST")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length", "X-Request-ID"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
