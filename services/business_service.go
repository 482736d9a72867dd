package services

import (
	"context"
	"errors"
	"fmt"

	"istanbulGuideAPI/internal/storage"
	"istanbulGuideAPI/internal/types/business"
	"istanbulGuideAPI/internal/types/searchhistory"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrDuplicatePlace   = errors.New("business with this place id already exists")
	ErrInvalidInput     = errors.New("invalid input")
)

// BusinessService validates requests and synthesizes conflict/not-found
// errors on top of the store, which itself never fails.
type BusinessService struct {
	storage *storage.MemStorage
}

func NewBusinessService(storage *storage.MemStorage) *BusinessService {
	return &BusinessService{storage: storage}
}

func (s *BusinessService) CreateBusiness(ctx context.Context, req *business.CreateBusinessRequest) (business.Business, error) {
	if err := validateCreateRequest(req); err != nil {
		return business.Business{}, err
	}

	// Place id uniqueness is enforced here, not in the store.
	if _, exists := s.storage.GetBusinessByPlaceID(req.PlaceID); exists {
		return business.Business{}, ErrDuplicatePlace
	}

	return s.storage.CreateBusiness(*req), nil
}

func (s *BusinessService) GetBusiness(ctx context.Context, id int) (business.Business, error) {
	b, ok := s.storage.GetBusiness(id)
	if !ok {
		return business.Business{}, ErrBusinessNotFound
	}
	return b, nil
}

func (s *BusinessService) GetBusinessByPlaceID(ctx context.Context, placeID string) (business.Business, error) {
	b, ok := s.storage.GetBusinessByPlaceID(placeID)
	if !ok {
		return business.Business{}, ErrBusinessNotFound
	}
	return b, nil
}

func (s *BusinessService) UpdateBusiness(ctx context.Context, id int, req *business.UpdateBusinessRequest) (business.Business, error) {
	if err := validateUpdateRequest(req); err != nil {
		return business.Business{}, err
	}

	b, ok := s.storage.UpdateBusiness(id, *req)
	if !ok {
		return business.Business{}, ErrBusinessNotFound
	}
	return b, nil
}

// SearchBusinesses validates the filters, runs the search and records a
// history entry when the caller actually filtered on something searchable.
func (s *BusinessService) SearchBusinesses(ctx context.Context, filters business.SearchFilters, userID string) (business.SearchResponse, error) {
	if err := validateFilters(filters); err != nil {
		return business.SearchResponse{}, err
	}

	results := s.storage.SearchBusinesses(filters)

	if filters.Query != "" || filters.District != "" || filters.Category != "" {
		if userID == "" {
			userID = "anonymous"
		}
		s.storage.AddSearchHistory(searchhistory.AddSearchHistoryRequest{
			Query:        filters.Query,
			District:     optionalString(filters.District),
			Category:     optionalString(filters.Category),
			ResultsCount: len(results),
			UserID:       userID,
		})
	}

	return business.SearchResponse{
		Businesses: results,
		Total:      len(results),
		Filters:    filters,
	}, nil
}

func validateCreateRequest(req *business.CreateBusinessRequest) error {
	if req.PlaceID == "" {
		return fmt.Errorf("%w: place_id is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if req.District == "" {
		return fmt.Errorf("%w: district is required", ErrInvalidInput)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if req.Latitude == 0 && req.Longitude == 0 {
		return fmt.Errorf("%w: latitude and longitude are required", ErrInvalidInput)
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	if req.PriceLevel != nil && (*req.PriceLevel < 1 || *req.PriceLevel > 4) {
		return fmt.Errorf("%w: price_level must be between 1 and 4", ErrInvalidInput)
	}
	return nil
}

func validateUpdateRequest(req *business.UpdateBusinessRequest) error {
	if req.PlaceID != nil && *req.PlaceID == "" {
		return fmt.Errorf("%w: place_id cannot be empty", ErrInvalidInput)
	}
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	if req.PriceLevel != nil && (*req.PriceLevel < 1 || *req.PriceLevel > 4) {
		return fmt.Errorf("%w: price_level must be between 1 and 4", ErrInvalidInput)
	}
	return nil
}

func validateFilters(filters business.SearchFilters) error {
	if filters.MinRating != nil && (*filters.MinRating < 0 || *filters.MinRating > 5) {
		return fmt.Errorf("%w: min_rating must be between 0 and 5", ErrInvalidInput)
	}
	if filters.MaxDistance != nil && (*filters.MaxDistance < 1 || *filters.MaxDistance > 25) {
		return fmt.Errorf("%w: max_distance must be between 1 and 25 km", ErrInvalidInput)
	}
	if (filters.Latitude == nil) != (filters.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be supplied together", ErrInvalidInput)
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
