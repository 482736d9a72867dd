package services

import (
	"context"
	"fmt"

	"istanbulGuideAPI/internal/storage"
	"istanbulGuideAPI/internal/types/business"
	"istanbulGuideAPI/internal/types/favorite"
)

type FavoriteService struct {
	storage *storage.MemStorage
}

func NewFavoriteService(storage *storage.MemStorage) *FavoriteService {
	return &FavoriteService{storage: storage}
}

// AddFavorite is idempotent: saving an already-saved business returns the
// existing record. The business reference is not required to resolve; a
// favorite survives its business, it just stops showing up in listings.
func (s *FavoriteService) AddFavorite(ctx context.Context, req *favorite.AddFavoriteRequest) (favorite.Favorite, error) {
	if req.BusinessID <= 0 {
		return favorite.Favorite{}, fmt.Errorf("%w: business_id is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return favorite.Favorite{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	return s.storage.AddFavorite(req.BusinessID, req.UserID), nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, businessID int, userID string) (bool, error) {
	if businessID <= 0 {
		return false, fmt.Errorf("%w: business_id is required", ErrInvalidInput)
	}
	if userID == "" {
		return false, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	return s.storage.RemoveFavorite(businessID, userID), nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID string) ([]business.Business, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	return s.storage.ListFavorites(userID), nil
}
