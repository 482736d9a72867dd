package services

import (
	"context"
	"fmt"

	"istanbulGuideAPI/internal/storage"
	"istanbulGuideAPI/internal/types/searchhistory"
)

type SearchHistoryService struct {
	storage *storage.MemStorage
}

func NewSearchHistoryService(storage *storage.MemStorage) *SearchHistoryService {
	return &SearchHistoryService{storage: storage}
}

func (s *SearchHistoryService) ListSearchHistory(ctx context.Context, userID string) ([]searchhistory.SearchHistory, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	return s.storage.ListSearchHistory(userID), nil
}

func (s *SearchHistoryService) RecordSearch(ctx context.Context, req *searchhistory.AddSearchHistoryRequest) (searchhistory.SearchHistory, error) {
	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	return s.storage.AddSearchHistory(*req), nil
}
