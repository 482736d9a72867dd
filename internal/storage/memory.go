package storage

import (
	"sync"
	"time"

	"istanbulGuideAPI/internal/types/business"
	"istanbulGuideAPI/internal/types/favorite"
	"istanbulGuideAPI/internal/types/searchhistory"
)

const maxSearchHistoryEntries = 50

// MemStorage is the in-memory record store. It owns the business, favorite
// and search-history collections and their identifier counters; identifiers
// start at 1 and are never reused. All access goes through the mutex because
// HTTP handlers call the store concurrently.
//
// The store layer never returns errors: lookups report absence with a bool,
// removals report success with a bool. Validation and conflict detection
// happen in the service layer.
type MemStorage struct {
	mu sync.RWMutex

	businesses          map[int]business.Business
	businessIDByPlaceID map[string]int
	favorites           map[int]favorite.Favorite
	searchHistory       map[int]searchhistory.SearchHistory

	nextBusinessID int
	nextFavoriteID int
	nextSearchID   int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		businesses:          make(map[int]business.Business),
		businessIDByPlaceID: make(map[string]int),
		favorites:           make(map[int]favorite.Favorite),
		searchHistory:       make(map[int]searchhistory.SearchHistory),
		nextBusinessID:      1,
		nextFavoriteID:      1,
		nextSearchID:        1,
	}
}

func (s *MemStorage) CreateBusiness(req business.CreateBusinessRequest) business.Business {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	b := business.Business{
		ID:          s.nextBusinessID,
		PlaceID:     req.PlaceID,
		Name:        req.Name,
		Address:     req.Address,
		District:    req.District,
		Category:    req.Category,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Phone:       req.Phone,
		Website:     req.Website,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsOpen:      req.IsOpen,
		PhotoURL:    req.PhotoURL,
		PriceLevel:  req.PriceLevel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextBusinessID++

	s.businesses[b.ID] = b
	s.businessIDByPlaceID[b.PlaceID] = b.ID

	return b
}

func (s *MemStorage) GetBusiness(id int) (business.Business, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.businesses[id]
	return b, ok
}

func (s *MemStorage) GetBusinessByPlaceID(placeID string) (business.Business, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.businessIDByPlaceID[placeID]
	if !ok {
		return business.Business{}, false
	}
	b, ok := s.businesses[id]
	return b, ok
}

// UpdateBusiness merges the non-nil fields of the request onto the stored
// record, refreshes the update timestamp and re-indexes the place id in case
// it changed. Returns false if the identifier does not exist.
func (s *MemStorage) UpdateBusiness(id int, req business.UpdateBusinessRequest) (business.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.businesses[id]
	if !ok {
		return business.Business{}, false
	}

	if req.PlaceID != nil && *req.PlaceID != b.PlaceID {
		delete(s.businessIDByPlaceID, b.PlaceID)
		b.PlaceID = *req.PlaceID
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.District != nil {
		b.District = *req.District
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.Rating != nil {
		b.Rating = req.Rating
	}
	if req.ReviewCount != nil {
		b.ReviewCount = req.ReviewCount
	}
	if req.Phone != nil {
		b.Phone = req.Phone
	}
	if req.Website != nil {
		b.Website = req.Website
	}
	if req.Latitude != nil {
		b.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		b.Longitude = *req.Longitude
	}
	if req.IsOpen != nil {
		b.IsOpen = req.IsOpen
	}
	if req.PhotoURL != nil {
		b.PhotoURL = req.PhotoURL
	}
	if req.PriceLevel != nil {
		b.PriceLevel = req.PriceLevel
	}
	b.UpdatedAt = time.Now()

	s.businesses[id] = b
	s.businessIDByPlaceID[b.PlaceID] = id

	return b, true
}

// AddFavorite is idempotent: if the (business, user) pair already exists the
// stored record is returned unchanged.
func (s *MemStorage) AddFavorite(businessID int, userID string) favorite.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := 1; id < s.nextFavoriteID; id++ {
		f, ok := s.favorites[id]
		if ok && f.BusinessID == businessID && f.UserID == userID {
			return f
		}
	}

	f := favorite.Favorite{
		ID:         s.nextFavoriteID,
		BusinessID: businessID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	s.nextFavoriteID++
	s.favorites[f.ID] = f

	return f
}

func (s *MemStorage) RemoveFavorite(businessID int, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, f := range s.favorites {
		if f.BusinessID == businessID && f.UserID == userID {
			delete(s.favorites, id)
			return true
		}
	}
	return false
}

// ListFavorites returns the businesses a user has saved, skipping favorites
// whose referenced business no longer resolves.
func (s *MemStorage) ListFavorites(userID string) []business.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()

	businesses := make([]business.Business, 0)
	for id := 1; id < s.nextFavoriteID; id++ {
		f, ok := s.favorites[id]
		if !ok || f.UserID != userID {
			continue
		}
		if b, ok := s.businesses[f.BusinessID]; ok {
			businesses = append(businesses, b)
		}
	}
	return businesses
}

func (s *MemStorage) AddSearchHistory(req searchhistory.AddSearchHistoryRequest) searchhistory.SearchHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := searchhistory.SearchHistory{
		ID:           s.nextSearchID,
		Query:        req.Query,
		District:     req.District,
		Category:     req.Category,
		ResultsCount: req.ResultsCount,
		UserID:       req.UserID,
		CreatedAt:    time.Now(),
	}
	s.nextSearchID++
	s.searchHistory[entry.ID] = entry

	return entry
}

// ListSearchHistory returns up to the 50 most recent entries for a user,
// newest first. Identifier descending breaks creation-time ties so the order
// stays deterministic within a clock tick.
func (s *MemStorage) ListSearchHistory(userID string) []searchhistory.SearchHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]searchhistory.SearchHistory, 0)
	for id := s.nextSearchID - 1; id >= 1; id-- {
		entry, ok := s.searchHistory[id]
		if !ok || entry.UserID != userID {
			continue
		}
		entries = append(entries, entry)
		if len(entries) == maxSearchHistoryEntries {
			break
		}
	}
	return entries
}
