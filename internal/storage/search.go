package storage

import (
	"sort"
	"strings"

	"istanbulGuideAPI/internal/geo"
	"istanbulGuideAPI/internal/types/business"
)

// SearchBusinesses runs the conjunctive filter pipeline over the full
// collection and returns matches sorted by rating descending, an absent
// rating counting as zero. Ties keep insertion order. An empty filter set
// returns everything.
func (s *MemStorage) SearchBusinesses(filters business.SearchFilters) []business.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]business.Business, 0)
	for id := 1; id < s.nextBusinessID; id++ {
		b, ok := s.businesses[id]
		if !ok {
			continue
		}
		if matchesFilters(b, filters) {
			results = append(results, b)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return ratingOrZero(results[i]) > ratingOrZero(results[j])
	})

	return results
}

func matchesFilters(b business.Business, f business.SearchFilters) bool {
	if f.Query != "" {
		query := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(b.Name), query) &&
			!strings.Contains(strings.ToLower(b.Category), query) &&
			!strings.Contains(strings.ToLower(b.Address), query) {
			return false
		}
	}

	if f.District != "" && !strings.EqualFold(b.District, f.District) {
		return false
	}

	// Category is a substring match, looser than the district equality.
	if f.Category != "" && !strings.Contains(strings.ToLower(b.Category), strings.ToLower(f.Category)) {
		return false
	}

	// A rating floor of exactly 0 filters nothing; unrated businesses are
	// excluded whenever a positive floor is set.
	if f.MinRating != nil && *f.MinRating > 0 {
		if b.Rating == nil || *b.Rating < *f.MinRating {
			return false
		}
	}

	if f.OnlyOpen && (b.IsOpen == nil || !*b.IsOpen) {
		return false
	}

	if f.Latitude != nil && f.Longitude != nil && f.MaxDistance != nil {
		distance := geo.Distance(*f.Latitude, *f.Longitude, b.Latitude, b.Longitude)
		if distance > *f.MaxDistance {
			return false
		}
	}

	return true
}

func ratingOrZero(b business.Business) float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}
