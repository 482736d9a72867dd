package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"istanbulGuideAPI/internal/types/business"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func seedSearchFixtures(s *MemStorage) {
	s.CreateBusiness(business.CreateBusinessRequest{
		PlaceID: "p1", Name: "Çiya Sofrası", Address: "Güneşlibahçe Sk, Kadıköy",
		District: "Kadıköy", Category: "Restoran & Kafe",
		Rating: floatPtr(3.0), Latitude: 40.9901, Longitude: 29.0254,
		IsOpen: boolPtr(true),
	})
	s.CreateBusiness(business.CreateBusinessRequest{
		PlaceID: "p2", Name: "Yeni Lokanta", Address: "Kumbaracı Ykş, Beyoğlu",
		District: "Beyoğlu", Category: "Restoran & Kafe",
		Latitude: 41.0305, Longitude: 28.9764,
	})
	s.CreateBusiness(business.CreateBusinessRequest{
		PlaceID: "p3", Name: "Mandabatmaz", Address: "Olivia Geçidi, Beyoğlu",
		District: "Beyoğlu", Category: "Kahveci",
		Rating: floatPtr(4.5), Latitude: 41.0340, Longitude: 28.9773,
		IsOpen: boolPtr(false),
	})
	s.CreateBusiness(business.CreateBusinessRequest{
		PlaceID: "p4", Name: "Karaköy Güllüoğlu", Address: "Rıhtım Cd, Karaköy",
		District: "Beyoğlu", Category: "Tatlıcı",
		Rating: floatPtr(4.5), Latitude: 41.0229, Longitude: 28.9772,
		IsOpen: boolPtr(true),
	})
}

func TestSearchNoFiltersReturnsAllSortedByRating(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{})
	require.Len(t, results, 4)

	// the two 4.5 businesses first, then 3.0, unrated last
	assert.Equal(t, 4.5, *results[0].Rating)
	assert.Equal(t, 4.5, *results[1].Rating)
	assert.Equal(t, 3.0, *results[2].Rating)
	assert.Nil(t, results[3].Rating)
}

func TestSearchRatingTiesKeepInsertionOrder(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{})
	require.Len(t, results, 4)
	assert.Equal(t, "p3", results[0].PlaceID)
	assert.Equal(t, "p4", results[1].PlaceID)
}

func TestSearchQueryMatchesNameCategoryOrAddress(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	byName := s.SearchBusinesses(business.SearchFilters{Query: "mandabatmaz"})
	require.Len(t, byName, 1)
	assert.Equal(t, "p3", byName[0].PlaceID)

	byCategory := s.SearchBusinesses(business.SearchFilters{Query: "kahveci"})
	require.Len(t, byCategory, 1)

	byAddress := s.SearchBusinesses(business.SearchFilters{Query: "rıhtım"})
	require.Len(t, byAddress, 1)
	assert.Equal(t, "p4", byAddress[0].PlaceID)
}

func TestSearchDistrictIsExactMatch(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{District: "beyoğlu"})
	assert.Len(t, results, 3)

	// substring of a district name must not match
	results = s.SearchBusinesses(business.SearchFilters{District: "Beyoğ"})
	assert.Empty(t, results)
}

func TestSearchCategoryIsSubstringMatch(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{Category: "restoran"})
	assert.Len(t, results, 2)
}

func TestSearchFiltersAreConjunctive(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	// query matches Çiya (Kadıköy), but the district filter excludes it
	results := s.SearchBusinesses(business.SearchFilters{Query: "çiya", District: "Beyoğlu"})
	assert.Empty(t, results)
}

func TestSearchMinRatingExcludesUnrated(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{MinRating: floatPtr(4.0)})
	require.Len(t, results, 2)
	for _, b := range results {
		require.NotNil(t, b.Rating)
		assert.GreaterOrEqual(t, *b.Rating, 4.0)
	}
}

func TestSearchMinRatingZeroFiltersNothing(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{MinRating: floatPtr(0)})
	assert.Len(t, results, 4)
}

func TestSearchOnlyOpen(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	results := s.SearchBusinesses(business.SearchFilters{OnlyOpen: true})
	require.Len(t, results, 2)
	for _, b := range results {
		require.NotNil(t, b.IsOpen)
		assert.True(t, *b.IsOpen)
	}
}

func TestSearchMaxDistance(t *testing.T) {
	s := NewMemStorage()
	seedSearchFixtures(s)

	// origin in Beyoğlu, 1 km radius: Kadıköy fixtures are across the
	// Bosphorus and fall outside
	results := s.SearchBusinesses(business.SearchFilters{
		Latitude:    floatPtr(41.0340),
		Longitude:   floatPtr(28.9773),
		MaxDistance: floatPtr(1),
	})
	require.NotEmpty(t, results)
	for _, b := range results {
		assert.NotEqual(t, "Kadıköy", b.District)
	}

	// distance filter needs all three inputs; without max distance the
	// coordinates alone filter nothing
	results = s.SearchBusinesses(business.SearchFilters{
		Latitude:  floatPtr(41.0340),
		Longitude: floatPtr(28.9773),
	})
	assert.Len(t, results, 4)
}
