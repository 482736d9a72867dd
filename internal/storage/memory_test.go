package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"istanbulGuideAPI/internal/types/business"
	"istanbulGuideAPI/internal/types/searchhistory"
)

func newTestBusiness(placeID, name string) business.CreateBusinessRequest {
	return business.CreateBusinessRequest{
		PlaceID:   placeID,
		Name:      name,
		Address:   "Test Caddesi 1, İstanbul",
		District:  "Kadıköy",
		Category:  "Restoran & Kafe",
		Latitude:  40.9833,
		Longitude: 29.0333,
	}
}

func TestCreateBusinessAssignsMonotonicIDs(t *testing.T) {
	s := NewMemStorage()

	first := s.CreateBusiness(newTestBusiness("place-1", "Kebapçı"))
	second := s.CreateBusiness(newTestBusiness("place-2", "Balıkçı"))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestGetBusinessByPlaceIDAfterCreate(t *testing.T) {
	s := NewMemStorage()

	created := s.CreateBusiness(newTestBusiness("ChIJtest123", "Çay Evi"))

	byPlace, ok := s.GetBusinessByPlaceID("ChIJtest123")
	require.True(t, ok)
	assert.Equal(t, created, byPlace)

	byID, ok := s.GetBusiness(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, byID)
}

func TestGetBusinessAbsent(t *testing.T) {
	s := NewMemStorage()

	_, ok := s.GetBusiness(42)
	assert.False(t, ok)

	_, ok = s.GetBusinessByPlaceID("nope")
	assert.False(t, ok)
}

func TestUpdateBusinessMergesOnlyProvidedFields(t *testing.T) {
	s := NewMemStorage()
	created := s.CreateBusiness(newTestBusiness("place-1", "Eski İsim"))

	newName := "Yeni İsim"
	rating := 4.2
	updated, ok := s.UpdateBusiness(created.ID, business.UpdateBusinessRequest{
		Name:   &newName,
		Rating: &rating,
	})
	require.True(t, ok)

	assert.Equal(t, "Yeni İsim", updated.Name)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.2, *updated.Rating)
	// untouched fields survive the merge
	assert.Equal(t, created.Address, updated.Address)
	assert.Equal(t, created.District, updated.District)
	assert.Equal(t, created.PlaceID, updated.PlaceID)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateBusinessReindexesPlaceID(t *testing.T) {
	s := NewMemStorage()
	created := s.CreateBusiness(newTestBusiness("old-place", "Dükkan"))

	newPlaceID := "new-place"
	_, ok := s.UpdateBusiness(created.ID, business.UpdateBusinessRequest{PlaceID: &newPlaceID})
	require.True(t, ok)

	_, ok = s.GetBusinessByPlaceID("old-place")
	assert.False(t, ok, "old place id should no longer resolve")

	b, ok := s.GetBusinessByPlaceID("new-place")
	require.True(t, ok)
	assert.Equal(t, created.ID, b.ID)
}

func TestUpdateBusinessAbsent(t *testing.T) {
	s := NewMemStorage()

	name := "x"
	_, ok := s.UpdateBusiness(99, business.UpdateBusinessRequest{Name: &name})
	assert.False(t, ok)
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	s := NewMemStorage()
	b := s.CreateBusiness(newTestBusiness("place-1", "Kafe"))

	first := s.AddFavorite(b.ID, "user-1")
	second := s.AddFavorite(b.ID, "user-1")

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.ListFavorites("user-1"), 1)

	// a different user gets their own record
	other := s.AddFavorite(b.ID, "user-2")
	assert.NotEqual(t, first.ID, other.ID)
}

func TestRemoveFavorite(t *testing.T) {
	s := NewMemStorage()
	b := s.CreateBusiness(newTestBusiness("place-1", "Kafe"))
	s.AddFavorite(b.ID, "user-1")

	assert.True(t, s.RemoveFavorite(b.ID, "user-1"))
	assert.Empty(t, s.ListFavorites("user-1"))

	// removing a pair that does not exist reports false and changes nothing
	assert.False(t, s.RemoveFavorite(b.ID, "user-1"))
	assert.False(t, s.RemoveFavorite(999, "user-1"))
}

func TestListFavoritesSkipsDanglingReferences(t *testing.T) {
	s := NewMemStorage()
	b := s.CreateBusiness(newTestBusiness("place-1", "Kafe"))

	s.AddFavorite(b.ID, "user-1")
	s.AddFavorite(777, "user-1") // business 777 was never created

	favorites := s.ListFavorites("user-1")
	require.Len(t, favorites, 1)
	assert.Equal(t, b.ID, favorites[0].ID)
}

func TestSearchHistoryTruncatesToFifty(t *testing.T) {
	s := NewMemStorage()

	for i := 0; i < 60; i++ {
		s.AddSearchHistory(searchhistory.AddSearchHistoryRequest{
			Query:  fmt.Sprintf("arama %d", i),
			UserID: "user-1",
		})
	}
	s.AddSearchHistory(searchhistory.AddSearchHistoryRequest{Query: "başkası", UserID: "user-2"})

	entries := s.ListSearchHistory("user-1")
	require.Len(t, entries, 50)

	// newest first, so the very last insert for user-1 leads
	assert.Equal(t, "arama 59", entries[0].Query)
	assert.Equal(t, "arama 10", entries[49].Query)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].ID, entries[i].ID)
	}
}

func TestListSearchHistoryFiltersByUser(t *testing.T) {
	s := NewMemStorage()
	s.AddSearchHistory(searchhistory.AddSearchHistoryRequest{Query: "kebap", UserID: "user-1"})
	s.AddSearchHistory(searchhistory.AddSearchHistoryRequest{Query: "balık", UserID: "user-2"})

	entries := s.ListSearchHistory("user-1")
	require.Len(t, entries, 1)
	assert.Equal(t, "kebap", entries[0].Query)
}
