package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"istanbulGuideAPI/clients"
	"istanbulGuideAPI/internal/storage"
	"istanbulGuideAPI/internal/types/business"
)

func TestCategoryForMapsProviderTypes(t *testing.T) {
	assert.Equal(t, "Restoran & Kafe", categoryFor([]string{"point_of_interest", "cafe"}))
	assert.Equal(t, "Sağlık & Güzellik", categoryFor([]string{"pharmacy", "establishment"}))
	// unknown but meaningful type passes through
	assert.Equal(t, "florist", categoryFor([]string{"point_of_interest", "florist"}))
	assert.Equal(t, "business", categoryFor(nil))
}

func TestExtractDistrictPrefersAdministrativeLevels(t *testing.T) {
	components := []clients.AddressComponent{
		{LongName: "Moda", Types: []string{"sublocality", "sublocality_level_1"}},
		{LongName: "Kadıköy", Types: []string{"administrative_area_level_2", "political"}},
		{LongName: "İstanbul", Types: []string{"administrative_area_level_1"}},
	}
	assert.Equal(t, "Kadıköy", extractDistrict(components))

	// falls back to sublocality when no district-level component exists
	assert.Equal(t, "Moda", extractDistrict(components[:1]))
	assert.Equal(t, "", extractDistrict(nil))
}

func TestUpsertPlaceCreatesThenUpdates(t *testing.T) {
	store := storage.NewMemStorage()
	svc := NewPlacesService(store, clients.NewGooglePlacesClient(""))

	rating := 4.1
	place := clients.PlaceResult{
		PlaceID:  "ChIJupsert",
		Name:     "Simitçi",
		Vicinity: "İstiklal Cd, Beyoğlu",
		Rating:   &rating,
		Types:    []string{"bakery", "food"},
	}
	place.Geometry.Location.Lat = 41.0336
	place.Geometry.Location.Lng = 28.9770

	created, isNew := svc.upsertPlace(place)
	assert.True(t, isNew)
	assert.Equal(t, "Simitçi", created.Name)
	assert.Equal(t, "İstanbul", created.District)
	require.NotNil(t, created.Rating)
	assert.Equal(t, 4.1, *created.Rating)

	betterRating := 4.6
	place.Rating = &betterRating
	updated, isNew := svc.upsertPlace(place)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.6, *updated.Rating)

	results := store.SearchBusinesses(business.SearchFilters{})
	assert.Len(t, results, 1, "re-importing the same place must not duplicate it")
}

func TestImportWithoutAPIKeyDegradesToEmpty(t *testing.T) {
	svc := NewPlacesService(storage.NewMemStorage(), clients.NewGooglePlacesClient(""))

	result, err := svc.Import(context.Background(), &ImportRequest{})
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Updated)
	assert.Empty(t, result.Businesses)
}

func TestRefreshPlaceUnknownPlace(t *testing.T) {
	svc := NewPlacesService(storage.NewMemStorage(), clients.NewGooglePlacesClient(""))

	_, err := svc.RefreshPlace(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}
