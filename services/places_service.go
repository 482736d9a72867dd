package services

import (
	"context"
	"fmt"
	"log"

	"istanbulGuideAPI/clients"
	"istanbulGuideAPI/internal/storage"
	"istanbulGuideAPI/internal/types/business"
)

// PlacesService pulls place records from the external provider into the
// store. Imports are upserts keyed by place id, so re-importing an area never
// creates duplicates.
type PlacesService struct {
	storage *storage.MemStorage
	client  *clients.GooglePlacesClient
}

func NewPlacesService(storage *storage.MemStorage, client *clients.GooglePlacesClient) *PlacesService {
	return &PlacesService{storage: storage, client: client}
}

type ImportRequest struct {
	Query        string   `json:"query"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	RadiusMeters int      `json:"radius_meters"`
	PlaceType    string   `json:"place_type"`
}

type ImportResult struct {
	Imported   int                 `json:"imported"`
	Updated    int                 `json:"updated"`
	Businesses []business.Business `json:"businesses"`
}

// Import searches the provider (text search when a query is given, nearby
// search otherwise) and upserts every returned place. Defaults: Istanbul city
// center, 2 km radius.
func (s *PlacesService) Import(ctx context.Context, req *ImportRequest) (ImportResult, error) {
	lat := business.CityCenterLatitude
	lng := business.CityCenterLongitude
	if req.Latitude != nil && req.Longitude != nil {
		lat = *req.Latitude
		lng = *req.Longitude
	}
	radius := req.RadiusMeters
	if radius <= 0 {
		radius = 2000
	}

	var (
		places []clients.PlaceResult
		err    error
	)
	if req.Query != "" {
		places, err = s.client.SearchText(ctx, req.Query, lat, lng, radius)
	} else {
		places, err = s.client.SearchNearby(ctx, lat, lng, radius, req.PlaceType)
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("places search failed: %w", err)
	}

	result := ImportResult{Businesses: make([]business.Business, 0, len(places))}
	for _, place := range places {
		if place.PlaceID == "" {
			continue
		}
		b, created := s.upsertPlace(place)
		if created {
			result.Imported++
		} else {
			result.Updated++
		}
		result.Businesses = append(result.Businesses, b)
	}

	log.Printf("Places import: %d new, %d updated near (%.4f, %.4f)", result.Imported, result.Updated, lat, lng)
	return result, nil
}

// RefreshPlace re-fetches details for a stored business and merges the fields
// the provider is authoritative for (contact info, rating, open-now, photo).
func (s *PlacesService) RefreshPlace(ctx context.Context, placeID string) (business.Business, error) {
	existing, ok := s.storage.GetBusinessByPlaceID(placeID)
	if !ok {
		return business.Business{}, ErrBusinessNotFound
	}

	details, err := s.client.GetPlaceDetails(ctx, placeID)
	if err != nil {
		return business.Business{}, fmt.Errorf("place details fetch failed: %w", err)
	}

	update := business.UpdateBusinessRequest{
		Rating:      details.Rating,
		ReviewCount: details.UserRatingsTotal,
		PriceLevel:  details.PriceLevel,
	}
	if details.Name != "" {
		update.Name = &details.Name
	}
	if details.FormattedAddress != "" {
		update.Address = &details.FormattedAddress
	}
	if details.FormattedPhoneNumber != "" {
		update.Phone = &details.FormattedPhoneNumber
	}
	if details.Website != "" {
		update.Website = &details.Website
	}
	if details.OpeningHours != nil && details.OpeningHours.OpenNow != nil {
		update.IsOpen = details.OpeningHours.OpenNow
	}
	if len(details.Photos) > 0 {
		photoURL := s.client.PhotoURL(details.Photos[0].PhotoReference, 400)
		if photoURL != "" {
			update.PhotoURL = &photoURL
		}
	}
	if district := extractDistrict(details.AddressComponents); district != "" {
		update.District = &district
	}

	updated, _ := s.storage.UpdateBusiness(existing.ID, update)
	return updated, nil
}

func (s *PlacesService) upsertPlace(place clients.PlaceResult) (business.Business, bool) {
	address := place.FormattedAddress
	if address == "" {
		address = place.Vicinity
	}
	category := categoryFor(place.Types)

	var photoURL *string
	if len(place.Photos) > 0 {
		if u := s.client.PhotoURL(place.Photos[0].PhotoReference, 400); u != "" {
			photoURL = &u
		}
	}
	var isOpen *bool
	if place.OpeningHours != nil {
		isOpen = place.OpeningHours.OpenNow
	}

	if existing, ok := s.storage.GetBusinessByPlaceID(place.PlaceID); ok {
		update := business.UpdateBusinessRequest{
			Rating:      place.Rating,
			ReviewCount: place.UserRatingsTotal,
			PriceLevel:  place.PriceLevel,
			IsOpen:      isOpen,
			PhotoURL:    photoURL,
			Latitude:    &place.Geometry.Location.Lat,
			Longitude:   &place.Geometry.Location.Lng,
		}
		if place.Name != "" {
			update.Name = &place.Name
		}
		if address != "" {
			update.Address = &address
		}
		updated, _ := s.storage.UpdateBusiness(existing.ID, update)
		return updated, false
	}

	district := extractDistrict(place.AddressComponents)
	if district == "" {
		district = "İstanbul"
	}

	created := s.storage.CreateBusiness(business.CreateBusinessRequest{
		PlaceID:     place.PlaceID,
		Name:        place.Name,
		Address:     address,
		District:    district,
		Category:    category,
		Rating:      place.Rating,
		ReviewCount: place.UserRatingsTotal,
		Latitude:    place.Geometry.Location.Lat,
		Longitude:   place.Geometry.Location.Lng,
		IsOpen:      isOpen,
		PhotoURL:    photoURL,
		PriceLevel:  place.PriceLevel,
	})
	return created, true
}

// extractDistrict picks the district out of the provider's address
// components, preferring the more specific administrative levels.
func extractDistrict(components []clients.AddressComponent) string {
	for _, wanted := range []string{"administrative_area_level_2", "administrative_area_level_3", "sublocality_level_1", "sublocality"} {
		for _, component := range components {
			for _, t := range component.Types {
				if t == wanted {
					return component.LongName
				}
			}
		}
	}
	return ""
}

// categoryFor maps the provider's raw types onto the directory's category
// catalog, falling back to the first type that carries meaning.
func categoryFor(placeTypes []string) string {
	for _, cat := range business.Categories {
		for _, ct := range cat.PlaceTypes {
			for _, t := range placeTypes {
				if t == ct {
					return cat.Name
				}
			}
		}
	}

	skip := map[string]bool{"point_of_interest": true, "establishment": true}
	for _, t := range placeTypes {
		if !skip[t] {
			return t
		}
	}
	if len(placeTypes) > 0 {
		return placeTypes[0]
	}
	return "business"
}
