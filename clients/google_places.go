package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

// GooglePlacesClient talks to the Google Places web API. It is the only
// component that crosses the provider boundary; everything else works with
// records already in the store.
type GooglePlacesClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type PlaceGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type PlaceOpeningHours struct {
	OpenNow *bool `json:"open_now"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type PlaceResult struct {
	PlaceID           string             `json:"place_id"`
	Name              string             `json:"name"`
	FormattedAddress  string             `json:"formatted_address"`
	Vicinity          string             `json:"vicinity"`
	Geometry          PlaceGeometry      `json:"geometry"`
	Rating            *float64           `json:"rating"`
	UserRatingsTotal  *int               `json:"user_ratings_total"`
	PriceLevel        *int               `json:"price_level"`
	Types             []string           `json:"types"`
	Photos            []PlacePhoto       `json:"photos"`
	OpeningHours      *PlaceOpeningHours `json:"opening_hours"`
	AddressComponents []AddressComponent `json:"address_components"`
}

type PlaceDetails struct {
	PlaceResult
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	Website              string `json:"website"`
}

type placesSearchResponse struct {
	Results []PlaceResult `json:"results"`
	Status  string        `json:"status"`
}

type placeDetailsResponse struct {
	Result PlaceDetails `json:"result"`
	Status string       `json:"status"`
}

// SearchNearby finds places around the given coordinates. With no API key
// configured it degrades to an empty result instead of failing.
func (c *GooglePlacesClient) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int, placeType string) ([]PlaceResult, error) {
	if c.apiKey == "" {
		log.Println("Google Maps API key not set, skipping nearby search")
		return []PlaceResult{}, nil
	}

	params := url.Values{}
	params.Add("location", fmt.Sprintf("%.6f,%.6f", lat, lng))
	params.Add("radius", fmt.Sprintf("%d", radiusMeters))
	if placeType != "" {
		params.Add("type", placeType)
	}
	params.Add("key", c.apiKey)

	var result placesSearchResponse
	if err := c.getJSON(ctx, placesBaseURL+"/nearbysearch/json?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places nearby search returned status %s", result.Status)
	}

	return result.Results, nil
}

// SearchText runs a free-text search biased around the given coordinates.
func (c *GooglePlacesClient) SearchText(ctx context.Context, query string, lat, lng float64, radiusMeters int) ([]PlaceResult, error) {
	if c.apiKey == "" {
		log.Println("Google Maps API key not set, skipping text search")
		return []PlaceResult{}, nil
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("location", fmt.Sprintf("%.6f,%.6f", lat, lng))
	params.Add("radius", fmt.Sprintf("%d", radiusMeters))
	params.Add("key", c.apiKey)

	var result placesSearchResponse
	if err := c.getJSON(ctx, placesBaseURL+"/textsearch/json?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places text search returned status %s", result.Status)
	}

	return result.Results, nil
}

// GetPlaceDetails fetches the full record for one place id.
func (c *GooglePlacesClient) GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("google maps API key not configured")
	}

	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "place_id,name,formatted_address,geometry,rating,user_ratings_total,formatted_phone_number,website,opening_hours,photos,price_level,types,address_components")
	params.Add("key", c.apiKey)

	var result placeDetailsResponse
	if err := c.getJSON(ctx, placesBaseURL+"/details/json?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" {
		return nil, fmt.Errorf("place details returned status %s", result.Status)
	}

	return &result.Result, nil
}

// PhotoURL builds the retrieval URL for a photo reference. Empty when no API
// key is configured, matching the provider contract.
func (c *GooglePlacesClient) PhotoURL(photoReference string, maxWidth int) string {
	if c.apiKey == "" || photoReference == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = 400
	}
	return fmt.Sprintf("%s/photo?maxwidth=%d&photoreference=%s&key=%s", placesBaseURL, maxWidth, photoReference, c.apiKey)
}

func (c *GooglePlacesClient) getJSON(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Google Places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Google Places API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse Google Places response: %w", err)
	}
	return nil
}
