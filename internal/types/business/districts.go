package business

import "strings"

// District is an administrative subdivision of Istanbul, the primary filter
// axis of the directory. Center coordinates are used by clients to focus the
// map and by the places import to anchor nearby searches.
type District struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Category groups the provider's raw place types under one directory label.
type Category struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PlaceTypes []string `json:"place_types"`
}

// Istanbul city center, the default search origin.
const (
	CityCenterLatitude  = 41.0082
	CityCenterLongitude = 28.9784
)

var Districts = []District{
	{ID: "adalar", Name: "Adalar", Latitude: 40.8786, Longitude: 29.1133},
	{ID: "arnavutkoy", Name: "Arnavutköy", Latitude: 41.1886, Longitude: 28.7325},
	{ID: "atasehir", Name: "Ataşehir", Latitude: 40.9827, Longitude: 29.1264},
	{ID: "avcilar", Name: "Avcılar", Latitude: 41.0231, Longitude: 28.7231},
	{ID: "bagcilar", Name: "Bağcılar", Latitude: 41.0394, Longitude: 28.8564},
	{ID: "bahcelievler", Name: "Bahçelievler", Latitude: 41.0031, Longitude: 28.8567},
	{ID: "bakirkoy", Name: "Bakırköy", Latitude: 40.9781, Longitude: 28.8739},
	{ID: "basaksehir", Name: "Başakşehir", Latitude: 41.1086, Longitude: 28.8089},
	{ID: "bayrampasa", Name: "Bayrampaşa", Latitude: 41.0431, Longitude: 28.9017},
	{ID: "besiktas", Name: "Beşiktaş", Latitude: 41.0428, Longitude: 29.0094},
	{ID: "beykoz", Name: "Beykoz", Latitude: 41.1186, Longitude: 29.0828},
	{ID: "beylikduzu", Name: "Beylikdüzü", Latitude: 41.0022, Longitude: 28.6444},
	{ID: "beyoglu", Name: "Beyoğlu", Latitude: 41.0369, Longitude: 28.9756},
	{ID: "buyukcekmece", Name: "Büyükçekmece", Latitude: 41.0186, Longitude: 28.5839},
	{ID: "catalca", Name: "Çatalca", Latitude: 41.1406, Longitude: 28.4639},
	{ID: "cekmekoy", Name: "Çekmeköy", Latitude: 41.0322, Longitude: 29.2056},
	{ID: "esenler", Name: "Esenler", Latitude: 41.0414, Longitude: 28.8811},
	{ID: "esenyurt", Name: "Esenyurt", Latitude: 41.0297, Longitude: 28.6744},
	{ID: "eyupsultan", Name: "Eyüpsultan", Latitude: 41.0547, Longitude: 28.9344},
	{ID: "fatih", Name: "Fatih", Latitude: 41.0186, Longitude: 28.9497},
	{ID: "gaziosmanpasa", Name: "Gaziosmanpaşa", Latitude: 41.0661, Longitude: 28.9119},
	{ID: "gungoren", Name: "Güngören", Latitude: 41.0172, Longitude: 28.8758},
	{ID: "kadikoy", Name: "Kadıköy", Latitude: 40.9833, Longitude: 29.0333},
	{ID: "kagithane", Name: "Kağıthane", Latitude: 41.0819, Longitude: 28.9769},
	{ID: "kartal", Name: "Kartal", Latitude: 40.9058, Longitude: 29.1897},
	{ID: "kucukcekmece", Name: "Küçükçekmece", Latitude: 41.0131, Longitude: 28.7764},
	{ID: "maltepe", Name: "Maltepe", Latitude: 40.9356, Longitude: 29.1497},
	{ID: "pendik", Name: "Pendik", Latitude: 40.8781, Longitude: 29.2331},
	{ID: "sancaktepe", Name: "Sancaktepe", Latitude: 41.0103, Longitude: 29.2328},
	{ID: "sariyer", Name: "Sarıyer", Latitude: 41.1069, Longitude: 29.0531},
	{ID: "silivri", Name: "Silivri", Latitude: 41.0719, Longitude: 28.2486},
	{ID: "sisli", Name: "Şişli", Latitude: 41.0608, Longitude: 28.9828},
	{ID: "sultanbeyli", Name: "Sultanbeyli", Latitude: 40.9678, Longitude: 29.2714},
	{ID: "sultangazi", Name: "Sultangazi", Latitude: 41.1036, Longitude: 28.8697},
	{ID: "tuzla", Name: "Tuzla", Latitude: 40.8347, Longitude: 29.3019},
	{ID: "umraniye", Name: "Ümraniye", Latitude: 41.0194, Longitude: 29.1244},
	{ID: "uskudar", Name: "Üsküdar", Latitude: 41.0256, Longitude: 29.0244},
	{ID: "zeytinburnu", Name: "Zeytinburnu", Latitude: 41.0006, Longitude: 28.9131},
}

var Categories = []Category{
	{ID: "restaurant", Name: "Restoran & Kafe", PlaceTypes: []string{"restaurant", "food", "meal_takeaway", "cafe"}},
	{ID: "shopping", Name: "Alışveriş", PlaceTypes: []string{"shopping_mall", "store", "clothing_store", "electronics_store"}},
	{ID: "health", Name: "Sağlık & Güzellik", PlaceTypes: []string{"hospital", "pharmacy", "beauty_salon", "hair_care", "spa"}},
	{ID: "service", Name: "Hizmetler", PlaceTypes: []string{"bank", "atm", "car_repair", "gas_station", "laundry"}},
	{ID: "entertainment", Name: "Eğlence & Kültür", PlaceTypes: []string{"movie_theater", "museum", "park", "tourist_attraction", "night_club"}},
	{ID: "education", Name: "Eğitim", PlaceTypes: []string{"school", "university", "library"}},
	{ID: "accommodation", Name: "Konaklama", PlaceTypes: []string{"lodging", "hotel"}},
	{ID: "transport", Name: "Ulaşım", PlaceTypes: []string{"bus_station", "subway_station", "taxi_stand", "airport"}},
}

// GetDistrictByName looks a district up by its display name, case-folded.
func GetDistrictByName(name string) (District, bool) {
	for _, d := range Districts {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return District{}, false
}
