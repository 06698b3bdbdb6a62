package dto

// PopularServiceEntry is one row in the popularity ranking
type PopularServiceEntry struct {
	Rank         int     `json:"rank"`
	ServiceName  string  `json:"service_name"`
	DisplayName  string  `json:"display_name"`
	Count        int     `json:"count"`
	SharePercent float64 `json:"share_percent"`
}

// PopularServicesResponse is the global popularity ranking
type PopularServicesResponse struct {
	TotalBookings int                   `json:"total_bookings"`
	Services      []PopularServiceEntry `json:"services"`
}

// RecommendationEntry is one personalized suggestion
type RecommendationEntry struct {
	Rank        int    `json:"rank"`
	ServiceName string `json:"service_name"`
	DisplayName string `json:"display_name"`
	Popular     bool   `json:"popular"`
}

// CustomerRecommendationsResponse is the personalized recommendation result
// for one customer
type CustomerRecommendationsResponse struct {
	PhoneID         int                   `json:"phone_id"`
	CustomerName    string                `json:"customer_name"`
	TriedEverything bool                  `json:"tried_everything"`
	Recommendations []RecommendationEntry `json:"recommendations"`
	Favorites       []string              `json:"favorites,omitempty"`
}
