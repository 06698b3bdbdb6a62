package models

// PopularService is one entry of the global popularity ranking: a service
// slug with its booking count across all appointments, past and future alike.
type PopularService struct {
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

// RecommendationItem is one personalized suggestion. Popular marks entries
// that also appear in the global popularity ranking; those are listed first.
type RecommendationItem struct {
	ServiceName string `json:"service_name"`
	Popular     bool   `json:"popular"`
}

// CustomerRecommendations is the result of a personalized recommendation
// pass for one customer.
type CustomerRecommendations struct {
	PhoneID         int                  `json:"phone_id"`
	CustomerName    string               `json:"customer_name"`
	TriedEverything bool                 `json:"tried_everything"`
	Items           []RecommendationItem `json:"items"`
	// Favorites holds the customer's own most-booked services, filled only by
	// the fallback branch when no recommendation survived the ranking.
	Favorites []string `json:"favorites,omitempty"`
}
