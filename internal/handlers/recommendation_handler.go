package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"spa-records/internal/dto"
	"spa-records/internal/errors"
	"spa-records/internal/format"
	"spa-records/internal/services"
)

// defaultTopN matches the popularity ranking size used for display.
const defaultTopN = 3

// RecommendationHandler handles popularity and personalized-recommendation
// HTTP requests
type RecommendationHandler struct {
	recommendations services.RecommendationServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	recommendations services.RecommendationServiceInterface,
	metrics services.MetricsRecorderInterface,
) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations, metrics: metrics}
}

// GetPopularServices returns the global popularity ranking. ?top_n defaults
// to 3; a non-positive or non-integer value is a validation failure.
func (h *RecommendationHandler) GetPopularServices(c echo.Context) error {
	topN := defaultTopN
	if raw := c.QueryParam("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return SendError(c, errors.ValidationNotAnInteger, errors.WithDetails("top_n must be an integer"))
		}
		topN = parsed
	}

	ranking, err := h.recommendations.PopularServices(topN)
	if err != nil {
		h.metrics.IncrementCounter("popular_services", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	totalBookings := 0
	for _, entry := range ranking {
		totalBookings += entry.Count
	}

	response := dto.PopularServicesResponse{
		TotalBookings: totalBookings,
		Services:      make([]dto.PopularServiceEntry, 0, len(ranking)),
	}
	for i, entry := range ranking {
		share := 0.0
		if totalBookings > 0 {
			share = float64(entry.Count) / float64(totalBookings) * 100
		}
		response.Services = append(response.Services, dto.PopularServiceEntry{
			Rank:         i + 1,
			ServiceName:  entry.ServiceName,
			DisplayName:  format.DisplayName(entry.ServiceName),
			Count:        entry.Count,
			SharePercent: share,
		})
	}

	h.metrics.IncrementCounter("popular_services", map[string]string{"status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// GetCustomerRecommendations returns personalized suggestions for one
// customer identified by phone ID
func (h *RecommendationHandler) GetCustomerRecommendations(c echo.Context) error {
	start := time.Now()

	phoneID, err := strconv.Atoi(c.Param("phone_id"))
	if err != nil {
		return SendError(c, errors.ValidationNotAnInteger)
	}

	result, err := h.recommendations.RecommendForCustomer(phoneID)

	h.metrics.RecordProcessingTime("customer_recommendations", time.Since(start))
	if err != nil {
		h.metrics.IncrementCounter("customer_recommendations", map[string]string{"status": "failed"})
		return SendDomainError(c, err)
	}

	response := dto.CustomerRecommendationsResponse{
		PhoneID:         result.PhoneID,
		CustomerName:    result.CustomerName,
		TriedEverything: result.TriedEverything,
		Recommendations: make([]dto.RecommendationEntry, 0, len(result.Items)),
	}
	for i, item := range result.Items {
		response.Recommendations = append(response.Recommendations, dto.RecommendationEntry{
			Rank:        i + 1,
			ServiceName: item.ServiceName,
			DisplayName: format.DisplayName(item.ServiceName),
			Popular:     item.Popular,
		})
	}
	for _, favorite := range result.Favorites {
		response.Favorites = append(response.Favorites, format.DisplayName(favorite))
	}

	h.metrics.IncrementCounter("customer_recommendations", map[string]string{"status": "success"})
	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}
