package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"spa-records/internal/models"
	"spa-records/internal/repositories"
	"spa-records/internal/validation"
)

// ErrInvalidTopN is returned when a popularity query asks for a non-positive
// number of entries.
var ErrInvalidTopN = errors.New("top_n must be a positive integer")

const (
	// defaultPopularCount is the size of the global ranking consulted when
	// building personalized recommendations.
	defaultPopularCount = 3
	// maxRecommendations caps the combined personalized list.
	maxRecommendations = 5
	// maxUnrankedFill is how many untried-but-unranked services pad the list.
	maxUnrankedFill = 3
)

type recommendationService struct {
	appointments repositories.AppointmentRepositoryInterface
}

// NewRecommendationService creates the recommendation engine. It reads the
// appointment store only; the catalog is never consulted.
func NewRecommendationService(appointments repositories.AppointmentRepositoryInterface) RecommendationServiceInterface {
	return &recommendationService{appointments: appointments}
}

// PopularServices counts service bookings across all appointments, past and
// future alike, and returns the topN entries ordered by descending count.
// Ties keep their first-encounter order; encounter order is the store's fixed
// ascending phone-ID iteration, so the ranking is deterministic.
func (s *recommendationService) PopularServices(topN int) ([]models.PopularService, error) {
	if err := validation.ValidatePositiveInt(topN, "top_n"); err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, topN)
	}

	counts := make(map[string]int)
	order := make([]string, 0)

	for _, appt := range s.appointments.List() {
		if appt.ServiceName == "" {
			continue
		}
		if _, seen := counts[appt.ServiceName]; !seen {
			order = append(order, appt.ServiceName)
		}
		counts[appt.ServiceName]++
	}

	ranking := make([]models.PopularService, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, models.PopularService{ServiceName: name, Count: counts[name]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if len(ranking) > topN {
		ranking = ranking[:topN]
	}

	return ranking, nil
}

// RecommendForCustomer builds the personalized suggestion list for the
// customer behind a phone ID. Customer identity is the appointment's
// first+last name pair, so two phone IDs under the same name share a booking
// history.
func (s *recommendationService) RecommendForCustomer(phoneID int) (*models.CustomerRecommendations, error) {
	if err := validation.ValidatePhoneID(phoneID); err != nil {
		return nil, err
	}

	target, exists := s.appointments.Get(phoneID)
	if !exists {
		return nil, fmt.Errorf("%w: %d", repositories.ErrAppointmentNotFound, phoneID)
	}

	result := &models.CustomerRecommendations{
		PhoneID:      phoneID,
		CustomerName: target.FullName(),
	}

	mine := make(map[string]bool)
	all := make(map[string]bool)
	allOrder := make([]string, 0)

	for _, appt := range s.appointments.List() {
		if appt.ServiceName == "" {
			continue
		}
		if !all[appt.ServiceName] {
			all[appt.ServiceName] = true
			allOrder = append(allOrder, appt.ServiceName)
		}
		if appt.CustomerKey() == target.CustomerKey() {
			mine[appt.ServiceName] = true
		}
	}

	untried := make(map[string]bool)
	untriedOrder := make([]string, 0)
	for _, name := range allOrder {
		if !mine[name] {
			untried[name] = true
			untriedOrder = append(untriedOrder, name)
		}
	}

	if len(untried) == 0 {
		result.TriedEverything = true
		slog.Info("customer has tried every service", "phone_id", phoneID)
		return result, nil
	}

	popular, err := s.PopularServices(defaultPopularCount)
	if err != nil {
		return nil, err
	}

	fromPopular := make(map[string]bool)
	for _, entry := range popular {
		if untried[entry.ServiceName] {
			fromPopular[entry.ServiceName] = true
			result.Items = append(result.Items, models.RecommendationItem{
				ServiceName: entry.ServiceName,
				Popular:     true,
			})
		}
	}

	filled := 0
	for _, name := range untriedOrder {
		if filled >= maxUnrankedFill {
			break
		}
		if fromPopular[name] {
			continue
		}
		result.Items = append(result.Items, models.RecommendationItem{ServiceName: name})
		filled++
	}

	if len(result.Items) > maxRecommendations {
		result.Items = result.Items[:maxRecommendations]
	}

	// Should be unreachable while untried is non-empty; kept as a fallback so
	// the customer still sees something if the fill logic ever produces
	// nothing.
	if len(result.Items) == 0 {
		for _, entry := range popular {
			if mine[entry.ServiceName] {
				result.Favorites = append(result.Favorites, entry.ServiceName)
			}
		}
	}

	slog.Info("recommendations generated",
		"phone_id", phoneID,
		"items", len(result.Items),
		"untried", len(untried))

	return result, nil
}
