package service

import (
	"context"
	"fmt"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/repository/ports"
)

const (
	fallbackCardRating  = 4.5
	fallbackCardReviews = 0
)

// DestinationTreeService reshapes the flat tour collection into the nested
// continent tree the legacy storefront pages consume. The tree is recomputed
// on every request; nothing is cached.
type DestinationTreeService struct {
	tours ports.TourRepository
}

func NewDestinationTreeService(tours ports.TourRepository) *DestinationTreeService {
	return &DestinationTreeService{tours: tours}
}

// Build fetches every tour with its references resolved and folds the result
// into continent buckets. Zero tours yields an empty tree, not an error.
func (s *DestinationTreeService) Build(ctx context.Context) ([]domain.ContinentBucket, error) {
	tours, err := s.tours.ListWithRefs(ctx)
	if err != nil {
		return nil, err
	}
	return BuildContinentTree(tours), nil
}

// BuildContinentTree is the translation fold. Tours whose country or city
// reference failed to resolve are skipped entirely; a broken reference is
// surfaced as absence, never as an error. Buckets are keyed by the country's
// continent string, matched exactly (case and whitespace significant), and
// appear in first-seen order; cards keep the input order within a bucket.
func BuildContinentTree(tours []domain.TourWithRefs) []domain.ContinentBucket {
	buckets := make([]domain.ContinentBucket, 0)
	index := make(map[string]int)

	for _, item := range tours {
		if item.Country == nil || item.City == nil {
			continue
		}

		continent := item.Country.Continent
		pos, ok := index[continent]
		if !ok {
			pos = len(buckets)
			index[continent] = pos
			buckets = append(buckets, domain.ContinentBucket{
				Name:      continent,
				Countries: make([]domain.TourCard, 0, 4),
			})
		}

		buckets[pos].Countries = append(buckets[pos].Countries, buildTourCard(item))
	}

	return buckets
}

func buildTourCard(item domain.TourWithRefs) domain.TourCard {
	tour := item.Tour
	country := item.Country
	city := item.City

	card := domain.TourCard{
		ID:           tour.ID,
		Name:         country.Name,
		City:         tour.Name,
		RealCityName: city.Name,
		Price:        formatCardPrice(tour.Price),
		Desc:         tour.Overview,
		Rating:       tour.Stats.Rating,
		Reviews:      tour.Stats.ReviewsCount,
		Duration:     tour.Duration,
		GroupSize:    tour.GroupSize,
		Currency:     country.Currency,
		IsTrending:   tour.Stats.IsTrending,
	}
	if len(tour.Images) > 0 {
		card.Image = tour.Images[0]
	}
	if card.Rating == 0 {
		card.Rating = fallbackCardRating
	}
	if card.Reviews < 0 {
		card.Reviews = fallbackCardReviews
	}
	if country.VisaPolicy != nil {
		card.Visa = *country.VisaPolicy
	}
	if country.MarketYieldTier != nil {
		card.YieldTier = *country.MarketYieldTier
	}
	return card
}

// formatCardPrice renders the price the way the storefront shows it, with
// whole dollars kept free of trailing zeros.
func formatCardPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("$%d", int64(price))
	}
	return fmt.Sprintf("$%.2f", price)
}
