package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// DashboardService serves the mock-derived trip and earnings dataset
// shown on the landing view. The dataset is deterministic so the view
// renders the same figures across refreshes; real trip settlement is
// not part of this system yet.
type DashboardService struct {
	logger zerolog.Logger
}

func NewDashboardService(logger zerolog.Logger) *DashboardService {
	return &DashboardService{logger: logger}
}

// GetDashboard returns the dataset for the driver. Trip dates are
// anchored to today so the history always looks current.
func (s *DashboardService) GetDashboard(ctx context.Context, driverID string) (*domain.Dashboard, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	trips := []domain.Trip{
		{ID: "001", Date: today.Add(9*time.Hour + 15*time.Minute), Pickup: "Downtown Plaza", Dropoff: "Airport Terminal 2", Distance: 18.5, Duration: 35, Earnings: 42.80, Rating: 5, Status: domain.TripCompleted},
		{ID: "002", Date: today.Add(10*time.Hour + 45*time.Minute), Pickup: "Business District", Dropoff: "Shopping Mall", Distance: 12.3, Duration: 22, Earnings: 28.50, Rating: 4, Status: domain.TripCompleted},
		{ID: "003", Date: today.Add(14*time.Hour + 20*time.Minute), Pickup: "University Campus", Dropoff: "City Center", Distance: 8.7, Duration: 18, Earnings: 19.20, Rating: 5, Status: domain.TripCompleted},
		{ID: "004", Date: today.Add(16*time.Hour + 10*time.Minute), Pickup: "Residential Area", Dropoff: "Train Station", Distance: 15.2, Duration: 28, Earnings: 35.40, Rating: 4, Status: domain.TripCompleted},
		{ID: "005", Date: today.Add(18*time.Hour + 30*time.Minute), Pickup: "Restaurant District", Dropoff: "Suburbs", Distance: 22.1, Duration: 40, Earnings: 48.60, Rating: 5, Status: domain.TripCompleted},
	}

	var ratingSum float64
	var daily float64
	for _, t := range trips {
		ratingSum += t.Rating
		daily += t.Earnings
	}

	return &domain.Dashboard{
		Earnings: domain.Earnings{
			Daily:   daily,
			Weekly:  1248.30,
			Monthly: domain.MonthlyEarnings,
			Total:   28456.80,
		},
		Trips:            trips,
		AverageRating:    ratingSum / float64(len(trips)),
		ActiveHoursToday: 7.5,
	}, nil
}
