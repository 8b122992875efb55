package domain

import "time"

// MonthlyEarnings is the fixed monthly-earnings figure the dashboard
// reports until real trip settlement data exists. Net profit is
// computed against the same constant client-side.
const MonthlyEarnings = 4832.20

// Earnings summarises income over the standard reporting windows.
type Earnings struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Total   float64 `json:"total"`
}

// TripStatus is the terminal state of a trip.
type TripStatus string

const (
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// Trip is a single ride entry shown in the trip history view.
type Trip struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	Pickup   string     `json:"pickup"`
	Dropoff  string     `json:"dropoff"`
	Distance float64    `json:"distance"`
	Duration int        `json:"duration"`
	Earnings float64    `json:"earnings"`
	Rating   float64    `json:"rating"`
	Status   TripStatus `json:"status"`
}

// Dashboard is the derived dataset rendered on the landing view.
type Dashboard struct {
	Earnings         Earnings `json:"earnings"`
	Trips            []Trip   `json:"trips"`
	AverageRating    float64  `json:"average_rating"`
	ActiveHoursToday float64  `json:"active_hours_today"`
}
