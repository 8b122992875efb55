package domain

import "time"

// Identity is the minimal record returned by the external auth provider
// after a successful sign-up or sign-in. It carries only what the
// session credential needs.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Vehicle describes the driver's registered vehicle.
type Vehicle struct {
	Make         string `json:"vehicle_make,omitempty"`
	Model        string `json:"vehicle_model,omitempty"`
	Year         int    `json:"vehicle_year,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
}

// Profile is the mirrored driver record keyed by the provider-issued id.
// It is written once on signup and never mutated by this service.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone,omitempty"`
	Vehicle   Vehicle   `json:"vehicle"`
	CreatedAt time.Time `json:"created_at"`
}
