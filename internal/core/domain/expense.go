package domain

import "time"

// ExpenseCategory is the closed set of expense categories drivers can record.
type ExpenseCategory string

const (
	CategoryFuel        ExpenseCategory = "fuel"
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryInsurance   ExpenseCategory = "insurance"
	CategoryAirtime     ExpenseCategory = "airtime"
	CategoryOther       ExpenseCategory = "other"
)

// Categories lists every valid expense category.
var Categories = []ExpenseCategory{
	CategoryFuel,
	CategoryMaintenance,
	CategoryInsurance,
	CategoryAirtime,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single cost record scoped to exactly one driver. The id
// is assigned by the store on insert; DriverID always comes from the
// session identity, never from client input.
type Expense struct {
	ID          string          `json:"id"`
	DriverID    string          `json:"driver_id"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	Receipt     string          `json:"receipt,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
