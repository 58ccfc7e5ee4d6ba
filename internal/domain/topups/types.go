package topups

import "time"

// Topup is a purchasable extension product from the catalog.
type Topup struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	DurationHours int       `json:"duration"`
	Price         float64   `json:"price"`
	IsActive      bool      `json:"is_active"`
	CreatedBy     int64     `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingTopup is one immutable row of a booking's extension ledger.
type BookingTopup struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"booking_id"`
	TopupID          int64     `json:"topup_id"`
	OriginalEndDate  time.Time `json:"original_end_date"`
	NewEndDate       time.Time `json:"new_end_date"`
	Amount           float64   `json:"amount"`
	PaymentReference string    `json:"payment_reference_id"`
	AppliedAt        time.Time `json:"applied_at"`
}
