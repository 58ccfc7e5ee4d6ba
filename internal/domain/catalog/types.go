package catalog

import (
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/apperror"
)

var (
	ErrCarNotFound     = apperror.NotFound("car not found")
	ErrParkingNotFound = apperror.NotFound("parking not found")
	QueryTimeout       = 5 * time.Second
)

type Car struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	VendorID        int64    `json:"vendor_id"`
	ParkingID       int64    `json:"parking_id"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	Category        string   `json:"category"`
	LateFeeRate     *float64 `json:"late_fee_rate,omitempty"`
	Images          []string `json:"images"`
	IsAvailable     bool     `json:"is_available"`
}

type Parking struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
