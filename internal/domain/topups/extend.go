package topups

import (
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/apperror"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/pricing"
)

var (
	ErrNotFound       = apperror.NotFound("topup not found")
	ErrInactive       = apperror.BadRequest("topup is not active")
	ErrInvalidProduct = apperror.BadRequest("topup has no duration")
)

// Extension is the effect of applying one topup to a booking.
type Extension struct {
	OriginalEnd time.Time
	NewEnd      time.Time
	Hours       int
	Price       float64
}

// Plan extends from the booking's current effective end so chained topups
// compound.
func Plan(effectiveEnd time.Time, t Topup) (Extension, error) {
	if !t.IsActive {
		return Extension{}, ErrInactive
	}
	if t.DurationHours <= 0 {
		return Extension{}, ErrInvalidProduct
	}
	return Extension{
		OriginalEnd: effectiveEnd,
		NewEnd:      pricing.Extend(effectiveEnd, t.DurationHours),
		Hours:       t.DurationHours,
		Price:       t.Price,
	}, nil
}
