package pricing

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Quote is the monetary breakdown fixed at booking creation.
type Quote struct {
	Days            int     `json:"days"`
	DailyRate       float64 `json:"daily_rate"`
	BasePrice       float64 `json:"base_price"`
	AdvanceAmount   float64 `json:"advance_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	DeliveryCharges float64 `json:"delivery_charges"`
	TotalPrice      float64 `json:"total_price"`
}

type LateFee struct {
	IsOverdue    bool      `json:"is_overdue"`
	EffectiveEnd time.Time `json:"effective_end_date"`
	OverdueHours int       `json:"overdue_hours"`
	Rate         float64   `json:"late_fee_rate"`
	HourlyRate   float64   `json:"hourly_rate"`
	LateFees     float64   `json:"late_fees"`
}

type Calculator struct {
	advancePercentage  float64
	defaultLateFeeRate float64
}

func NewCalculator(advancePercentage, defaultLateFeeRate float64) *Calculator {
	return &Calculator{
		advancePercentage:  advancePercentage,
		defaultLateFeeRate: defaultLateFeeRate,
	}
}

func (c *Calculator) AdvancePercentage() float64 { return c.advancePercentage }

// RentalDays counts started days; a partial day is billed as a full one.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// DailyRate prefers a positive discounted price over the standard price.
func DailyRate(price float64, discounted *float64) float64 {
	if discounted != nil && *discounted > 0 {
		return *discounted
	}
	return price
}

func (c *Calculator) Quote(price float64, discounted *float64, start, end time.Time, deliveryCharges float64) Quote {
	days := RentalDays(start, end)
	rate := DailyRate(price, discounted)
	base := Round2(rate * float64(days))
	advance := Round2(base * c.advancePercentage)

	return Quote{
		Days:            days,
		DailyRate:       rate,
		BasePrice:       base,
		AdvanceAmount:   advance,
		RemainingAmount: Round2(base - advance),
		DeliveryCharges: deliveryCharges,
		TotalPrice:      Round2(base + deliveryCharges),
	}
}

// EffectiveEnd is the extension deadline when one exists, else the booked end.
func EffectiveEnd(endDate time.Time, extensionTill *time.Time) time.Time {
	if extensionTill != nil && !extensionTill.IsZero() {
		return *extensionTill
	}
	return endDate
}

// LateFee is a pure function of its inputs, so repeated calls with the same
// now agree.
func (c *Calculator) LateFee(basePrice float64, rate *float64, effectiveEnd, now time.Time) LateFee {
	r := c.defaultLateFeeRate
	if rate != nil {
		r = *rate
	}
	hourly := (basePrice / 24) * r

	res := LateFee{
		EffectiveEnd: effectiveEnd,
		Rate:         r,
		HourlyRate:   Round2(hourly),
	}
	if !now.After(effectiveEnd) {
		return res
	}

	res.IsOverdue = true
	res.OverdueHours = int(math.Ceil(now.Sub(effectiveEnd).Hours()))
	res.LateFees = Round2(hourly * float64(res.OverdueHours))
	return res
}

func Extend(effectiveEnd time.Time, durationHours int) time.Time {
	return effectiveEnd.Add(time.Duration(durationHours) * time.Hour)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
