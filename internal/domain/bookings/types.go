package bookings

import (
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/pricing"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type ConfirmationStatus string

const (
	ConfirmationPending         ConfirmationStatus = "pending"
	ConfirmationPendingApproval ConfirmationStatus = "pending_approval"
	ConfirmationApproved        ConfirmationStatus = "approved"
	ConfirmationRejected        ConfirmationStatus = "rejected"
)

// Booking is one rental attempt of a car by a renter.
type Booking struct {
	ID               int64 `json:"id"`
	UserID           int64 `json:"user_id"`
	CarID            int64 `json:"car_id"`
	PickupParkingID  int64 `json:"pickup_parking_id"`
	DropoffParkingID int64 `json:"dropoff_parking_id"`

	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	PickupDate         time.Time  `json:"pickup_date"`
	OriginalPickupDate *time.Time `json:"original_pickup_date"`
	RescheduleCount    int        `json:"reschedule_count"`
	MaxRescheduleCount int        `json:"max_reschedule_count"`

	BasePrice       float64    `json:"base_price"`
	AdvanceAmount   float64    `json:"advance_amount"`
	RemainingAmount float64    `json:"remaining_amount"`
	TotalPrice      float64    `json:"total_price"`
	DeliveryCharges float64    `json:"delivery_charges"`
	ExtensionPrice  float64    `json:"extension_price"`
	ExtensionTime   int        `json:"extension_time"`
	ExtensionTill   *time.Time `json:"extension_till"`

	LateFees                 float64    `json:"late_fees"`
	LateFeesPaid             bool       `json:"late_fees_paid"`
	LateFeesPaymentReference *string    `json:"late_fees_payment_reference"`
	LateFeesPaidAt           *time.Time `json:"late_fees_paid_at"`

	Status                  Status             `json:"status"`
	AdvancePaymentStatus    PaymentStatus      `json:"advance_payment_status"`
	AdvancePaymentReference *string            `json:"advance_payment_reference"`
	ConfirmationStatus      ConfirmationStatus `json:"confirmation_status"`
	FinalPaymentStatus      PaymentStatus      `json:"final_payment_status"`
	FinalPaymentReference   *string            `json:"final_payment_reference"`

	OTPCode       *string    `json:"otp_code,omitempty"`
	OTPExpiresAt  *time.Time `json:"otp_expires_at"`
	OTPVerified   bool       `json:"otp_verified"`
	OTPVerifiedBy *int64     `json:"otp_verified_by"`
	OTPVerifiedAt *time.Time `json:"otp_verified_at"`

	CarConditionImages []string `json:"car_condition_images"`
	Tools              []Tool   `json:"tools"`
	ToolImages         []string `json:"tool_images"`
	UserConfirmed      bool     `json:"user_confirmed"`

	PICApproved   bool       `json:"pic_approved"`
	PICApprovedBy *int64     `json:"pic_approved_by"`
	PICApprovedAt *time.Time `json:"pic_approved_at"`
	PICComments   *string    `json:"pic_comments"`

	ActualPickupDate  *time.Time `json:"actual_pickup_date"`
	ActualDropoffDate *time.Time `json:"actual_dropoff_date"`
	ReturnCondition   *string    `json:"return_condition"`
	ReturnImages      []string   `json:"return_images"`
	ReturnComments    *string    `json:"return_comments"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveEnd is the deadline the car must be back by.
func (b *Booking) EffectiveEnd() time.Time {
	return pricing.EffectiveEnd(b.EndDate, b.ExtensionTill)
}

// Redacted hides the pickup code from anyone but the renter.
func (b Booking) Redacted() Booking {
	b.OTPCode = nil
	return b
}

type Filter struct {
	Status *Status
	Limit  int
	Offset int
}

type CreateInput struct {
	CarID            int64
	StartDate        time.Time
	EndDate          time.Time
	PickupDate       *time.Time
	PickupParkingID  *int64
	DropoffParkingID *int64
	DeliveryCharges  float64
}

type ConfirmationInput struct {
	CarConditionImages []string
	Tools              []Tool
	ToolImages         []string
}

type RescheduleInput struct {
	NewPickupDate time.Time
	NewStartDate  *time.Time
	NewEndDate    *time.Time
}

type ReturnInput struct {
	ReturnCondition *string
	ReturnImages    []string
	Comments        *string
}

// TopupResult is what applying a topup hands back to the caller.
type TopupResult struct {
	BookingTopup   *topups.BookingTopup `json:"booking_topup"`
	UpdatedBooking *Booking             `json:"updated_booking"`
	Topup          *topups.Topup        `json:"topup"`
	NewEndDate     time.Time            `json:"new_end_date"`
	ExtensionTime  int                  `json:"extension_time"`
}

type LateFeePayment struct {
	Booking            *Booking `json:"booking"`
	LateFees           float64  `json:"late_fees"`
	PaymentReferenceID string   `json:"payment_reference_id"`
}

// LateFeeReport is the read-only late fee projection.
type LateFeeReport struct {
	BookingID int64 `json:"booking_id"`
	pricing.LateFee
	LateFeesPaid bool `json:"late_fees_paid"`
}

type OverdueStatus struct {
	BookingID    int64     `json:"booking_id"`
	IsOverdue    bool      `json:"is_overdue"`
	EffectiveEnd time.Time `json:"effective_end_date"`
	OverdueHours int       `json:"overdue_hours"`
	LateFeesPaid bool      `json:"late_fees_paid"`
	CanReturn    bool      `json:"can_return"`
}

type StatusView struct {
	Booking    *Booking `json:"booking"`
	StatusInfo Progress `json:"status_info"`
}
