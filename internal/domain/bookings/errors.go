package bookings

import "github.com/Zorochan404/adv-backend-sub001/internal/apperror"

var (
	ErrNotFound        = apperror.NotFound("booking not found")
	ErrVersionConflict = apperror.Conflict("booking was modified by another request, please retry")
	ErrOverlap         = apperror.Conflict("car is already booked for the selected dates")

	ErrInvalidDateRange  = apperror.BadRequest("start date must be before end date")
	ErrInvalidPickupDate = apperror.BadRequest("pickup date must fall between the start and end dates")
	ErrRenterUnverified  = apperror.Forbidden("your account must be verified before booking a car")
	ErrCarUnavailable    = apperror.BadRequest("car is not available for booking")
	ErrBookingClosed     = apperror.BadRequest("booking is already completed or cancelled")
	ErrInvalidTransition = apperror.BadRequest("booking cannot move to the requested status")

	ErrAdvanceAlreadyPaid = apperror.Conflict("advance payment has already been confirmed")
	ErrAdvanceNotPaid     = apperror.BadRequest("advance payment must be completed first")
	ErrNoImages           = apperror.BadRequest("at least one car condition image is required")
	ErrAlreadyApproved    = apperror.Conflict("confirmation has already been approved")
	ErrUseResubmit        = apperror.BadRequest("confirmation was rejected, resubmit it instead")
	ErrNotPendingApproval = apperror.BadRequest("confirmation is not awaiting approval")
	ErrNotRejected        = apperror.BadRequest("only a rejected confirmation can be resubmitted")
	ErrNotApproved        = apperror.BadRequest("confirmation must be approved by the parking in-charge first")
	ErrFinalAlreadyPaid   = apperror.Conflict("final payment has already been confirmed")
	ErrFinalNotPaid       = apperror.BadRequest("final payment must be completed first")
	ErrOTPNotVerified     = apperror.BadRequest("otp must be verified before pickup")
	ErrResendNotAllowed   = apperror.BadRequest("otp can only be resent while the booking is awaiting pickup confirmation")

	ErrRescheduleLimit      = apperror.BadRequest("maximum number of reschedules reached")
	ErrPickupInPast         = apperror.BadRequest("new pickup date must be in the future")
	ErrStartInPast          = apperror.BadRequest("new start date must be in the future")
	ErrRescheduleAfterStart = apperror.BadRequest("booking has already been picked up and cannot be rescheduled")

	ErrAlreadyPickedUp = apperror.Conflict("car has already been picked up")
	ErrNotActive       = apperror.BadRequest("booking is not active")
	ErrNotPickedUp     = apperror.BadRequest("car has not been picked up yet")
	ErrAlreadyReturned = apperror.Conflict("car has already been returned")
	ErrLateFeesUnpaid  = apperror.BadRequest("late fees must be paid before the car can be returned")

	ErrLateFeesAlreadyPaid = apperror.BadRequest("late fees have already been paid")
	ErrNotOverdue          = apperror.BadRequest("booking is not overdue")
)
