package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/bookings"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"github.com/Zorochan404/adv-backend-sub001/internal/params"
	"github.com/Zorochan404/adv-backend-sub001/internal/refcode"
	"github.com/go-chi/chi/v5"
)

type CreateBookingPayload struct {
	CarID            int64      `json:"car_id" validate:"required,gt=0"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EndDate          time.Time  `json:"end_date" validate:"required"`
	PickupDate       *time.Time `json:"pickup_date,omitempty"`
	PickupParkingID  *int64     `json:"pickup_parking_id,omitempty" validate:"omitempty,gt=0"`
	DropoffParkingID *int64     `json:"dropoff_parking_id,omitempty" validate:"omitempty,gt=0"`
	DeliveryCharges  float64    `json:"delivery_charges" validate:"gte=0"`
}

type PaymentPayload struct {
	PaymentReferenceID string `json:"payment_reference_id" validate:"required,max=255"`
}

type ConfirmationPayload struct {
	CarConditionImages []string        `json:"car_condition_images" validate:"required,min=1,dive,required"`
	Tools              json.RawMessage `json:"tools,omitempty" swaggertype:"array,object"`
	ToolImages         []string        `json:"tool_images,omitempty" validate:"omitempty,dive,required"`
}

type ReviewConfirmationPayload struct {
	Approved *bool   `json:"approved" validate:"required"`
	Comments *string `json:"comments,omitempty" validate:"omitempty,max=1000"`
}

type VerifyOTPPayload struct {
	OTP string `json:"otp" validate:"required,otp"`
}

type ReschedulePayload struct {
	NewPickupDate time.Time  `json:"new_pickup_date" validate:"required"`
	NewStartDate  *time.Time `json:"new_start_date,omitempty"`
	NewEndDate    *time.Time `json:"new_end_date,omitempty"`
}

type ReturnPayload struct {
	ReturnCondition *string  `json:"return_condition,omitempty" validate:"omitempty,max=500"`
	ReturnImages    []string `json:"return_images,omitempty" validate:"omitempty,dive,required"`
	Comments        *string  `json:"comments,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse is a booking with its counter reference. The pickup code
// is only present for the renter.
type BookingResponse struct {
	bookings.Booking
	Reference string `json:"reference,omitempty"`
}

type StatusResponse struct {
	Booking    BookingResponse   `json:"booking"`
	StatusInfo bookings.Progress `json:"status_info"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination params.Pagination `json:"pagination"`
}

func (app *application) present(user *users.User, b *bookings.Booking) BookingResponse {
	out := BookingResponse{Booking: *b}
	if user == nil || user.ID != b.UserID {
		out.Booking = b.Redacted()
	}

	if app.refs != nil {
		ref, err := app.refs.Encode(b.ID)
		if err != nil {
			app.logger.Warnw("failed to encode booking reference", "booking_id", b.ID, "error", err.Error())
		} else {
			out.Reference = ref
		}
	}
	return out
}

// bookingRequest reads the caller and the {bookingID} path value. It writes
// the error response itself and reports false when the request is unusable.
func (app *application) bookingRequest(w http.ResponseWriter, r *http.Request) (*users.User, int64, bool) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("missing user"))
		return nil, 0, false
	}

	bookingID, err := bookingIDParam(r)
	if err != nil || bookingID <= 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid booking ID")
		return nil, 0, false
	}
	return user, bookingID, true
}

// decodePayload reads and validates a JSON body into dst.
func (app *application) decodePayload(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := readJSON(w, r, dst); err != nil {
		app.badRequestResponse(w, r, err)
		return false
	}
	if err := Validate.Struct(dst); err != nil {
		app.badRequestResponse(w, r, err)
		return false
	}
	return true
}

func (app *application) writeBooking(w http.ResponseWriter, r *http.Request, status int, message string, user *users.User, b *bookings.Booking) {
	if err := app.messageResponse(w, status, message, app.present(user, b)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createBookingHandler godoc
//
//	@Summary		Create a booking
//	@Description	Reserves a car for the given window. Prices are quoted from the car's current rate and the booking starts in pending.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateBookingPayload	true	"Booking details"
//	@Success		201		{object}	BookingResponse
//	@Failure		400		{object}	ErrorBadRequestResponse	"Invalid dates or car unavailable"
//	@Failure		403		{object}	error					"Renter is not verified"
//	@Failure		404		{object}	error					"Car or parking lot not found"
//	@Failure		409		{object}	error					"Car already booked for these dates"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/bookings [post]
func (app *application) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("missing user"))
		return
	}

	var payload CreateBookingPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.CreateBooking(r.Context(), user.Actor(), bookings.CreateInput{
		CarID:            payload.CarID,
		StartDate:        payload.StartDate,
		EndDate:          payload.EndDate,
		PickupDate:       payload.PickupDate,
		PickupParkingID:  payload.PickupParkingID,
		DropoffParkingID: payload.DropoffParkingID,
		DeliveryCharges:  payload.DeliveryCharges,
	})
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusCreated, "Booking created successfully", user, b)
}

// listMyBookingsHandler godoc
//
//	@Summary		List my bookings
//	@Description	Paginated list of the caller's bookings, newest first.
//	@Tags			bookings
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(pending, advance_paid, confirmed, active, completed, cancelled)
//	@Param			page	query		int		false	"Page number"		default(1)
//	@Param			limit	query		int		false	"Page size"			default(20)
//	@Success		200		{object}	BookingListResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/bookings [get]
func (app *application) listMyBookingsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("missing user"))
		return
	}

	q := r.URL.Query()
	p := params.ParsePagination(q)
	filter := bookings.Filter{Limit: p.Limit, Offset: p.Offset}

	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status := bookings.Status(raw)
		if !status.IsValid() {
			writeJSONError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		filter.Status = &status
	}

	list, total, err := app.bookings.ListMyBookings(r.Context(), user.Actor(), filter)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}
	p.ComputeMeta(total)

	out := BookingListResponse{Bookings: make([]BookingResponse, 0, len(list)), Pagination: p}
	for i := range list {
		out.Bookings = append(out.Bookings, app.present(user, &list[i]))
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getBookingStatusHandler godoc
//
//	@Summary		Booking status and progress
//	@Description	Returns the booking with a progress summary of completed and pending steps.
//	@Tags			bookings
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	StatusResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/status [get]
func (app *application) getBookingStatusHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	view, err := app.bookings.GetBookingStatus(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	out := StatusResponse{
		Booking:    app.present(user, view.Booking),
		StatusInfo: view.StatusInfo,
	}
	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// confirmAdvancePaymentHandler godoc
//
//	@Summary		Confirm advance payment
//	@Description	Records the advance payment reference and moves the booking to advance_paid.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int				true	"Booking ID"
//	@Param			payload		body		PaymentPayload	true	"Payment reference"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error	"Booking changed concurrently"
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/advance-payment [post]
func (app *application) confirmAdvancePaymentHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload PaymentPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.ConfirmAdvancePayment(r.Context(), user.Actor(), bookingID, payload.PaymentReferenceID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Advance payment confirmed", user, b)
}

func (p ConfirmationPayload) input() bookings.ConfirmationInput {
	return bookings.ConfirmationInput{
		CarConditionImages: p.CarConditionImages,
		Tools:              bookings.SanitizeTools(p.Tools),
		ToolImages:         p.ToolImages,
	}
}

// submitConfirmationHandler godoc
//
//	@Summary		Submit pickup confirmation
//	@Description	Renter submits car condition photos and the tool checklist for the parking in-charge to review.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int					true	"Booking ID"
//	@Param			payload		body		ConfirmationPayload	true	"Condition images and tools"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/confirmation [post]
func (app *application) submitConfirmationHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload ConfirmationPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.SubmitConfirmation(r.Context(), user.Actor(), bookingID, payload.input())
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Confirmation submitted for review", user, b)
}

// resubmitConfirmationHandler godoc
//
//	@Summary		Resubmit a rejected confirmation
//	@Description	Replaces the condition photos and tools after the parking in-charge rejected the previous submission.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int					true	"Booking ID"
//	@Param			payload		body		ConfirmationPayload	true	"Condition images and tools"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/confirmation/resubmit [post]
func (app *application) resubmitConfirmationHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload ConfirmationPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.ResubmitConfirmation(r.Context(), user.Actor(), bookingID, payload.input())
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Confirmation resubmitted for review", user, b)
}

// reviewConfirmationHandler godoc
//
//	@Summary		Review a pickup confirmation
//	@Description	Parking in-charge approves or rejects the renter's condition submission.
//	@Tags			parking-incharge
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int							true	"Booking ID"
//	@Param			payload		body		ReviewConfirmationPayload	true	"Decision"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/confirmation/review [post]
func (app *application) reviewConfirmationHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload ReviewConfirmationPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.ReviewConfirmation(r.Context(), user.Actor(), bookingID, *payload.Approved, payload.Comments)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	message := "Confirmation rejected"
	if *payload.Approved {
		message = "Confirmation approved"
	}
	app.writeBooking(w, r, http.StatusOK, message, user, b)
}

// confirmFinalPaymentHandler godoc
//
//	@Summary		Confirm final payment
//	@Description	Records the remaining balance payment and confirms the booking. A pickup code is issued.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int				true	"Booking ID"
//	@Param			payload		body		PaymentPayload	true	"Payment reference"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/final-payment [post]
func (app *application) confirmFinalPaymentHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload PaymentPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.ConfirmFinalPayment(r.Context(), user.Actor(), bookingID, payload.PaymentReferenceID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Final payment confirmed", user, b)
}

// verifyOTPHandler godoc
//
//	@Summary		Verify pickup code
//	@Description	Parking in-charge checks the code the renter presents at the counter. Attempts are rate limited per booking.
//	@Tags			parking-incharge
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int					true	"Booking ID"
//	@Param			payload		body		VerifyOTPPayload	true	"Pickup code"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse	"Code expired or not issued"
//	@Failure		401			{object}	error					"Wrong code"
//	@Failure		403			{object}	error
//	@Failure		409			{object}	error	"Already verified"
//	@Failure		429			{object}	error	"Too many attempts"
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/otp/verify [post]
func (app *application) verifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload VerifyOTPPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.VerifyOTP(r.Context(), user.Actor(), bookingID, payload.OTP)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "OTP verified", user, b)
}

// resendOTPHandler godoc
//
//	@Summary		Reissue pickup code
//	@Description	Replaces the pickup code of a confirmed booking that has not been verified yet.
//	@Tags			bookings
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		409			{object}	error	"Already verified"
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/otp/resend [post]
func (app *application) resendOTPHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	b, err := app.bookings.ResendOTP(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "OTP regenerated", user, b)
}

// rescheduleHandler godoc
//
//	@Summary		Reschedule pickup
//	@Description	Moves the pickup time and optionally the rental window before the car is collected.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int					true	"Booking ID"
//	@Param			payload		body		ReschedulePayload	true	"New dates"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse	"Invalid dates or reschedule limit reached"
//	@Failure		403			{object}	error
//	@Failure		409			{object}	error	"New window overlaps another booking"
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/reschedule [post]
func (app *application) rescheduleHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload ReschedulePayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.Reschedule(r.Context(), user.Actor(), bookingID, bookings.RescheduleInput{
		NewPickupDate: payload.NewPickupDate,
		NewStartDate:  payload.NewStartDate,
		NewEndDate:    payload.NewEndDate,
	})
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Booking rescheduled", user, b)
}

// confirmPickupHandler godoc
//
//	@Summary		Hand over the car
//	@Description	Parking in-charge confirms the car left the lot. Requires approval, final payment and a verified code.
//	@Tags			parking-incharge
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/pickup [post]
func (app *application) confirmPickupHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	b, err := app.bookings.ConfirmPickup(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Car pickup confirmed", user, b)
}

// confirmReturnHandler godoc
//
//	@Summary		Receive the car back
//	@Description	Parking in-charge closes the rental. Outstanding late fees must be paid first.
//	@Tags			parking-incharge
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int				true	"Booking ID"
//	@Param			payload		body		ReturnPayload	true	"Return details"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorBadRequestResponse	"Not picked up or late fees unpaid"
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/return [post]
func (app *application) confirmReturnHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload ReturnPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	b, err := app.bookings.ConfirmReturn(r.Context(), user.Actor(), bookingID, bookings.ReturnInput{
		ReturnCondition: payload.ReturnCondition,
		ReturnImages:    payload.ReturnImages,
		Comments:        payload.Comments,
	})
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.writeBooking(w, r, http.StatusOK, "Car return confirmed", user, b)
}

// lookupBookingByReferenceHandler godoc
//
//	@Summary		Find a booking by counter reference
//	@Description	Parking in-charge looks up a booking from the short reference the renter quotes. The pickup code is never included.
//	@Tags			parking-incharge
//	@Produce		json
//	@Param			ref	path		string	true	"Booking reference, e.g. BK-7QX2MZ"
//	@Success		200	{object}	BookingResponse
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/pic/bookings/ref/{ref} [get]
func (app *application) lookupBookingByReferenceHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("missing user"))
		return
	}

	bookingID, err := app.refs.Decode(chi.URLParam(r, "ref"))
	if err != nil {
		if errors.Is(err, refcode.ErrInvalid) {
			writeJSONError(w, http.StatusNotFound, "booking not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	b, err := app.bookings.GetForCounter(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.present(nil, b)); err != nil {
		app.internalServerError(w, r, err)
	}
}
