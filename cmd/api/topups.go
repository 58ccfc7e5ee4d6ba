package main

import (
	"net/http"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
)

type ApplyTopupPayload struct {
	TopupID            int64  `json:"topup_id" validate:"required,gt=0"`
	PaymentReferenceID string `json:"payment_reference_id" validate:"required,max=255"`
}

type TopupResponse struct {
	BookingTopup   *topups.BookingTopup `json:"booking_topup"`
	UpdatedBooking BookingResponse      `json:"updated_booking"`
	Topup          *topups.Topup        `json:"topup"`
	NewEndDate     time.Time            `json:"new_end_date"`
	ExtensionTime  int                  `json:"extension_time"`
}

// listTopupsHandler godoc
//
//	@Summary		List extension products
//	@Description	Returns the active topups a renter can buy to extend a rental.
//	@Tags			topups
//	@Produce		json
//	@Success		200	{array}		topups.Topup
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Router			/topups [get]
func (app *application) listTopupsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.topups.ListActiveTopups(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []topups.Topup{}
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// applyTopupHandler godoc
//
//	@Summary		Extend an active rental
//	@Description	Buys a topup for an active booking. The extension stacks on the current effective end date.
//	@Tags			topups
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int					true	"Booking ID"
//	@Param			payload		body		ApplyTopupPayload	true	"Topup and payment"
//	@Success		200			{object}	TopupResponse
//	@Failure		400			{object}	ErrorBadRequestResponse	"Booking not active or topup inactive"
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error	"Booking or topup not found"
//	@Failure		409			{object}	error	"Extension collides with the next booking"
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/topups [post]
func (app *application) applyTopupHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload ApplyTopupPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	res, err := app.bookings.ApplyTopup(r.Context(), user.Actor(), bookingID, payload.TopupID, payload.PaymentReferenceID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	out := TopupResponse{
		BookingTopup:   res.BookingTopup,
		UpdatedBooking: app.present(user, res.UpdatedBooking),
		Topup:          res.Topup,
		NewEndDate:     res.NewEndDate,
		ExtensionTime:  res.ExtensionTime,
	}
	if err := app.messageResponse(w, http.StatusOK, "Topup applied", out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listBookingTopupsHandler godoc
//
//	@Summary		Extension history
//	@Description	Lists every topup applied to a booking, oldest first.
//	@Tags			topups
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{array}		topups.BookingTopup
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/topups [get]
func (app *application) listBookingTopupsHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	entries, err := app.bookings.ListTopupHistory(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}
	if entries == nil {
		entries = []topups.BookingTopup{}
	}

	if err := app.jsonResponse(w, http.StatusOK, entries); err != nil {
		app.internalServerError(w, r, err)
	}
}
