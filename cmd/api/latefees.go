package main

import "net/http"

type LateFeePaymentResponse struct {
	Booking            BookingResponse `json:"booking"`
	LateFees           float64         `json:"late_fees"`
	PaymentReferenceID string          `json:"payment_reference_id"`
}

// calculateLateFeesHandler godoc
//
//	@Summary		Current late fees
//	@Description	Projects the late fees owed right now. Nothing is persisted.
//	@Tags			late-fees
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	bookings.LateFeeReport
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/late-fees [get]
func (app *application) calculateLateFeesHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	report, err := app.bookings.CalculateLateFees(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, report); err != nil {
		app.internalServerError(w, r, err)
	}
}

// checkOverdueHandler godoc
//
//	@Summary		Overdue check
//	@Description	Reports whether the rental is past its effective end and whether it can be returned now.
//	@Tags			late-fees
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	bookings.OverdueStatus
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/overdue [get]
func (app *application) checkOverdueHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	status, err := app.bookings.CheckOverdue(r.Context(), user.Actor(), bookingID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, status); err != nil {
		app.internalServerError(w, r, err)
	}
}

// payLateFeesHandler godoc
//
//	@Summary		Pay late fees
//	@Description	Settles the late fees accrued up to now. Required before an overdue car can be returned.
//	@Tags			late-fees
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int				true	"Booking ID"
//	@Param			payload		body		PaymentPayload	true	"Payment reference"
//	@Success		200			{object}	LateFeePaymentResponse
//	@Failure		400			{object}	ErrorBadRequestResponse	"Nothing owed or already paid"
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/late-fees/pay [post]
func (app *application) payLateFeesHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	var payload PaymentPayload
	if !app.decodePayload(w, r, &payload) {
		return
	}

	res, err := app.bookings.PayLateFees(r.Context(), user.Actor(), bookingID, payload.PaymentReferenceID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	out := LateFeePaymentResponse{
		Booking:            app.present(user, res.Booking),
		LateFees:           res.LateFees,
		PaymentReferenceID: res.PaymentReferenceID,
	}
	if err := app.messageResponse(w, http.StatusOK, "Late fees paid", out); err != nil {
		app.internalServerError(w, r, err)
	}
}
