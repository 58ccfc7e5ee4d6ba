package main

import (
	"fmt"
	"net/http"
)

const (
	maxUploadBytes  = 15 * 1024 * 1024
	maxUploadImages = 7
)

type UploadImagesResponse struct {
	URLs []string `json:"urls"`
}

// uploadConditionImagesHandler godoc
//
//	@Summary		Upload booking photos
//	@Description	Stores car condition, tool or return photos for a booking and returns their URLs. The URLs are then sent with the confirmation or return request.
//	@Tags			bookings
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			bookingID	path		int		true	"Booking ID"
//	@Param			images		formData	file	true	"Up to 7 images"
//	@Success		201			{object}	UploadImagesResponse
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/images [post]
func (app *application) uploadConditionImagesHandler(w http.ResponseWriter, r *http.Request) {
	user, bookingID, ok := app.bookingRequest(w, r)
	if !ok {
		return
	}

	// check access before reading the body
	if err := app.bookings.AuthorizeUpload(r.Context(), user.Actor(), bookingID); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("at least one image is required"))
		return
	}
	if len(files) > maxUploadImages {
		app.badRequestResponse(w, r, fmt.Errorf("maximum %d images allowed", maxUploadImages))
		return
	}

	urls, err := app.uploadImages(r.Context(), files, fmt.Sprintf("bookings/%d", bookingID))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("booking images uploaded", "booking_id", bookingID, "user_id", user.ID, "count", len(urls))

	if err := app.jsonResponse(w, http.StatusCreated, UploadImagesResponse{URLs: urls}); err != nil {
		app.internalServerError(w, r, err)
	}
}
