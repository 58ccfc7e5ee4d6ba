package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Zorochan404/adv-backend-sub001/internal/auth"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
)

// ErrorBadRequestResponse represents the standard error format for bad request API responses.
//
//	@name			ErrorBadRequestResponse
//	@description	Standard error response format returned by all bad request API endpoints
type ErrorBadRequestResponse struct {
	Success    bool   `json:"success" example:"false"`
	Message    string `json:"message" example:"It show error from err.Error()"`
	StatusCode int    `json:"statusCode" example:"400"`
}

// ErrorInternalServerResponse represents the standard error format for internal server API responses.
//
//	@name			ErrorInternalServerResponse
//	@description	Standard error response format returned by all internal server error API endpoints
type ErrorInternalServerResponse struct {
	Success    bool   `json:"success" example:"false"`
	Message    string `json:"message" example:"the server encountered a problem"`
	StatusCode int    `json:"statusCode" example:"500"`
}

type CreateUserTokenPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

type RefreshPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse is the token pair handed to clients after login or refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	ParkingID    *int64 `json:"parking_id,omitempty"`
}

func (app *application) issueTokens(w http.ResponseWriter, r *http.Request, user *users.User) {
	accessToken, refreshToken, err := app.authenticator.GenerateTokens(user.ID, string(user.Role), user.ParkingID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Save refresh token in the database
	if err := app.users.SaveRefreshToken(r.Context(), user.ID, refreshToken); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       strconv.FormatInt(user.ID, 10),
		Role:         string(user.Role),
		ParkingID:    user.ParkingID,
	}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createTokenHandler godoc
//
//	@Summary		Login to get Token
//	@Description	Exchanges email and password for an access and refresh token pair.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateUserTokenPayload	true	"User credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/authentication/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.users.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			app.unauthorizedErrorResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := user.Password.Compare(payload.Password); err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}
	if !user.IsActive {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("user %d is deactivated", user.ID))
		return
	}

	app.issueTokens(w, r, user)
}

// refreshTokenHandler godoc
//
//	@Summary		Refresh authentication tokens
//	@Description	Validates the provided refresh token and issues new access and refresh tokens.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RefreshPayload	true	"Refresh token payload"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/authentication/refresh [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RefreshPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.ValidateRefreshToken(payload.RefreshToken)
	if err != nil || !token.Valid {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("invalid refresh token"))
		return
	}

	userID, err := auth.SubjectID(token)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	// only the latest issued refresh token is accepted
	savedToken, err := app.users.GetRefreshToken(r.Context(), userID)
	if err != nil || savedToken != payload.RefreshToken {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("refresh token mismatch"))
		return
	}

	// role and parking assignment may have changed since the last login
	user, err := app.users.GetByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			app.unauthorizedErrorResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}
	if !user.IsActive {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("user %d is deactivated", user.ID))
		return
	}

	app.issueTokens(w, r, user)
}
