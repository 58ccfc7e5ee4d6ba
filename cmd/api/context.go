package main

import (
	"net/http"
	"strconv"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/users"
	"github.com/go-chi/chi/v5"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *users.User {
	if user, ok := r.Context().Value(userCtx).(*users.User); ok {
		return user
	}
	return nil
}

func bookingIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
}
