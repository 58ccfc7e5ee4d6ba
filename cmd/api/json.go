package main

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var otpPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// pickup codes are 4 to 6 digits
	Validate.RegisterValidation("otp", func(fl validator.FieldLevel) bool {
		return otpPattern.MatchString(fl.Field().String())
	})
}

type envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// readJSON decodes a body of at most 1MB and rejects unknown fields.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &envelope{
		Success:    false,
		Message:    message,
		StatusCode: status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	return writeJSON(w, status, &envelope{Success: true, Data: data, StatusCode: status})
}

func (app *application) messageResponse(w http.ResponseWriter, status int, message string, data any) error {
	return writeJSON(w, status, &envelope{Success: true, Data: data, Message: message, StatusCode: status})
}
