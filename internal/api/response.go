package api

import (
	"encoding/json"
	"errors"
	"net/http"

	swerr "github.com/swatchfile/swatch/internal/errors"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error response, mapping domain errors to HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var validation *swerr.ValidationError
	var duplicate *swerr.DuplicateNameError
	var maxColors *swerr.MaxColorsReachedError
	var outOfRange *swerr.IndexOutOfRangeError

	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &duplicate):
		status = http.StatusConflict
	case errors.As(err, &maxColors):
		status = http.StatusConflict
	case errors.As(err, &outOfRange):
		status = http.StatusNotFound
	}

	JSON(w, status, map[string]string{"error": message})
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
