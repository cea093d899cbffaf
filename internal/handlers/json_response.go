package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writeValidationError renders a 400 with per-field detail. Validation
// failures are the one error class reported back verbatim; everything else
// stays generic.
func writeValidationError(w http.ResponseWriter, err error) {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed on the '" + fe.Tag() + "' rule"
		}
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "validation_error",
		"message": "Invalid request data",
		"fields":  fields,
	})
}
