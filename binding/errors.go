package binding

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/authcorp/strongtypes/strong"
	"github.com/authcorp/strongtypes/validation"
)

// ErrorResponse represents a JSON error response.
type ErrorResponse struct {
	Error     string                  `json:"error"`
	Code      string                  `json:"code,omitempty"`
	Message   string                  `json:"message,omitempty"`
	Parameter string                  `json:"parameter,omitempty"`
	Fields    []validation.FieldError `json:"fields,omitempty"`
}

// StatusOf maps a Bind error to an HTTP status: 400 for missing or
// malformed parameters and bodies, 422 for values that parse but fail
// validation, including validation.Errors.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, strong.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrMissing), errors.Is(err, strong.ErrInvalidFormat), errors.Is(err, ErrBody):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func codeOf(err error) string {
	switch {
	case errors.Is(err, strong.ErrValidation):
		return "invalid_value"
	case errors.Is(err, ErrMissing):
		return "missing_parameter"
	case errors.Is(err, strong.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrBody):
		return "invalid_body"
	}
	return "internal_error"
}

// WriteError writes err as a JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	resp := ErrorResponse{
		Error:   http.StatusText(status),
		Code:    codeOf(err),
		Message: err.Error(),
	}
	var be *Error
	if errors.As(err, &be) {
		resp.Parameter = be.Name
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		resp.Fields = fields
	}
	if status == http.StatusInternalServerError {
		resp.Message = "An internal error occurred"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
