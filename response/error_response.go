package response

import (
	"context"
	"encoding/json"
	"errors"
	"eventers-legacy-adapter/adapter"
	"eventers-legacy-adapter/logger"
	"fmt"
	"net/http"
)

type ErrorResponse struct {
	StatusCode  int    `json:"-"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

// Send writes r as JSON. Client errors are logged as warnings; the failure
// that caused them has usually been logged already.
func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	if r.StatusCode < http.StatusInternalServerError {
		logger.Warnf(ctx, "%s", r.Error())
	} else {
		logger.Errorf(ctx, "%s", r.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.StatusCode)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		logger.Errorf(ctx, "send: error encoding error response: %+v", err)
	}
}

// FromTranslationError picks the response matching the kind of a translation
// failure. Anything that is not a *adapter.TranslationError is SomethingWrong.
func FromTranslationError(err error) ErrorResponse {
	var te *adapter.TranslationError
	if !errors.As(err, &te) {
		return SomethingWrong()
	}

	switch te.Kind {
	case adapter.KindMissingField:
		return MissingField(te.Field)
	case adapter.KindMalformedDate:
		return MalformedDate(te.Raw)
	default:
		return SomethingWrong()
	}
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT FOUND",
		Description: description,
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, Something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func MissingField(field string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Legacy event is missing a required field",
		Status:      "MISSING_FIELD",
		Description: field,
	}
}

func MalformedDate(raw string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Legacy event date is not in DD/MM/YYYY format",
		Status:      "MALFORMED_DATE",
		Description: raw,
	}
}
