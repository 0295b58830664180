package helpers

import (
	"encoding/json"
	"net/http"

	"devevents/internal/domain"
)

// MessageResponse is the body of plain status responses.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of 500 responses; Error carries the underlying error text.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrorResponse is the body of 400 responses for field validation failures.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

// MsgValidationFailed is the message of every ValidationErrorResponse.
const MsgValidationFailed = "Validation failed"

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes {"message": message} with statusCode.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteServerError writes a 500 with message and the text of err.
func WriteServerError(w http.ResponseWriter, message string, err error) {
	body := ErrorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}

// WriteValidationErrors writes a 400 listing every field failure.
func WriteValidationErrors(w http.ResponseWriter, errs domain.ValidationErrors) {
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: MsgValidationFailed,
		Errors:  errs,
	})
}
