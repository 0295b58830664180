package helpers

import (
	"encoding/json"
	"net/http"

	"devevents/internal/domain"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns the field failures; an empty result means valid.
type Validator interface {
	Validate() domain.ValidationErrors
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes a 400 JSON response and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteValidationErrors(w, errs)
			return false
		}
	}
	return true
}
