package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emailRequest struct {
	Email string `json:"email"`
}

func (e emailRequest) Validate() domain.ValidationErrors {
	var errs domain.ValidationErrors
	if e.Email == "" {
		errs.Add("email", "Email is required")
	}
	return errs
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantSubstr string
	}{
		{name: "valid", body: `{"email":"ada@example.com"}`, wantOK: true},
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantSubstr: "Invalid request body"},
		{name: "unknown field", body: `{"email":"a@b.co","name":"Ada"}`, wantStatus: http.StatusBadRequest, wantSubstr: "unknown field"},
		{name: "fails validation", body: `{}`, wantStatus: http.StatusBadRequest, wantSubstr: "Email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest emailRequest

			ok := DecodeAndValidate(rr, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "ada@example.com", dest.Email)
				return
			}
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantSubstr)
		})
	}
}

func TestWriteValidationErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteValidationErrors(rr, domain.ValidationErrors{{Field: "title", Message: "Title is required"}})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, MsgValidationFailed, body.Message)
	assert.Equal(t, []domain.FieldError{{Field: "title", Message: "Title is required"}}, body.Errors)
}

func TestWriteServerError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteServerError(rr, "Failed to fetch event", errors.New("connection reset"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Message: "Failed to fetch event", Error: "connection reset"}, body)
}

func TestSlugParam(t *testing.T) {
	tests := []struct {
		value  string
		want   string
		wantOK bool
	}{
		{value: "react-summit", want: "react-summit", wantOK: true},
		{value: "  React-Summit ", want: "react-summit", wantOK: true},
		{value: "   ", wantOK: false},
		{value: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/events/x", nil)
			req.SetPathValue("slug", tt.value)
			rr := httptest.NewRecorder()

			got, ok := SlugParam(rr, req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), MsgInvalidSlug)
		})
	}
}
