package helpers

import (
	"net/http"
	"strings"
)

// MsgInvalidSlug is returned when the slug path parameter is missing or blank.
const MsgInvalidSlug = "Slug parameter is required and must be a valid string"

// SlugParam returns the lower-cased, trimmed {slug} path value. It writes a 400 and
// returns false when the value is blank.
func SlugParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if slug == "" {
		WriteMessage(w, http.StatusBadRequest, MsgInvalidSlug)
		return "", false
	}
	return slug, true
}
