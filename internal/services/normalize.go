package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"devevents/internal/domain"
)

// Validation messages produced by normalization.
const (
	MsgInvalidDate = "date must be a valid date format"
	MsgInvalidTime = "time must be in HH:MM or HH:MM AM/PM format"
)

var (
	// RE2's \s is ASCII only, so Unicode spaces are listed explicitly.
	slugDisallowed  = regexp.MustCompile(`[^\w\s\x0B\p{Z}\x{FEFF}-]`)
	slugWhitespace  = regexp.MustCompile(`[\s\x0B\p{Z}\x{FEFF}]+`)
	slugHyphenRuns  = regexp.MustCompile(`-{2,}`)
	slugEdgeHyphens = regexp.MustCompile(`^-+|-+$`)

	time24Regex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	time12Regex = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):([0-5][0-9])\s?(AM|PM)$`)
)

// Slugify derives the base slug of a title. The result contains only lower-case
// word characters and single hyphens, and never starts or ends with a hyphen.
// A title with no word characters yields "".
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return slugEdgeHyphens.ReplaceAllString(s, "")
}

// UniqueSlug returns base if no other event holds it, else the first free base-N for N = 1, 2, ...
// The loop only ends on a free slug or a checker error.
func UniqueSlug(ctx context.Context, slugs domain.SlugChecker, base, excludeID string) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := slugs.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// NormalizeDate parses any common date representation and returns its UTC calendar date as YYYY-MM-DD.
// Inputs without a zone are read as UTC.
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New(MsgInvalidDate)
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%s: %w", MsgInvalidDate, err)
	}
	return t.UTC().Format("2006-01-02"), nil
}

// NormalizeTime converts H:MM, HH:MM or H:MM AM/PM into zero-padded 24-hour HH:MM.
func NormalizeTime(value string) (string, error) {
	if m := time24Regex.FindStringSubmatch(value); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", hours, m[2]), nil
	}
	m := time12Regex.FindStringSubmatch(value)
	if m == nil {
		return "", fmt.Errorf("%s: got %q", MsgInvalidTime, value)
	}
	hours, _ := strconv.Atoi(m[1])
	switch period := strings.ToUpper(m[3]); {
	case period == "PM" && hours != 12:
		hours += 12
	case period == "AM" && hours == 12:
		hours = 0
	}
	return fmt.Sprintf("%02d:%s", hours, m[2]), nil
}

// trimEvent applies the storage-level text cleanup: surrounding whitespace is
// dropped and mode is lower-cased.
func trimEvent(e *domain.Event) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Overview = strings.TrimSpace(e.Overview)
	e.Image = strings.TrimSpace(e.Image)
	e.Venue = strings.TrimSpace(e.Venue)
	e.Location = strings.TrimSpace(e.Location)
	e.Audience = strings.TrimSpace(e.Audience)
	e.Organizer = strings.TrimSpace(e.Organizer)
	e.Mode = domain.Mode(strings.ToLower(strings.TrimSpace(string(e.Mode))))
}

// NormalizeEvent prepares incoming for persistence. previous is the stored state, or nil for a new event.
//
// Slug is re-derived only when the title changed, date and time are re-normalized only
// when they changed. Date and time failures are returned together as domain.ValidationErrors;
// the returned event still carries the derived slug in that case. Any other error comes
// from the slug checker.
func NormalizeEvent(ctx context.Context, previous, incoming *domain.Event, slugs domain.SlugChecker) (*domain.Event, error) {
	out := incoming.Clone()
	trimEvent(out)

	isNew := previous == nil
	excludeID := out.ID

	if isNew || out.Title != previous.Title {
		slug, err := UniqueSlug(ctx, slugs, Slugify(out.Title), excludeID)
		if err != nil {
			return out, err
		}
		out.Slug = slug
	} else {
		out.Slug = previous.Slug
	}

	var errs domain.ValidationErrors
	if isNew || out.Date != previous.Date {
		if date, err := NormalizeDate(out.Date); err != nil {
			errs.Add("date", MsgInvalidDate)
		} else {
			out.Date = date
		}
	}
	if isNew || out.Time != previous.Time {
		if t, err := NormalizeTime(out.Time); err != nil {
			errs.Add("time", MsgInvalidTime)
		} else {
			out.Time = t
		}
	}
	return out, errs.Err()
}
