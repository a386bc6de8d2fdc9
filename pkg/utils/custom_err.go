package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrPayloadTooLarge    = errors.New("request body exceeds the configured upload limit")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)

var (
	ErrPlaceNotFound          = fmt.Errorf("place %w", ErrNotFound)
	ErrPlaceImageNotFound     = fmt.Errorf("place image %w", ErrNotFound)
	ErrItineraryPhotoNotFound = fmt.Errorf("itinerary photo %w", ErrNotFound)
	ErrBookingNotFound        = fmt.Errorf("booking %w", ErrNotFound)
	ErrItemNotFound           = fmt.Errorf("item %w", ErrNotFound)
	ErrServiceNotFound        = fmt.Errorf("service %w", ErrNotFound)
	ErrGalleryPhotoNotFound   = fmt.Errorf("gallery photo %w", ErrNotFound)
	ErrPostNotFound           = fmt.Errorf("post %w", ErrNotFound)
	ErrContactNotFound        = fmt.Errorf("contact %w", ErrNotFound)
	ErrFrontNotFound          = fmt.Errorf("front content %w", ErrNotFound)
	ErrUserDetailsNotFound    = fmt.Errorf("user details %w", ErrNotFound)
	ErrAccountNotFound        = fmt.Errorf("account %w", ErrNotFound)
)

// NonFieldErrors is the key used for problems that belong to the request as a whole.
const NonFieldErrors = "non_field_errors"

// ValidationError reports invalid input per field, keyed by the JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], message)
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
