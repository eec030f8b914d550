// Package ids validates identifiers at the API boundary so services only see well formed UUIDs.
package ids

import (
	"strings"

	"go-workforce/internal/shared/apperror"

	"github.com/google/uuid"
)

// Parse returns the UUID in v or an INVALID_INPUT error naming field.
func Parse(field, v string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperror.InvalidField(field)
	}
	return id, nil
}

// ParseOptional treats nil and blank values as absent.
func ParseOptional(field string, v *string) (*uuid.UUID, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	id, err := Parse(field, *v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseAll validates every value and returns the first failure.
func ParseAll(field string, values []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := Parse(field, v)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
