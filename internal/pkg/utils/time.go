package utils

import (
	"time"

	"dentaldesk-service/internal/pkg/constvars"
)

// NormalizeDateOfBirth canonicalizes a date-of-birth form value. A blank value
// means absent. Accepts a plain date or a full RFC 3339 timestamp and returns
// midnight UTC of that day.
func NormalizeDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(constvars.DateOnlyFormat, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, err
		}
	}

	canonical := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &canonical, nil
}

// ParseOptionalTimestamp parses an optional wire timestamp. Nil or blank means
// absent. Accepts RFC 3339 or a plain date.
func ParseOptionalTimestamp(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		parsed, err = time.Parse(constvars.DateOnlyFormat, *value)
		if err != nil {
			return nil, err
		}
	}

	utc := parsed.UTC()
	return &utc, nil
}

// OptionalString maps a blank form value to explicit absence so empty strings
// never reach the wire as values.
func OptionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
