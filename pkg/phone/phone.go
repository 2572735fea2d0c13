package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when a submitted number carries no country prefix.
const DefaultRegion = "CH"

// Validate parses a submitted phone number and reports whether it is a
// plausible real-world number. Numbers with an international prefix are
// validated against their own region.
func Validate(raw string) error {
	if raw == "" {
		return fmt.Errorf("phone number cannot be empty")
	}

	parsed, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsPossibleNumber(parsed) {
		return fmt.Errorf("phone number is not possible")
	}
	return nil
}

// FormatE164 normalizes a valid number to E.164, e.g. +41791234567.
func FormatE164(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
