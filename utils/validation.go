// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows an optional + prefix followed by 7-15 digits. Local
	// formats keep their leading zero (e.g. 010-1234-5678).
	regex := `^\+?\d{7,15}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateDateString checks the YYYY-MM-DD shape without parsing it.
func ValidateDateString(date string) bool {
	return dateRegex.MatchString(date)
}

// ValidateClockString checks the HH:MM shape (00:00 .. 23:59).
func ValidateClockString(clock string) bool {
	return clockRegex.MatchString(clock)
}
