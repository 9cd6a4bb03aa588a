package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const minMessageLength = 10

// ValidateMessage validates a report/contact message body.
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)

	if trimmed == "" {
		return errors.New("message is required")
	}

	if utf8.RuneCountInString(trimmed) < minMessageLength {
		return errors.New("message is too short (min 10 characters)")
	}

	if len(trimmed) > 10000 {
		return errors.New("message is too long (max 10000 characters)")
	}

	return nil
}
