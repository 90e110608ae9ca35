package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateChatMessage validates a free-text booking request.
func ValidateChatMessage(message string) error {
	if len(message) == 0 {
		return errors.New("message cannot be empty")
	}
	if len(message) > 10000 {
		return errors.New("message exceeds maximum length")
	}
	if !utf8.ValidString(message) {
		return errors.New("message must be valid UTF-8")
	}
	return nil
}
