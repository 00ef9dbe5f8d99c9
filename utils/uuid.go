package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ValidID reports whether s is a well-formed UUID, used to accept caller-supplied request ids
func ValidID(s string) bool {
	return uuid.Validate(s) == nil
}
