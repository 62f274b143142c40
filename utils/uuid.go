package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateAdCode returns a short public code for a listing URL
func GenerateAdCode() string {
	return uuid.New().String()[:8]
}
