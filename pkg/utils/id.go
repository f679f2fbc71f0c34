package utils

import (
	"github.com/google/uuid"
)

// GenerateID generates an opaque 36-character identifier
func GenerateID() string {
	return uuid.NewString()
}
