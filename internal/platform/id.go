package platform

import (
	"github.com/google/uuid"
)

// NewID returns a random UUID string, used for request ids.
func NewID() string {
	return uuid.New().String()
}
