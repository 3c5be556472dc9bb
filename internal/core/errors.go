package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the addressed product or task does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError lists the fields that failed schema validation.
type ValidationError struct {
	Resource string
	Fields   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Resource, strings.Join(e.Fields, ", "))
}
