package id

import "github.com/google/uuid"

// New returns an opaque unique identifier for a record.
func New() string {
	return uuid.NewString()
}
