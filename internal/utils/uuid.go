package utils

import "github.com/google/uuid"

// UUIDGenerator produces the X-Request-Id values attached to every
// credential-service request, so server logs can be correlated with
// client-side entries.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock cannot produce one. Time ordering keeps
// request IDs sortable by issue time when scanning correlated logs.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
