package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTripNotFound       = errors.New("trip not found or not yours")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrNoItinerary        = errors.New("no generated itinerary in this session")
	ErrGenerationFailed   = errors.New("itinerary generation failed")
)

// GenerationFailure is returned when the text-generation collaborator fails.
// Message carries the underlying reason so it can be shown to the user.
type GenerationFailure struct {
	Message string
}

func NewGenerationFailure(cause error) *GenerationFailure {
	return &GenerationFailure{Message: cause.Error()}
}

func (g *GenerationFailure) Error() string {
	return fmt.Sprintf("%s: %s", ErrGenerationFailed.Error(), g.Message)
}

func (g *GenerationFailure) Is(target error) bool {
	return target == ErrGenerationFailed
}
