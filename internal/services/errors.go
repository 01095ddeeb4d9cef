package services

import (
	"errors"
)

// Error kinds surfaced by the moderation core. Callers match with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrValidation marks missing or invalid input. Nothing is written.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing referenced entity. Nothing is written.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a redundant write (sanction already at tier,
	// duplicate pending report). Benign for sanctions, rejected for reports.
	ErrConflict = errors.New("conflict")

	// ErrDelivery marks a failed notification insert. Logged, never
	// propagated to the operation that triggered the notification.
	ErrDelivery = errors.New("delivery failed")

	// ErrDowngrade marks an attempt to move a report out of a terminal
	// state.
	ErrDowngrade = errors.New("report already finalized")
)
