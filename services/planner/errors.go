package planner

import "errors"

var (
	// ErrNotInitialized is returned when planning is attempted before the
	// agent roster and supervisor have been constructed.
	ErrNotInitialized = errors.New("planner not initialized")

	// ErrNoPayload is returned when no parseable JSON payload can be
	// extracted from the supervisor's terminal answer.
	ErrNoPayload = errors.New("no JSON payload found in answer")

	// ErrInvalidPlan is returned when an extracted payload does not satisfy
	// the itinerary's structural invariants.
	ErrInvalidPlan = errors.New("payload failed itinerary validation")
)
