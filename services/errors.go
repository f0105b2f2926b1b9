package services

import "errors"

// Sentinel errors shared across services and mapped to HTTP status codes
// at the handler layer. Business-rule violations reject at the boundary
// with no state mutation.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email address is already in use")
	ErrPasswordTooShort   = errors.New("password is too short")

	// Save slots
	ErrSaveNotFound = errors.New("save slot not found")
	ErrSlotRange    = errors.New("save slot out of range")

	// Game business rules
	ErrNoPendingMatch     = errors.New("no pending match awaits resolution")
	ErrTransferWindowShut = errors.New("the transfer window is closed in the current phase")
	ErrRosterMinimum      = errors.New("roster cannot drop below the minimum size")
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrNotOnYourTeam      = errors.New("player is not on your team")
	ErrNotFreeAgent       = errors.New("player is not a free agent")
	ErrInvalidLineup      = errors.New("lineup must list five distinct roster players")
	ErrInvalidPicks       = errors.New("hero picks must cover the full lineup")
	ErrUnknownRegion      = errors.New("unknown region")
)
