package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrMeetingFinalized = errors.New("meeting is already finalized")
	ErrNotOwner         = errors.New("only the meeting owner can perform this action")
)

// Invitation errors
var (
	ErrInvalidToken      = errors.New("invalid invitation token")
	ErrInvitationExpired = errors.New("invitation has expired")
	ErrInvitationNotFound = errors.New("invitation not found")
)

// Location errors
var (
	ErrInvalidCoordinates = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")
)
