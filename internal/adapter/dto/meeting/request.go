package meeting

import "github.com/middlegroundapp/middleground/internal/domain/entities"

// CreateMeetingRequest represents the request to create a meeting. Invitees
// may arrive either as a list or as a single delimited string, matching what
// the form-style clients send.
type CreateMeetingRequest struct {
	Title        string      `json:"title" validate:"required,min=1,max=255"`
	OwnerEmail   string      `json:"owner_email" validate:"required,email"`
	OwnerName    string      `json:"owner_name,omitempty" validate:"omitempty,max=255"`
	VenueType    *string     `json:"venue_type,omitempty" validate:"omitempty,max=100"`
	RadiusMeters int         `json:"radius_meters,omitempty" validate:"omitempty,min=100,max=100000"`
	Invitees     StringList  `json:"invitees,omitempty"`
}

// SubmitLocationRequest represents the request to submit a location
type SubmitLocationRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Token string  `json:"token" validate:"required"`
	Lat   float64 `json:"lat" validate:"min=-90,max=90"`
	Lng   float64 `json:"lng" validate:"min=-180,max=180"`
}

// FinalizeRequest represents the request to finalize a meeting
type FinalizeRequest struct {
	Email string         `json:"email" validate:"required,email"`
	Token string         `json:"token" validate:"required"`
	Place entities.Venue `json:"place" validate:"required"`
}

// ExpireInvitationRequest represents the request to revoke an invitation
type ExpireInvitationRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	TargetEmail string `json:"target_email" validate:"required,email"`
}
