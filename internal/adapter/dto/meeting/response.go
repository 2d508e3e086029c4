package meeting

import (
	"time"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/pkg/geo"
)

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	OwnerEmail     string          `json:"owner_email"`
	VenueType      *string         `json:"venue_type,omitempty"`
	RadiusMeters   int             `json:"radius_meters"`
	Status         string          `json:"status"`
	FinalizedPlace *entities.Venue `json:"finalized_place,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InviteResponse is the (email, role) pair reported after meeting creation
type InviteResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateMeetingResponse represents the response after creating a meeting
type CreateMeetingResponse struct {
	Meeting   *MeetingResponse `json:"meeting"`
	Invites   []InviteResponse `json:"invites"`
	OwnerLink string           `json:"owner_link"`
}

// ParticipantResponse represents a participant in the status view
type ParticipantResponse struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Responded bool   `json:"responded"`
}

// LocationResponse represents a submitted location
type LocationResponse struct {
	Email      string    `json:"email"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ProvidedAt time.Time `json:"provided_at"`
}

// StatusResponse represents the meeting status view
type StatusResponse struct {
	Meeting      *MeetingResponse      `json:"meeting"`
	Participants []ParticipantResponse `json:"participants"`
	Locations    []LocationResponse    `json:"locations"`
	Midpoint     *geo.Point            `json:"midpoint,omitempty"`
}

// SuggestionsResponse represents venue suggestions. Ready is false while
// fewer than two locations have been submitted.
type SuggestionsResponse struct {
	Ready    bool             `json:"ready"`
	Reason   string           `json:"reason,omitempty"`
	Midpoint *geo.Point       `json:"midpoint,omitempty"`
	Venues   []entities.Venue `json:"venues,omitempty"`
}

// OKResponse is the minimal acknowledgement shape
type OKResponse struct {
	OK bool `json:"ok"`
}

// FinalizeResponse represents the response after finalizing a meeting
type FinalizeResponse struct {
	OK      bool             `json:"ok"`
	Meeting *MeetingResponse `json:"meeting"`
}
