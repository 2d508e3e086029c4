package meeting

import (
	"context"

	"github.com/google/uuid"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/pkg/geo"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting creates a meeting in the collecting state, issues one
	// invitation per distinct email (owner first), and sends best-effort
	// invite emails
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error)

	// GetStatus retrieves a meeting with its participants, locations, and
	// the midpoint once at least two locations exist
	GetStatus(ctx context.Context, meetingID uuid.UUID) (*StatusOutput, error)

	// SubmitLocation records a participant's coordinates after validating
	// the invitation token. Resubmission overwrites.
	SubmitLocation(ctx context.Context, input SubmitLocationInput) error

	// GetSuggestions computes the midpoint and fetches venue suggestions,
	// or reports not-ready when fewer than two locations exist
	GetSuggestions(ctx context.Context, meetingID uuid.UUID) (*SuggestionsOutput, error)

	// Finalize locks in a venue (owner only, exactly once) and notifies all
	// invitees best-effort
	Finalize(ctx context.Context, input FinalizeInput) (*entities.Meeting, error)

	// ExpireInvitation revokes an invitee's token (owner only)
	ExpireInvitation(ctx context.Context, input ExpireInvitationInput) error
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title         string
	OwnerEmail    string
	OwnerName     string
	VenueType     *string
	RadiusMeters  int
	InviteeEmails []string
}

// InviteSummary is the (email, role) pair reported back per invitation
type InviteSummary struct {
	Email string
	Role  entities.InvitationRole
}

// CreateMeetingOutput represents the result of creating a meeting
type CreateMeetingOutput struct {
	Meeting   *entities.Meeting
	Invites   []InviteSummary
	OwnerLink string
}

// Participant is the derived join of an invitation with the location ledger
type Participant struct {
	Email     string
	Role      entities.InvitationRole
	Status    entities.InvitationStatus
	Responded bool
}

// StatusOutput represents a meeting's current collection state
type StatusOutput struct {
	Meeting      *entities.Meeting
	Participants []Participant
	Locations    []*entities.MeetingLocation
	Midpoint     *geo.Point
}

// SubmitLocationInput represents input for submitting a location
type SubmitLocationInput struct {
	MeetingID uuid.UUID
	Email     string
	Token     string
	Lat       float64
	Lng       float64
}

// SuggestionsOutput represents venue suggestions for a meeting. Ready is
// false until two locations exist; that state carries a human-readable
// reason and is not an error.
type SuggestionsOutput struct {
	Ready    bool
	Reason   string
	Midpoint *geo.Point
	Venues   []entities.Venue
}

// FinalizeInput represents input for finalizing a meeting
type FinalizeInput struct {
	MeetingID uuid.UUID
	Email     string
	Token     string
	Place     entities.Venue
}

// ExpireInvitationInput represents input for revoking an invitation
type ExpireInvitationInput struct {
	MeetingID   uuid.UUID
	Email       string
	Token       string
	TargetEmail string
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
