package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
)

// LocationRepository defines the interface for meeting location data access
type LocationRepository interface {
	// Upsert inserts the location or, when one already exists for the same
	// (meeting, email), replaces its coordinates and stamps provided_at.
	// Last write wins.
	Upsert(ctx context.Context, location *entities.MeetingLocation) error

	// ListByMeeting retrieves all submitted locations for a meeting, most
	// recent first
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingLocation, error)
}
