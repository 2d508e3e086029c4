package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Finalize transitions a collecting meeting to finalized with the venue
	// snapshot. Returns the number of rows updated so the caller can detect
	// a lost race against another finalize.
	Finalize(ctx context.Context, id uuid.UUID, place datatypes.JSON) (int64, error)

	// Delete removes a meeting and, via cascade, its invitations and locations
	Delete(ctx context.Context, id uuid.UUID) error
}
