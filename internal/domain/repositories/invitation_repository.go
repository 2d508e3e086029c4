package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Upsert inserts the invitation or, when one already exists for the same
	// (meeting, email), replaces its token, role, and status while keeping
	// any response history. Exactly one row per (meeting, email) at all times.
	Upsert(ctx context.Context, invitation *entities.Invitation) error

	// FindForAuth retrieves the invitation matching all of meeting ID,
	// normalized email, and token. A miss on any of the three returns
	// gorm.ErrRecordNotFound.
	FindForAuth(ctx context.Context, meetingID uuid.UUID, email, token string) (*entities.Invitation, error)

	// FindByMeetingAndEmail retrieves the invitation for a (meeting, email) pair
	FindByMeetingAndEmail(ctx context.Context, meetingID uuid.UUID, email string) (*entities.Invitation, error)

	// MarkResponded sets status to accepted and stamps responded_at, only if
	// the invitation is still pending. A no-op otherwise.
	MarkResponded(ctx context.Context, id uuid.UUID) error

	// Expire sets the invitation status to expired, revoking its token
	Expire(ctx context.Context, id uuid.UUID) error

	// ListByMeeting retrieves all invitations for a meeting, owner first,
	// then invitees ordered by email
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Invitation, error)
}
