package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/internal/domain/repositories"
)

// invitationRepository implements the InvitationRepository interface
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) repositories.InvitationRepository {
	return &invitationRepository{db: db}
}

// Upsert inserts or replaces the invitation for (meeting, email). The
// conflict target is the unique (meeting_id, email) index; token, role, and
// status are replaced while responded_at keeps its existing value.
func (r *invitationRepository) Upsert(ctx context.Context, invitation *entities.Invitation) error {
	invitation.Email = entities.NormalizeEmail(invitation.Email)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "meeting_id"}, {Name: "email"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"token":      invitation.Token,
				"role":       invitation.Role,
				"status":     invitation.Status,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(invitation).Error
}

// FindForAuth retrieves the invitation matching the full auth triple
func (r *invitationRepository) FindForAuth(ctx context.Context, meetingID uuid.UUID, email, token string) (*entities.Invitation, error) {
	var invitation entities.Invitation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND email = ? AND token = ?", meetingID, entities.NormalizeEmail(email), token).
		First(&invitation).Error

	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindByMeetingAndEmail retrieves the invitation for a (meeting, email) pair
func (r *invitationRepository) FindByMeetingAndEmail(ctx context.Context, meetingID uuid.UUID, email string) (*entities.Invitation, error) {
	var invitation entities.Invitation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND email = ?", meetingID, entities.NormalizeEmail(email)).
		First(&invitation).Error

	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// MarkResponded sets status to accepted, only while pending
func (r *invitationRepository) MarkResponded(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Invitation{}).
		Where("id = ? AND status = ?", id, entities.InvitationStatusPending).
		Updates(map[string]interface{}{
			"status":       entities.InvitationStatusAccepted,
			"responded_at": gorm.Expr("NOW()"),
		}).
		Error
}

// Expire revokes an invitation by setting its status to expired
func (r *invitationRepository) Expire(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Invitation{}).
		Where("id = ?", id).
		Update("status", entities.InvitationStatusExpired).
		Error
}

// ListByMeeting retrieves all invitations for a meeting, owner first
func (r *invitationRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Invitation, error) {
	var invitations []*entities.Invitation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("role DESC, email ASC").
		Find(&invitations).Error
	return invitations, err
}
