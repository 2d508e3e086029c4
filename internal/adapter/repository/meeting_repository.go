package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Finalize transitions a collecting meeting to finalized. The status guard in
// the WHERE clause makes the transition a one-shot: a second finalize matches
// zero rows, which the caller reads from the returned count.
func (r *meetingRepository) Finalize(ctx context.Context, id uuid.UUID, place datatypes.JSON) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ? AND status = ?", id, entities.MeetingStatusCollecting).
		Updates(map[string]interface{}{
			"status":          entities.MeetingStatusFinalized,
			"finalized_place": place,
			"updated_at":      gorm.Expr("NOW()"),
		})
	return result.RowsAffected, result.Error
}

// Delete removes a meeting; invitations and locations go with it via the
// foreign key cascade.
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Meeting{}, id).Error
}
