package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/internal/domain/repositories"
)

// locationRepository implements the LocationRepository interface
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) repositories.LocationRepository {
	return &locationRepository{db: db}
}

// Upsert inserts or replaces the location for (meeting, email). The conflict
// target is the unique (meeting_id, email) index; the store-level upsert is
// what keeps concurrent resubmissions at one row, last write wins.
func (r *locationRepository) Upsert(ctx context.Context, location *entities.MeetingLocation) error {
	location.Email = entities.NormalizeEmail(location.Email)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "meeting_id"}, {Name: "email"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"lat":         location.Lat,
				"lng":         location.Lng,
				"provided_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(location).Error
}

// ListByMeeting retrieves all locations for a meeting, most recent first
func (r *locationRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingLocation, error) {
	var locations []*entities.MeetingLocation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("provided_at DESC").
		Find(&locations).Error
	return locations, err
}
