package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingLocation is a participant's submitted coordinate for a meeting.
// At most one row exists per (meeting, email); resubmission overwrites.
type MeetingLocation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_locations_meeting_email" json:"meeting_id"`
	Meeting    *Meeting  `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_locations_meeting_email" json:"email"`
	Lat        float64   `gorm:"not null" json:"lat"`
	Lng        float64   `gorm:"not null" json:"lng"`
	ProvidedAt time.Time `gorm:"not null;default:now()" json:"provided_at"`
}

// TableName specifies the table name for MeetingLocation
func (MeetingLocation) TableName() string {
	return "meeting_locations"
}
