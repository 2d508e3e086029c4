package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusCollecting MeetingStatus = "collecting"
	MeetingStatusFinalized  MeetingStatus = "finalized"
)

// Meeting is the coordination unit grouping participants, locations, and a
// venue decision. The only transition is collecting -> finalized, one-way.
type Meeting struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	OwnerEmail     string         `gorm:"type:varchar(255);not null;index" json:"owner_email"`
	VenueType      *string        `gorm:"type:varchar(100)" json:"venue_type,omitempty"`
	RadiusMeters   int            `gorm:"not null;default:3000" json:"radius_meters"`
	Status         MeetingStatus  `gorm:"type:varchar(20);not null;default:'collecting';index" json:"status"`
	FinalizedPlace datatypes.JSON `gorm:"type:jsonb" json:"finalized_place,omitempty"`
	Invitations    []Invitation   `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"invitations,omitempty"`
	Locations      []MeetingLocation `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"locations,omitempty"`
	CreatedAt      time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsFinalized checks if the meeting has been finalized
func (m *Meeting) IsFinalized() bool {
	return m.Status == MeetingStatusFinalized
}

// Finalize marks the meeting as finalized with the chosen venue snapshot.
// The snapshot is immutable once set.
func (m *Meeting) Finalize(place datatypes.JSON) {
	m.Status = MeetingStatusFinalized
	m.FinalizedPlace = place
}
