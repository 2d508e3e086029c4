package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvitationRole represents the role an invitation grants on a meeting
type InvitationRole string

const (
	InvitationRoleOwner   InvitationRole = "owner"
	InvitationRoleInvitee InvitationRole = "invitee"
)

// InvitationStatus represents the status of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// Invitation is a per-email authorization record granting token-based access
// to act on a meeting. At most one invitation exists per (meeting, email);
// re-inviting replaces the token rather than duplicating the row.
type Invitation struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID   uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_invitations_meeting_email" json:"meeting_id"`
	Meeting     *Meeting         `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Email       string           `gorm:"type:varchar(255);not null;uniqueIndex:idx_invitations_meeting_email" json:"email"`
	Role        InvitationRole   `gorm:"type:varchar(20);not null;default:'invitee'" json:"role"`
	Token       string           `gorm:"type:varchar(64);not null;index" json:"-"`
	Status      InvitationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RespondedAt *time.Time       `json:"responded_at,omitempty"`
	CreatedAt   time.Time        `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsOwner checks if the invitation grants owner rights
func (i *Invitation) IsOwner() bool {
	return i.Role == InvitationRoleOwner
}

// IsExpired checks if the invitation has been revoked
func (i *Invitation) IsExpired() bool {
	return i.Status == InvitationStatusExpired
}

// HasResponded checks if the invitee has responded
func (i *Invitation) HasResponded() bool {
	return i.RespondedAt != nil
}

// NormalizeEmail lowercases and trims an email address. All invitation and
// location lookups key on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
