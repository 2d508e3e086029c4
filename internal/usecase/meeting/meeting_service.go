package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/internal/domain/repositories"
	"github.com/middlegroundapp/middleground/internal/infrastructure/external/mailer"
	"github.com/middlegroundapp/middleground/internal/infrastructure/external/places"
	usecaseErrors "github.com/middlegroundapp/middleground/internal/usecase/errors"
	"github.com/middlegroundapp/middleground/pkg/geo"
	"github.com/middlegroundapp/middleground/pkg/token"
)

// defaultRadiusMeters is the venue search radius when none is specified.
const defaultRadiusMeters = 3000

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MeetingService owns the meeting lifecycle: collecting participant
// locations, computing the midpoint, fetching venue suggestions, and the
// one-way finalize transition.
type MeetingService struct {
	meetingRepo    repositories.MeetingRepository
	invitationRepo repositories.InvitationRepository
	locationRepo   repositories.LocationRepository
	placesClient   places.Client
	mail           mailer.Mailer
	baseURL        string
	logger         *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	invitationRepo repositories.InvitationRepository,
	locationRepo repositories.LocationRepository,
	placesClient places.Client,
	mail mailer.Mailer,
	baseURL string,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:    meetingRepo,
		invitationRepo: invitationRepo,
		locationRepo:   locationRepo,
		placesClient:   placesClient,
		mail:           mail,
		baseURL:        baseURL,
		logger:         logger,
	}
}

// CreateMeeting creates a meeting and its invitations. Invite emails are
// best-effort: a failed send is logged and never fails the creation.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", usecaseErrors.ErrInvalidInput)
	}
	ownerEmail := entities.NormalizeEmail(input.OwnerEmail)
	if !emailPattern.MatchString(ownerEmail) {
		return nil, fmt.Errorf("%w: valid owner email is required", usecaseErrors.ErrInvalidInput)
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	// Owner first, then distinct valid invitees.
	emails := []string{ownerEmail}
	seen := map[string]bool{ownerEmail: true}
	for _, raw := range input.InviteeEmails {
		email := entities.NormalizeEmail(raw)
		if email == "" || seen[email] {
			continue
		}
		if !emailPattern.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid invitee email %q", usecaseErrors.ErrInvalidInput, raw)
		}
		seen[email] = true
		emails = append(emails, email)
	}

	m := &entities.Meeting{
		Title:        input.Title,
		OwnerEmail:   ownerEmail,
		VenueType:    input.VenueType,
		RadiusMeters: radius,
		Status:       entities.MeetingStatusCollecting,
	}
	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	invites := make([]InviteSummary, 0, len(emails))
	var ownerLink string
	for i, email := range emails {
		role := entities.InvitationRoleInvitee
		if i == 0 {
			role = entities.InvitationRoleOwner
		}

		tok, err := token.New()
		if err != nil {
			return nil, fmt.Errorf("failed to issue invitation token: %w", err)
		}

		inv := &entities.Invitation{
			MeetingID: m.ID,
			Email:     email,
			Role:      role,
			Token:     tok,
			Status:    entities.InvitationStatusPending,
		}
		if err := s.invitationRepo.Upsert(ctx, inv); err != nil {
			return nil, fmt.Errorf("failed to create invitation: %w", err)
		}
		invites = append(invites, InviteSummary{Email: email, Role: role})

		link := s.meetingLink(m.ID, tok, email)
		if role == entities.InvitationRoleOwner {
			ownerLink = link
		}

		subject, html, text := inviteEmail(m.Title, input.OwnerName, role, link)
		if ok := s.mail.Send(ctx, email, subject, html, text); !ok {
			s.logger.Warn("meeting.invite_email.failed",
				zap.String("meeting_id", m.ID.String()),
				zap.String("email", email),
			)
		}
	}

	return &CreateMeetingOutput{
		Meeting:   m,
		Invites:   invites,
		OwnerLink: ownerLink,
	}, nil
}

// GetStatus retrieves the meeting and its derived participant view. A
// participant counts as responded when the invitation records a response or
// a location exists for their email.
func (s *MeetingService) GetStatus(ctx context.Context, meetingID uuid.UUID) (*StatusOutput, error) {
	m, err := s.findMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	invitations, err := s.invitationRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	locations, err := s.locationRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	located := make(map[string]bool, len(locations))
	for _, loc := range locations {
		located[loc.Email] = true
	}

	participants := make([]Participant, 0, len(invitations))
	for _, inv := range invitations {
		participants = append(participants, Participant{
			Email:     inv.Email,
			Role:      inv.Role,
			Status:    inv.Status,
			Responded: inv.HasResponded() || located[inv.Email],
		})
	}

	out := &StatusOutput{
		Meeting:      m,
		Participants: participants,
		Locations:    locations,
	}
	if len(locations) >= 2 {
		mid := geo.Midpoint(locationPoints(locations))
		out.Midpoint = &mid
	}
	return out, nil
}

// SubmitLocation validates the invitation token and upserts the location.
// Repeated calls overwrite; a finalized meeting rejects new submissions.
func (s *MeetingService) SubmitLocation(ctx context.Context, input SubmitLocationInput) error {
	if !(geo.Point{Lat: input.Lat, Lng: input.Lng}).Valid() {
		return usecaseErrors.ErrInvalidCoordinates
	}

	m, err := s.findMeeting(ctx, input.MeetingID)
	if err != nil {
		return err
	}
	if m.IsFinalized() {
		return usecaseErrors.ErrMeetingFinalized
	}

	inv, err := s.authorize(ctx, input.MeetingID, input.Email, input.Token)
	if err != nil {
		return err
	}

	loc := &entities.MeetingLocation{
		MeetingID: input.MeetingID,
		Email:     inv.Email,
		Lat:       input.Lat,
		Lng:       input.Lng,
	}
	if err := s.locationRepo.Upsert(ctx, loc); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	if err := s.invitationRepo.MarkResponded(ctx, inv.ID); err != nil {
		return fmt.Errorf("failed to mark invitation responded: %w", err)
	}
	return nil
}

// GetSuggestions computes the midpoint and queries the venue source. With
// fewer than two locations it reports not-ready without touching the venue
// source; an upstream failure degrades to an empty venue list.
func (s *MeetingService) GetSuggestions(ctx context.Context, meetingID uuid.UUID) (*SuggestionsOutput, error) {
	m, err := s.findMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if len(locations) < 2 {
		return &SuggestionsOutput{
			Ready:  false,
			Reason: "need at least two locations",
		}, nil
	}

	midpoint := geo.Midpoint(locationPoints(locations))
	venues := s.placesClient.Search(ctx, midpoint, venueQueryFor(m.VenueType), m.RadiusMeters)

	return &SuggestionsOutput{
		Ready:    true,
		Midpoint: &midpoint,
		Venues:   venues,
	}, nil
}

// Finalize locks in the venue. Only the owner's invitation may finalize, and
// only once; the notification fan-out runs after the status write commits
// and cannot undo it.
func (s *MeetingService) Finalize(ctx context.Context, input FinalizeInput) (*entities.Meeting, error) {
	m, err := s.findMeeting(ctx, input.MeetingID)
	if err != nil {
		return nil, err
	}
	if m.IsFinalized() {
		return nil, usecaseErrors.ErrMeetingFinalized
	}

	inv, err := s.authorize(ctx, input.MeetingID, input.Email, input.Token)
	if err != nil {
		return nil, err
	}
	if !inv.IsOwner() {
		return nil, usecaseErrors.ErrNotOwner
	}

	snapshot, err := json.Marshal(input.Place)
	if err != nil {
		return nil, fmt.Errorf("failed to encode venue snapshot: %w", err)
	}

	updated, err := s.meetingRepo.Finalize(ctx, input.MeetingID, datatypes.JSON(snapshot))
	if err != nil {
		return nil, fmt.Errorf("failed to finalize meeting: %w", err)
	}
	if updated == 0 {
		// Lost the race against a concurrent finalize.
		return nil, usecaseErrors.ErrMeetingFinalized
	}
	m.Finalize(datatypes.JSON(snapshot))

	s.notifyFinalized(ctx, m, input.Place)

	return m, nil
}

// ExpireInvitation revokes an invitee's token. Owner only; the owner's own
// invitation cannot be revoked.
func (s *MeetingService) ExpireInvitation(ctx context.Context, input ExpireInvitationInput) error {
	if _, err := s.findMeeting(ctx, input.MeetingID); err != nil {
		return err
	}

	inv, err := s.authorize(ctx, input.MeetingID, input.Email, input.Token)
	if err != nil {
		return err
	}
	if !inv.IsOwner() {
		return usecaseErrors.ErrNotOwner
	}

	target, err := s.invitationRepo.FindByMeetingAndEmail(ctx, input.MeetingID, input.TargetEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to find invitation: %w", err)
	}
	if target.IsOwner() {
		return usecaseErrors.ErrForbidden
	}

	if err := s.invitationRepo.Expire(ctx, target.ID); err != nil {
		return fmt.Errorf("failed to expire invitation: %w", err)
	}
	return nil
}

// notifyFinalized fans out the finalized-venue email to every invitation in
// parallel and waits for all sends to settle. Each failure is logged and
// isolated; none can block the others or the finalize result.
func (s *MeetingService) notifyFinalized(ctx context.Context, m *entities.Meeting, place entities.Venue) {
	invitations, err := s.invitationRepo.ListByMeeting(ctx, m.ID)
	if err != nil {
		s.logger.Warn("meeting.finalize_notify.list_failed",
			zap.String("meeting_id", m.ID.String()),
			zap.Error(err),
		)
		return
	}

	subject, html, text := finalizedEmail(m, place, s.baseURL)

	var wg sync.WaitGroup
	for _, inv := range invitations {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			if ok := s.mail.Send(ctx, email, subject, html, text); !ok {
				s.logger.Warn("meeting.finalize_email.failed",
					zap.String("meeting_id", m.ID.String()),
					zap.String("email", email),
				)
			}
		}(inv.Email)
	}
	wg.Wait()
}

// authorize resolves the (meeting, email, token) triple to an invitation and
// rejects expired ones.
func (s *MeetingService) authorize(ctx context.Context, meetingID uuid.UUID, email, tok string) (*entities.Invitation, error) {
	inv, err := s.invitationRepo.FindForAuth(ctx, meetingID, email, tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}
	if inv.IsExpired() {
		return nil, usecaseErrors.ErrInvitationExpired
	}
	return inv, nil
}

func (s *MeetingService) findMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

func (s *MeetingService) meetingLink(meetingID uuid.UUID, tok, email string) string {
	return fmt.Sprintf("%s/meet.html?mid=%s&token=%s&email=%s",
		s.baseURL, meetingID, tok, url.QueryEscape(email))
}

func locationPoints(locations []*entities.MeetingLocation) []geo.Point {
	points := make([]geo.Point, len(locations))
	for i, loc := range locations {
		points[i] = geo.Point{Lat: loc.Lat, Lng: loc.Lng}
	}
	return points
}
