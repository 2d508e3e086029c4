package meeting

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	usecaseErrors "github.com/middlegroundapp/middleground/internal/usecase/errors"
	"github.com/middlegroundapp/middleground/pkg/geo"
)

// ---- in-memory fakes ----

type fakeMeetingRepo struct {
	mu       sync.Mutex
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[uuid.UUID]*entities.Meeting{}}
}

func (r *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMeetingRepo) Finalize(ctx context.Context, id uuid.UUID, place datatypes.JSON) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.meetings[id]
	if !ok || m.Status != entities.MeetingStatusCollecting {
		return 0, nil
	}
	m.Finalize(place)
	return 1, nil
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.meetings, id)
	return nil
}

type fakeInvitationRepo struct {
	mu          sync.Mutex
	invitations map[uuid.UUID]*entities.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: map[uuid.UUID]*entities.Invitation{}}
}

func (r *fakeInvitationRepo) Upsert(ctx context.Context, inv *entities.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invitations {
		if existing.MeetingID == inv.MeetingID && existing.Email == inv.Email {
			existing.Token = inv.Token
			existing.Role = inv.Role
			existing.Status = inv.Status
			existing.UpdatedAt = time.Now()
			*inv = *existing
			return nil
		}
	}
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) FindForAuth(ctx context.Context, meetingID uuid.UUID, email, token string) (*entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invitations {
		if inv.MeetingID == meetingID && inv.Email == email && inv.Token == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInvitationRepo) FindByMeetingAndEmail(ctx context.Context, meetingID uuid.UUID, email string) (*entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invitations {
		if inv.MeetingID == meetingID && inv.Email == email {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInvitationRepo) MarkResponded(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if inv.Status == entities.InvitationStatusPending {
		now := time.Now()
		inv.Status = entities.InvitationStatusAccepted
		inv.RespondedAt = &now
	}
	return nil
}

func (r *fakeInvitationRepo) Expire(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.Status = entities.InvitationStatusExpired
	return nil
}

func (r *fakeInvitationRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Invitation
	for _, inv := range r.invitations {
		if inv.MeetingID == meetingID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role == entities.InvitationRoleOwner
		}
		return out[i].Email < out[j].Email
	})
	return out, nil
}

type fakeLocationRepo struct {
	mu        sync.Mutex
	locations map[uuid.UUID]*entities.MeetingLocation
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: map[uuid.UUID]*entities.MeetingLocation{}}
}

func (r *fakeLocationRepo) Upsert(ctx context.Context, loc *entities.MeetingLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.locations {
		if existing.MeetingID == loc.MeetingID && existing.Email == loc.Email {
			existing.Lat = loc.Lat
			existing.Lng = loc.Lng
			existing.ProvidedAt = time.Now()
			*loc = *existing
			return nil
		}
	}
	loc.ID = uuid.New()
	loc.ProvidedAt = time.Now()
	cp := *loc
	r.locations[loc.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.MeetingLocation
	for _, loc := range r.locations {
		if loc.MeetingID == meetingID {
			cp := *loc
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProvidedAt.After(out[j].ProvidedAt) })
	return out, nil
}

type placesSearch struct {
	Midpoint geo.Point
	Query    string
	Radius   int
}

type fakePlacesClient struct {
	mu       sync.Mutex
	searches []placesSearch
	venues   []entities.Venue
}

func (c *fakePlacesClient) Search(ctx context.Context, midpoint geo.Point, query string, radiusMeters int) []entities.Venue {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searches = append(c.searches, placesSearch{Midpoint: midpoint, Query: query, Radius: radiusMeters})
	return c.venues
}

type sentMail struct {
	To      string
	Subject string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject})
	return !m.fail
}

func (m *fakeMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, s := range m.sent {
		out[i] = s.To
	}
	sort.Strings(out)
	return out
}

type fixture struct {
	svc         *MeetingService
	meetings    *fakeMeetingRepo
	invitations *fakeInvitationRepo
	locations   *fakeLocationRepo
	places      *fakePlacesClient
	mail        *fakeMailer
}

func newFixture() *fixture {
	f := &fixture{
		meetings:    newFakeMeetingRepo(),
		invitations: newFakeInvitationRepo(),
		locations:   newFakeLocationRepo(),
		places:      &fakePlacesClient{},
		mail:        &fakeMailer{},
	}
	f.svc = NewMeetingService(
		f.meetings, f.invitations, f.locations,
		f.places, f.mail,
		"http://localhost:3000", zap.NewNop(),
	)
	return f
}

func (f *fixture) createMeeting(t *testing.T, invitees ...string) *CreateMeetingOutput {
	t.Helper()
	out, err := f.svc.CreateMeeting(context.Background(), CreateMeetingInput{
		Title:         "Coffee catchup",
		OwnerEmail:    "owner@example.com",
		OwnerName:     "Alice",
		InviteeEmails: invitees,
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	return out
}

func (f *fixture) tokenFor(t *testing.T, meetingID uuid.UUID, email string) string {
	t.Helper()
	inv, err := f.invitations.FindByMeetingAndEmail(context.Background(), meetingID, email)
	if err != nil {
		t.Fatalf("no invitation for %s: %v", email, err)
	}
	return inv.Token
}

// ---- tests ----

func TestCreateMeeting(t *testing.T) {
	f := newFixture()
	out := f.createMeeting(t, "bob@example.com", "Carol@Example.com ", "bob@example.com")

	if out.Meeting.Status != entities.MeetingStatusCollecting {
		t.Errorf("status = %s, want collecting", out.Meeting.Status)
	}
	if out.Meeting.RadiusMeters != 3000 {
		t.Errorf("radius = %d, want default 3000", out.Meeting.RadiusMeters)
	}

	// Owner first, duplicates collapsed, emails normalized.
	wantInvites := []InviteSummary{
		{Email: "owner@example.com", Role: entities.InvitationRoleOwner},
		{Email: "bob@example.com", Role: entities.InvitationRoleInvitee},
		{Email: "carol@example.com", Role: entities.InvitationRoleInvitee},
	}
	if len(out.Invites) != len(wantInvites) {
		t.Fatalf("got %d invites, want %d", len(out.Invites), len(wantInvites))
	}
	for i, want := range wantInvites {
		if out.Invites[i] != want {
			t.Errorf("invite[%d] = %+v, want %+v", i, out.Invites[i], want)
		}
	}

	if out.OwnerLink == "" {
		t.Error("expected a non-empty owner link")
	}

	got := f.mail.recipients()
	want := []string{"bob@example.com", "carol@example.com", "owner@example.com"}
	if len(got) != len(want) {
		t.Fatalf("sent %d invite emails, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recipient[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCreateMeetingValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateMeetingInput
	}{
		{"missing title", CreateMeetingInput{OwnerEmail: "owner@example.com"}},
		{"bad owner email", CreateMeetingInput{Title: "t", OwnerEmail: "not-an-email"}},
		{"bad invitee email", CreateMeetingInput{Title: "t", OwnerEmail: "owner@example.com", InviteeEmails: []string{"nope"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.CreateMeeting(ctx, tc.input); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateMeetingSurvivesMailFailure(t *testing.T) {
	f := newFixture()
	f.mail.fail = true

	out := f.createMeeting(t, "bob@example.com")
	if out.Meeting.ID == uuid.Nil {
		t.Error("meeting should be created even when every invite email fails")
	}
}

func TestSubmitLocationIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	tok := f.tokenFor(t, out.Meeting.ID, "bob@example.com")

	submit := func(lat, lng float64) error {
		return f.svc.SubmitLocation(ctx, SubmitLocationInput{
			MeetingID: out.Meeting.ID,
			Email:     "bob@example.com",
			Token:     tok,
			Lat:       lat,
			Lng:       lng,
		})
	}
	if err := submit(40.0, -75.0); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := submit(41.5, -74.5); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	locs, _ := f.locations.ListByMeeting(ctx, out.Meeting.ID)
	if len(locs) != 1 {
		t.Fatalf("got %d location rows, want 1", len(locs))
	}
	if locs[0].Lat != 41.5 || locs[0].Lng != -74.5 {
		t.Errorf("location = (%v, %v), want last write (41.5, -74.5)", locs[0].Lat, locs[0].Lng)
	}

	inv, _ := f.invitations.FindByMeetingAndEmail(ctx, out.Meeting.ID, "bob@example.com")
	if inv.Status != entities.InvitationStatusAccepted || inv.RespondedAt == nil {
		t.Errorf("invitation not marked responded: status=%s", inv.Status)
	}
}

func TestSubmitLocationAuth(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com", "carol@example.com")
	bobToken := f.tokenFor(t, out.Meeting.ID, "bob@example.com")

	submit := func(email, token string) error {
		return f.svc.SubmitLocation(ctx, SubmitLocationInput{
			MeetingID: out.Meeting.ID,
			Email:     email,
			Token:     token,
			Lat:       40, Lng: -75,
		})
	}

	// A valid token presented with another participant's email must not
	// resolve.
	if err := submit("carol@example.com", bobToken); !errors.Is(err, usecaseErrors.ErrInvalidToken) {
		t.Errorf("cross-email token: err = %v, want ErrInvalidToken", err)
	}
	if err := submit("bob@example.com", "wrong-token"); !errors.Is(err, usecaseErrors.ErrInvalidToken) {
		t.Errorf("wrong token: err = %v, want ErrInvalidToken", err)
	}

	locs, _ := f.locations.ListByMeeting(ctx, out.Meeting.ID)
	if len(locs) != 0 {
		t.Errorf("rejected submissions must not write locations, got %d rows", len(locs))
	}
}

func TestSubmitLocationRejectsBadCoordinates(t *testing.T) {
	f := newFixture()
	out := f.createMeeting(t)
	tok := f.tokenFor(t, out.Meeting.ID, "owner@example.com")

	err := f.svc.SubmitLocation(context.Background(), SubmitLocationInput{
		MeetingID: out.Meeting.ID,
		Email:     "owner@example.com",
		Token:     tok,
		Lat:       91, Lng: 0,
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidCoordinates) {
		t.Errorf("err = %v, want ErrInvalidCoordinates", err)
	}
}

func TestSubmitLocationExpiredInvitation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	tok := f.tokenFor(t, out.Meeting.ID, "bob@example.com")

	inv, _ := f.invitations.FindByMeetingAndEmail(ctx, out.Meeting.ID, "bob@example.com")
	if err := f.invitations.Expire(ctx, inv.ID); err != nil {
		t.Fatalf("expire: %v", err)
	}

	err := f.svc.SubmitLocation(ctx, SubmitLocationInput{
		MeetingID: out.Meeting.ID,
		Email:     "bob@example.com",
		Token:     tok,
		Lat:       40, Lng: -75,
	})
	if !errors.Is(err, usecaseErrors.ErrInvitationExpired) {
		t.Errorf("err = %v, want ErrInvitationExpired", err)
	}
}

func TestGetSuggestionsNotReady(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	tok := f.tokenFor(t, out.Meeting.ID, "owner@example.com")

	if err := f.svc.SubmitLocation(ctx, SubmitLocationInput{
		MeetingID: out.Meeting.ID,
		Email:     "owner@example.com",
		Token:     tok,
		Lat:       40, Lng: -75,
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	sug, err := f.svc.GetSuggestions(ctx, out.Meeting.ID)
	if err != nil {
		t.Fatalf("GetSuggestions: %v", err)
	}
	if sug.Ready {
		t.Error("one location must not be ready")
	}
	if sug.Reason == "" {
		t.Error("not-ready must carry a reason")
	}
	if len(f.places.searches) != 0 {
		t.Errorf("places searched %d times before two locations exist, want 0", len(f.places.searches))
	}
}

func TestGetSuggestionsReady(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	venueType := "cafe"
	created, err := f.svc.CreateMeeting(ctx, CreateMeetingInput{
		Title:         "Coffee catchup",
		OwnerEmail:    "owner@example.com",
		VenueType:     &venueType,
		RadiusMeters:  1500,
		InviteeEmails: []string{"bob@example.com"},
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	f.places.venues = []entities.Venue{{ID: "fsq1", Name: "Cafe X"}}

	for email, pt := range map[string]geo.Point{
		"owner@example.com": {Lat: 40.0, Lng: -75.0},
		"bob@example.com":   {Lat: 40.2, Lng: -75.2},
	} {
		if err := f.svc.SubmitLocation(ctx, SubmitLocationInput{
			MeetingID: created.Meeting.ID,
			Email:     email,
			Token:     f.tokenFor(t, created.Meeting.ID, email),
			Lat:       pt.Lat, Lng: pt.Lng,
		}); err != nil {
			t.Fatalf("submit %s: %v", email, err)
		}
	}

	sug, err := f.svc.GetSuggestions(ctx, created.Meeting.ID)
	if err != nil {
		t.Fatalf("GetSuggestions: %v", err)
	}
	if !sug.Ready {
		t.Fatal("two locations must be ready")
	}
	if math.Abs(sug.Midpoint.Lat-40.1) > 0.01 || math.Abs(sug.Midpoint.Lng+75.1) > 0.01 {
		t.Errorf("midpoint = (%v, %v), want about (40.1, -75.1)", sug.Midpoint.Lat, sug.Midpoint.Lng)
	}
	if len(sug.Venues) != 1 || sug.Venues[0].Name != "Cafe X" {
		t.Errorf("venues = %+v, want the upstream result", sug.Venues)
	}

	if len(f.places.searches) != 1 {
		t.Fatalf("places searched %d times, want 1", len(f.places.searches))
	}
	search := f.places.searches[0]
	if search.Query != "cafe" {
		t.Errorf("query = %q, want %q", search.Query, "cafe")
	}
	if search.Radius != 1500 {
		t.Errorf("radius = %d, want meeting's 1500", search.Radius)
	}
}

func TestFinalize(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	ownerToken := f.tokenFor(t, out.Meeting.ID, "owner@example.com")
	f.mail.sent = nil // drop invite emails, watch only the fan-out

	place := entities.Venue{ID: "fsq1", Name: "Cafe X", Location: entities.VenueLocation{FormattedAddress: "1 Main St"}}
	m, err := f.svc.Finalize(ctx, FinalizeInput{
		MeetingID: out.Meeting.ID,
		Email:     "owner@example.com",
		Token:     ownerToken,
		Place:     place,
	})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !m.IsFinalized() {
		t.Error("returned meeting not finalized")
	}
	if len(m.FinalizedPlace) == 0 {
		t.Error("finalized place snapshot missing")
	}

	stored, _ := f.meetings.FindByID(ctx, out.Meeting.ID)
	if !stored.IsFinalized() {
		t.Error("stored meeting not finalized")
	}

	got := f.mail.recipients()
	want := []string{"bob@example.com", "owner@example.com"}
	if len(got) != len(want) {
		t.Fatalf("fan-out reached %d recipients, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recipient[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFinalizeTwiceFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t)
	tok := f.tokenFor(t, out.Meeting.ID, "owner@example.com")

	input := FinalizeInput{
		MeetingID: out.Meeting.ID,
		Email:     "owner@example.com",
		Token:     tok,
		Place:     entities.Venue{ID: "fsq1", Name: "Cafe X"},
	}
	if _, err := f.svc.Finalize(ctx, input); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if _, err := f.svc.Finalize(ctx, input); !errors.Is(err, usecaseErrors.ErrMeetingFinalized) {
		t.Errorf("second finalize err = %v, want ErrMeetingFinalized", err)
	}
}

func TestFinalizeRequiresOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	bobToken := f.tokenFor(t, out.Meeting.ID, "bob@example.com")

	_, err := f.svc.Finalize(ctx, FinalizeInput{
		MeetingID: out.Meeting.ID,
		Email:     "bob@example.com",
		Token:     bobToken,
		Place:     entities.Venue{ID: "fsq1", Name: "Cafe X"},
	})
	if !errors.Is(err, usecaseErrors.ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}

	stored, _ := f.meetings.FindByID(ctx, out.Meeting.ID)
	if stored.IsFinalized() {
		t.Error("rejected finalize must not mutate the meeting")
	}
}

func TestFinalizedMeetingRejectsSubmissions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	ownerToken := f.tokenFor(t, out.Meeting.ID, "owner@example.com")
	bobToken := f.tokenFor(t, out.Meeting.ID, "bob@example.com")

	if _, err := f.svc.Finalize(ctx, FinalizeInput{
		MeetingID: out.Meeting.ID,
		Email:     "owner@example.com",
		Token:     ownerToken,
		Place:     entities.Venue{ID: "fsq1", Name: "Cafe X"},
	}); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	err := f.svc.SubmitLocation(ctx, SubmitLocationInput{
		MeetingID: out.Meeting.ID,
		Email:     "bob@example.com",
		Token:     bobToken,
		Lat:       40, Lng: -75,
	})
	if !errors.Is(err, usecaseErrors.ErrMeetingFinalized) {
		t.Errorf("err = %v, want ErrMeetingFinalized", err)
	}
}

func TestGetStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com", "carol@example.com")

	for email, pt := range map[string]geo.Point{
		"owner@example.com": {Lat: 40.0, Lng: -75.0},
		"bob@example.com":   {Lat: 40.2, Lng: -75.2},
	} {
		if err := f.svc.SubmitLocation(ctx, SubmitLocationInput{
			MeetingID: out.Meeting.ID,
			Email:     email,
			Token:     f.tokenFor(t, out.Meeting.ID, email),
			Lat:       pt.Lat, Lng: pt.Lng,
		}); err != nil {
			t.Fatalf("submit %s: %v", email, err)
		}
	}

	status, err := f.svc.GetStatus(ctx, out.Meeting.ID)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if len(status.Participants) != 3 {
		t.Fatalf("got %d participants, want 3", len(status.Participants))
	}
	if status.Participants[0].Role != entities.InvitationRoleOwner {
		t.Error("owner must be listed first")
	}

	responded := map[string]bool{}
	for _, p := range status.Participants {
		responded[p.Email] = p.Responded
	}
	if !responded["owner@example.com"] || !responded["bob@example.com"] {
		t.Error("participants with locations must count as responded")
	}
	if responded["carol@example.com"] {
		t.Error("carol has not responded")
	}

	if status.Midpoint == nil {
		t.Fatal("two locations must produce a midpoint")
	}
	if math.Abs(status.Midpoint.Lat-40.1) > 0.01 {
		t.Errorf("midpoint lat = %v, want about 40.1", status.Midpoint.Lat)
	}
}

func TestGetStatusUnknownMeeting(t *testing.T) {
	f := newFixture()
	_, err := f.svc.GetStatus(context.Background(), uuid.New())
	if !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Errorf("err = %v, want ErrMeetingNotFound", err)
	}
}

func TestExpireInvitation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	out := f.createMeeting(t, "bob@example.com")
	ownerToken := f.tokenFor(t, out.Meeting.ID, "owner@example.com")
	bobToken := f.tokenFor(t, out.Meeting.ID, "bob@example.com")

	// Only the owner may revoke.
	err := f.svc.ExpireInvitation(ctx, ExpireInvitationInput{
		MeetingID:   out.Meeting.ID,
		Email:       "bob@example.com",
		Token:       bobToken,
		TargetEmail: "owner@example.com",
	})
	if !errors.Is(err, usecaseErrors.ErrNotOwner) {
		t.Errorf("invitee revoke err = %v, want ErrNotOwner", err)
	}

	// The owner's own invitation is not revocable.
	err = f.svc.ExpireInvitation(ctx, ExpireInvitationInput{
		MeetingID:   out.Meeting.ID,
		Email:       "owner@example.com",
		Token:       ownerToken,
		TargetEmail: "owner@example.com",
	})
	if !errors.Is(err, usecaseErrors.ErrForbidden) {
		t.Errorf("self revoke err = %v, want ErrForbidden", err)
	}

	if err := f.svc.ExpireInvitation(ctx, ExpireInvitationInput{
		MeetingID:   out.Meeting.ID,
		Email:       "owner@example.com",
		Token:       ownerToken,
		TargetEmail: "bob@example.com",
	}); err != nil {
		t.Fatalf("ExpireInvitation: %v", err)
	}

	submitErr := f.svc.SubmitLocation(ctx, SubmitLocationInput{
		MeetingID: out.Meeting.ID,
		Email:     "bob@example.com",
		Token:     bobToken,
		Lat:       40, Lng: -75,
	})
	if !errors.Is(submitErr, usecaseErrors.ErrInvitationExpired) {
		t.Errorf("revoked token submit err = %v, want ErrInvitationExpired", submitErr)
	}
}

func TestExpireInvitationUnknownTarget(t *testing.T) {
	f := newFixture()
	out := f.createMeeting(t)
	ownerToken := f.tokenFor(t, out.Meeting.ID, "owner@example.com")

	err := f.svc.ExpireInvitation(context.Background(), ExpireInvitationInput{
		MeetingID:   out.Meeting.ID,
		Email:       "owner@example.com",
		Token:       ownerToken,
		TargetEmail: "stranger@example.com",
	})
	if !errors.Is(err, usecaseErrors.ErrInvitationNotFound) {
		t.Errorf("err = %v, want ErrInvitationNotFound", err)
	}
}
