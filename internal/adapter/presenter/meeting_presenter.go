package presenter

import (
	"encoding/json"

	"github.com/middlegroundapp/middleground/internal/adapter/dto/meeting"
	"github.com/middlegroundapp/middleground/internal/domain/entities"
	meetingUsecase "github.com/middlegroundapp/middleground/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		OwnerEmail:   m.OwnerEmail,
		VenueType:    m.VenueType,
		RadiusMeters: m.RadiusMeters,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if len(m.FinalizedPlace) > 0 {
		var place entities.Venue
		if err := json.Unmarshal(m.FinalizedPlace, &place); err == nil {
			response.FinalizedPlace = &place
		}
	}

	return response
}

// ToCreateMeetingResponse converts the create-meeting usecase output
func ToCreateMeetingResponse(out *meetingUsecase.CreateMeetingOutput) *meeting.CreateMeetingResponse {
	invites := make([]meeting.InviteResponse, len(out.Invites))
	for i, inv := range out.Invites {
		invites[i] = meeting.InviteResponse{
			Email: inv.Email,
			Role:  string(inv.Role),
		}
	}

	return &meeting.CreateMeetingResponse{
		Meeting:   ToMeetingResponse(out.Meeting),
		Invites:   invites,
		OwnerLink: out.OwnerLink,
	}
}

// ToStatusResponse converts the status usecase output
func ToStatusResponse(out *meetingUsecase.StatusOutput) *meeting.StatusResponse {
	participants := make([]meeting.ParticipantResponse, len(out.Participants))
	for i, p := range out.Participants {
		participants[i] = meeting.ParticipantResponse{
			Email:     p.Email,
			Role:      string(p.Role),
			Status:    string(p.Status),
			Responded: p.Responded,
		}
	}

	locations := make([]meeting.LocationResponse, len(out.Locations))
	for i, loc := range out.Locations {
		locations[i] = meeting.LocationResponse{
			Email:      loc.Email,
			Lat:        loc.Lat,
			Lng:        loc.Lng,
			ProvidedAt: loc.ProvidedAt,
		}
	}

	return &meeting.StatusResponse{
		Meeting:      ToMeetingResponse(out.Meeting),
		Participants: participants,
		Locations:    locations,
		Midpoint:     out.Midpoint,
	}
}

// ToSuggestionsResponse converts the suggestions usecase output
func ToSuggestionsResponse(out *meetingUsecase.SuggestionsOutput) *meeting.SuggestionsResponse {
	return &meeting.SuggestionsResponse{
		Ready:    out.Ready,
		Reason:   out.Reason,
		Midpoint: out.Midpoint,
		Venues:   out.Venues,
	}
}
