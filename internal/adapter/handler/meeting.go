package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/middlegroundapp/middleground/errors"
	"github.com/middlegroundapp/middleground/internal/adapter/dto/meeting"
	"github.com/middlegroundapp/middleground/internal/adapter/presenter"
	meetingUsecase "github.com/middlegroundapp/middleground/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /api/meetings
// @Summary      Create a meeting
// @Description  Creates a meeting in the collecting state and emails tokenized invite links
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      200      {object}  meeting.CreateMeetingResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Router       /api/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := meetingUsecase.CreateMeetingInput{
		Title:         req.Title,
		OwnerEmail:    req.OwnerEmail,
		OwnerName:     req.OwnerName,
		VenueType:     req.VenueType,
		RadiusMeters:  req.RadiusMeters,
		InviteeEmails: req.Invitees,
	}

	output, err := h.meetingService.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	h.logger.Info("meeting.created",
		zap.String("meeting_id", output.Meeting.ID.String()),
		zap.Int("invites", len(output.Invites)),
	)

	return c.JSON(http.StatusOK, presenter.ToCreateMeetingResponse(output))
}

// GetStatus handles GET /api/meetings/:id
// @Summary      Get meeting status
// @Description  Gets the meeting, its participants, locations, and the midpoint once two locations exist
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.StatusResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetStatus(c echo.Context) error {
	meetingID, err := h.meetingID(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	output, err := h.meetingService.GetStatus(c.Request().Context(), meetingID)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToStatusResponse(output))
}

// SubmitLocation handles POST /api/meetings/:id/location
// @Summary      Submit a participant location
// @Description  Records the caller's coordinates after validating the invitation token; resubmission overwrites
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.SubmitLocationRequest  true  "Location submission"
// @Success      200      {object}  meeting.OKResponse
// @Failure      403      {object}  map[string]interface{}  "Invalid or expired invitation token"
// @Failure      409      {object}  map[string]interface{}  "Meeting already finalized"
// @Router       /api/meetings/{id}/location [post]
func (h *Meeting) SubmitLocation(c echo.Context) error {
	meetingID, err := h.meetingID(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req meeting.SubmitLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := meetingUsecase.SubmitLocationInput{
		MeetingID: meetingID,
		Email:     req.Email,
		Token:     req.Token,
		Lat:       req.Lat,
		Lng:       req.Lng,
	}
	if err := h.meetingService.SubmitLocation(c.Request().Context(), input); err != nil {
		return handleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meeting.OKResponse{OK: true})
}

// GetSuggestions handles GET /api/meetings/:id/suggestions
// @Summary      Get venue suggestions
// @Description  Computes the midpoint and queries the places search; reports not-ready until two locations exist
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.SuggestionsResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /api/meetings/{id}/suggestions [get]
func (h *Meeting) GetSuggestions(c echo.Context) error {
	meetingID, err := h.meetingID(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	output, err := h.meetingService.GetSuggestions(c.Request().Context(), meetingID)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToSuggestionsResponse(output))
}

// Finalize handles POST /api/meetings/:id/finalize
// @Summary      Finalize a venue
// @Description  Locks in the chosen venue (owner only, exactly once) and notifies all participants
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.FinalizeRequest  true  "Finalize request"
// @Success      200      {object}  meeting.FinalizeResponse
// @Failure      403      {object}  map[string]interface{}  "Caller is not the owner"
// @Failure      409      {object}  map[string]interface{}  "Meeting already finalized"
// @Router       /api/meetings/{id}/finalize [post]
func (h *Meeting) Finalize(c echo.Context) error {
	meetingID, err := h.meetingID(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req meeting.FinalizeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := meetingUsecase.FinalizeInput{
		MeetingID: meetingID,
		Email:     req.Email,
		Token:     req.Token,
		Place:     req.Place,
	}
	m, err := h.meetingService.Finalize(c.Request().Context(), input)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	h.logger.Info("meeting.finalized",
		zap.String("meeting_id", m.ID.String()),
		zap.String("venue", req.Place.Name),
	)

	return c.JSON(http.StatusOK, meeting.FinalizeResponse{
		OK:      true,
		Meeting: presenter.ToMeetingResponse(m),
	})
}

// ExpireInvitation handles POST /api/meetings/:id/invitations/expire
// @Summary      Revoke an invitation
// @Description  Marks an invitee's invitation as expired, invalidating its token (owner only)
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.ExpireInvitationRequest  true  "Revocation request"
// @Success      200      {object}  meeting.OKResponse
// @Failure      403      {object}  map[string]interface{}  "Caller is not the owner"
// @Router       /api/meetings/{id}/invitations/expire [post]
func (h *Meeting) ExpireInvitation(c echo.Context) error {
	meetingID, err := h.meetingID(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req meeting.ExpireInvitationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(h.logger, c, err)
	}

	input := meetingUsecase.ExpireInvitationInput{
		MeetingID:   meetingID,
		Email:       req.Email,
		Token:       req.Token,
		TargetEmail: req.TargetEmail,
	}
	if err := h.meetingService.ExpireInvitation(c.Request().Context(), input); err != nil {
		return handleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meeting.OKResponse{OK: true})
}

func (h *Meeting) meetingID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidArgument("meeting ID must be a valid UUID")
	}
	return id, nil
}
