package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/middlegroundapp/middleground/errors"
	usecaseErrors "github.com/middlegroundapp/middleground/internal/usecase/errors"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error   apperrors.ErrorCode `json:"error"`
	Message string              `json:"message"`
	Info    string              `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// toAppError maps usecase sentinel errors onto the HTTP error taxonomy.
// Anything unrecognized is a server fault.
func toAppError(err error) apperrors.AppError {
	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, usecaseErrors.ErrInvalidCoordinates):
		return apperrors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return apperrors.ErrMeetingNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrInvitationNotFound):
		return apperrors.ErrNotFound("invitation")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidToken):
		return apperrors.ErrInvalidInviteToken()
	case stdErrors.Is(err, usecaseErrors.ErrInvitationExpired):
		return apperrors.ErrInviteExpired()
	case stdErrors.Is(err, usecaseErrors.ErrNotOwner):
		return apperrors.ErrNotOwner()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return apperrors.ErrPermissionDenied("forbidden")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingFinalized):
		return apperrors.ErrMeetingFinalized("")
	default:
		return apperrors.ErrInternal(err)
	}
}

// handleError centralizes error logging and response writing
func handleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	} else {
		// Client faults are expected traffic, not incidents
		logger.Info("http.response.client_error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
		)
	}

	info := ""
	if appErr.Raw != nil && appErr.HTTPCode < http.StatusInternalServerError {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, errorBody{
		Error:   appErr.Code,
		Message: appErr.Message,
		Info:    info,
	})
}

// bindAndValidate binds the request body and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidArgument("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return apperrors.ErrInvalidArgument(err.Error())
	}
	return nil
}
