package handlers

import (
	stderrors "errors"
	"net/http"

	"gastai/internal/dto"
	"gastai/internal/errors"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles account settings endpoints
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /api/profile
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		if stderrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, profile, "")
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		case stderrors.Is(err, services.ErrEmailTaken):
			return SendError(c, errors.UserEmailTaken)
		case stderrors.Is(err, services.ErrCurrentPasswordWrong):
			return SendError(c, errors.UserWrongPassword)
		case stderrors.Is(err, services.ErrPasswordTooShort),
			stderrors.Is(err, services.ErrPasswordTooLong),
			stderrors.Is(err, services.ErrPasswordEmpty):
			return SendError(c, errors.ValidationGeneral, errors.WithMessage(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, profile, "Profile updated successfully")
}
