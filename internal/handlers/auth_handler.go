package handlers

import (
	stderrors "errors"
	"net/http"

	"gastai/internal/dto"
	"gastai/internal/errors"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, tokenService services.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Register handles POST /api/register. Responds 201 with the user and an
// access token on success.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		if stderrors.Is(err, services.ErrUserAlreadyExists) {
			return SendError(c, errors.UserAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.AuthResponse{
		User:  toUserResponse(user),
		Token: *token,
	}, "User registered successfully")
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.AuthResponse{
		User:  toUserResponse(user),
		Token: *token,
	}, "")
}

// Logout handles POST /api/logout by blocklisting the presented token
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenString, err := h.tokenService.ExtractTokenFromHeader(c.Request().Header.Get("Authorization"))
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.authService.Logout(tokenString); err != nil {
		switch {
		case stderrors.Is(err, services.ErrExpiredToken):
			return SendError(c, errors.AuthExpiredToken)
		case stderrors.Is(err, services.ErrInvalidToken),
			stderrors.Is(err, services.ErrInvalidIssuer),
			stderrors.Is(err, services.ErrInvalidTokenType):
			return SendError(c, errors.AuthInvalidTokenFormat)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, nil, "Logged out successfully")
}

// Me handles GET /api/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		if stderrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, toUserResponse(user), "")
}
