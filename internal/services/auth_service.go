package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gastai/internal/dto"
	"gastai/internal/models"
	"gastai/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		metrics:              metrics,
		logger:               logger,
	}
}

// Register creates a new user account and issues an access token
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, *dto.TokenResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		s.metrics.RecordAuthEvent("register", "email_taken")
		return nil, nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.RecordAuthEvent("register", "success")
	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	return user, token, nil
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.RecordAuthEvent("login", "user_not_found")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.metrics.RecordAuthEvent("login", "invalid_password")
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.RecordAuthEvent("login", "success")
	s.logger.Info("user logged in", "user_id", user.ID)

	return user, token, nil
}

// Logout blacklists the presented token so it cannot be replayed before its
// natural expiry.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.tokenService.ValidateAccessToken(tokenString)
	if err != nil {
		return err
	}

	jti, err := s.tokenService.GetJTI(tokenString)
	if err != nil {
		return err
	}

	expiresAt, err := s.tokenService.GetTokenExpiry(tokenString)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	blacklisted := &models.BlacklistedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}

	if err := s.blacklistedTokenRepo.Create(blacklisted); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	s.metrics.RecordAuthEvent("logout", "success")
	s.logger.Info("user logged out", "user_id", userID)

	return nil
}

// GetUserByID returns the user for an authenticated request
func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	tokenString, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
