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
	ErrEmailTaken           = errors.New("email is already in use by another account")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
)

// ProfileService handles account settings operations
type ProfileService struct {
	userRepo        repositories.UserRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	passwordService PasswordServiceInterface
	logger          *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) ProfileServiceInterface {
	return &ProfileService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		passwordService: passwordService,
		logger:          logger,
	}
}

// GetProfile returns the user's profile with their recorded transaction count
func (s *ProfileService) GetProfile(userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.buildResponse(user)
}

// UpdateProfile applies name and email changes and, when the password triple
// is present, rotates the password after verifying the current one.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Email != user.Email {
		taken, err := s.userRepo.GetByEmailExcluding(req.Email, userID)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken != nil {
			return nil, ErrEmailTaken
		}
	}

	if req.NewPassword != "" {
		if !s.passwordService.ComparePassword(req.CurrentPassword, user.PasswordHash) {
			return nil, ErrCurrentPasswordWrong
		}

		hash, err := s.passwordService.HashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}

		if err := s.userRepo.UpdatePasswordHash(userID, hash); err != nil {
			return nil, fmt.Errorf("failed to update password: %w", err)
		}

		s.logger.Info("password changed", "user_id", userID)
	}

	user.Name = req.Name
	user.Email = req.Email

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", userID)

	return s.buildResponse(user)
}

func (s *ProfileService) buildResponse(user *models.User) (*dto.ProfileResponse, error) {
	total, err := s.transactionRepo.CountByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	return &dto.ProfileResponse{
		ID:                user.ID.String(),
		Name:              user.Name,
		Email:             user.Email,
		TotalTransactions: total,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}, nil
}
