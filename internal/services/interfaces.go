package services

import (
	"context"
	"time"

	"gastai/internal/dto"
	"gastai/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, *dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
	Logout(tokenString string) error
	GetUserByID(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines the contract for JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	ValidatePassword(password string) error
}

// TransactionServiceInterface defines the contract for ledger operations.
// Every operation is scoped to the owning user; a transaction belonging to
// someone else behaves exactly like one that does not exist.
type TransactionServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(userID, transactionID uuid.UUID) (*models.Transaction, error)
	List(userID uuid.UUID) ([]models.Transaction, error)
	Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(userID, transactionID uuid.UUID) error
}

// CategoryServiceInterface defines the contract for category catalog operations
type CategoryServiceInterface interface {
	Create(req *dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(id uuid.UUID) (*models.Category, error)
	List(categoryType string) ([]models.Category, error)
	Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// StatsServiceInterface defines the contract for the aggregation engine
type StatsServiceInterface interface {
	GetDashboardStats(userID uuid.UUID, now time.Time) (*models.DashboardStats, error)
	GetStatistics(userID uuid.UUID, now time.Time) (*models.Statistics, error)
}

// ProfileServiceInterface defines the contract for profile operations
type ProfileServiceInterface interface {
	GetProfile(userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

// RecommendationServiceInterface defines the contract for AI-backed saving
// suggestions. Implementations degrade to an empty slice on upstream failure
// rather than surfacing an error.
type RecommendationServiceInterface interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]models.Recommendation, error)
}

// RecommendationGeneratorInterface abstracts the chat-completions backend so
// the service can be tested without a network.
type RecommendationGeneratorInterface interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MetricsRecorderInterface defines the contract for recording operational metrics
type MetricsRecorderInterface interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
	RecordTransactionMutation(operation, status string)
	RecordRecommendationRequest(status string, duration time.Duration)
	RecordAuthEvent(event, status string)
	RecordError(code string)
}
