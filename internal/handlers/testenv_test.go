package handlers

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"gastai/internal/config"
	"gastai/internal/database"
	"gastai/internal/models"
	"gastai/internal/repositories"
	"gastai/internal/services"

	"github.com/labstack/echo/v4"
)

// testEnv wires real services over the in-memory database so handler tests
// exercise the same paths as production, minus the network.
type testEnv struct {
	db                 *database.DB
	echo               *echo.Echo
	tokenService       services.TokenServiceInterface
	authService        services.AuthServiceInterface
	transactionService services.TransactionServiceInterface
	categoryService    services.CategoryServiceInterface
	statsService       services.StatsServiceInterface
	profileService     services.ProfileServiceInterface
	transactionRepo    repositories.TransactionRepositoryInterface
	blacklistRepo      repositories.BlacklistedTokenRepositoryInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}

	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: 15 * time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           &privateKey.PublicKey,
		Issuer:              "gastai-test",
	})

	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)

	passwordService := services.NewPasswordService(4, 8)
	metrics := services.NewNoopMetrics()
	logger := slog.Default()

	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		db:                 db,
		echo:               e,
		tokenService:       tokenService,
		authService:        services.NewAuthService(userRepo, blacklistRepo, passwordService, tokenService, metrics, logger),
		transactionService: services.NewTransactionService(transactionRepo, categoryRepo, metrics, logger),
		categoryService:    services.NewCategoryService(categoryRepo, logger),
		statsService:       services.NewStatsService(transactionRepo, logger),
		profileService:     services.NewProfileService(userRepo, transactionRepo, passwordService, logger),
		transactionRepo:    transactionRepo,
		blacklistRepo:      blacklistRepo,
	}
}

// newJSONContext builds an Echo context for a JSON request and returns it with
// the response recorder.
func (env *testEnv) newJSONContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return env.echo.NewContext(req, rec), rec
}

// asUser stamps the context the way the auth middleware would
func asUser(c echo.Context, user *models.User) {
	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) SuccessResponse {
	t.Helper()

	var response SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return response
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return date
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var response ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode error response %q: %v", rec.Body.String(), err)
	}
	return response
}
