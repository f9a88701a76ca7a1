package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchreview/internal/auth"
	"watchreview/internal/config"
	"watchreview/internal/models"
	"watchreview/internal/repository"
	"watchreview/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_test_secret_test_secret"

// MockUserRepository is a mock of the repository.UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockWatchRepository is a mock of the repository.WatchRepository interface.
type MockWatchRepository struct {
	mock.Mock
}

func (m *MockWatchRepository) List(ctx context.Context, filter repository.WatchFilter, limit, offset int) ([]models.Watch, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Watch), args.Error(1)
}

func (m *MockWatchRepository) GetByID(ctx context.Context, id string) (*models.Watch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Watch), args.Error(1)
}

func (m *MockWatchRepository) AverageScore(ctx context.Context, watchID string) (float64, error) {
	args := m.Called(ctx, watchID)
	return args.Get(0).(float64), args.Error(1)
}

// MockReviewRepository is a mock of the repository.ReviewRepository interface.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByIDForWatch(ctx context.Context, id, watchID string) (*models.Review, error) {
	args := m.Called(ctx, id, watchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByWatch(ctx context.Context, watchID string) ([]models.Review, error) {
	args := m.Called(ctx, watchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock of the repository.CommentRepository interface.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type serverMocks struct {
	users    *MockUserRepository
	watches  *MockWatchRepository
	reviews  *MockReviewRepository
	comments *MockCommentRepository
}

// newTestServer wires a Server around mock repositories and registers the
// full route table on a fresh Fiber app.
func newTestServer(t *testing.T) (*fiber.App, *serverMocks) {
	t.Helper()

	mocks := &serverMocks{
		users:    new(MockUserRepository),
		watches:  new(MockWatchRepository),
		reviews:  new(MockReviewRepository),
		comments: new(MockCommentRepository),
	}
	tokens := auth.NewTokenIssuer(testSecret)

	s := &Server{
		config:         &config.Config{JWTSecret: testSecret, AllowedOrigins: "http://localhost:5173"},
		tokens:         tokens,
		userRepo:       mocks.users,
		watchRepo:      mocks.watches,
		reviewRepo:     mocks.reviews,
		commentRepo:    mocks.comments,
		userService:    service.NewUserService(mocks.users, tokens),
		reviewService:  service.NewReviewService(mocks.reviews),
		commentService: service.NewCommentService(mocks.comments, mocks.reviews),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app, mocks
}

// bearerToken issues a valid token for the given identity.
func bearerToken(t *testing.T, userID, username string) string {
	t.Helper()
	token, err := auth.NewTokenIssuer(testSecret).Issue(userID, username)
	require.NoError(t, err)
	return "Bearer " + token
}

// doRequest performs a request against the app, JSON-encoding body when set
// and attaching the Authorization header when token is non-empty.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
