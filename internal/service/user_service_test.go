package service

import (
	"context"
	"testing"

	"watchreview/internal/auth"
	"watchreview/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret-test-secret-test-secret")
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo(), testIssuer())
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"empty username", RegisterInput{Email: "a@b.com", Password: "password1"}},
		{"invalid email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "password1"}},
		{"password too short", RegisterInput{Username: "alice", Email: "a@b.com", Password: "pass1"}},
		{"password without digit", RegisterInput{Username: "alice", Email: "a@b.com", Password: "passwords"}},
		{"password without letter", RegisterInput{Username: "alice", Email: "a@b.com", Password: "12345678"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Register(ctx, tc.input)
			assertValidationError(t, err)
		})
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	var stored *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		stored = u
		return nil
	}

	svc := NewUserService(repo, testIssuer())
	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "password1", stored.Password)
	assert.True(t, auth.CheckPassword("password1", stored.Password))
}

func TestUserService_Register_DuplicatePropagates(t *testing.T) {
	t.Parallel()

	conflict := models.NewConflictError("User already exists", nil)
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, _ *models.User) error { return conflict }

	svc := NewUserService(repo, testIssuer())
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	assert.ErrorIs(t, err, conflict)
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	hashed, err := auth.HashPassword("password1")
	require.NoError(t, err)

	withUser := func() *userRepoStub {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Username: "alice", Email: email, Password: hashed}, nil
		}
		return repo
	}

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), testIssuer())
		_, err := svc.Login(context.Background(), "ghost@example.com", "password1")
		assertValidationError(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(withUser(), testIssuer())
		_, err := svc.Login(context.Background(), "alice@example.com", "wrong-password1")
		assertValidationError(t, err)
		assert.Contains(t, err.Error(), "Invalid password")
	})

	t.Run("success returns verifiable token", func(t *testing.T) {
		t.Parallel()
		issuer := testIssuer()
		svc := NewUserService(withUser(), issuer)
		token, err := svc.Login(context.Background(), "alice@example.com", "password1")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})
}

func TestUserService_Profile(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id string) (*models.User, error) {
		if id != "u1" {
			return nil, models.NewNotFoundError("User not found")
		}
		return &models.User{ID: id, Username: "alice"}, nil
	}

	svc := NewUserService(repo, testIssuer())

	user, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Profile(context.Background(), "missing")
	assertNotFoundError(t, err)
}
