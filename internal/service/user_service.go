package service

import (
	"context"

	"watchreview/internal/auth"
	"watchreview/internal/models"
	"watchreview/internal/observability"
	"watchreview/internal/repository"
	"watchreview/internal/validation"
)

// UserService implements registration, login, and profile lookup.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
}

// RegisterInput carries the fields needed to register a user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// NewUserService returns a UserService backed by the given repository and
// token issuer.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenIssuer) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register validates the input, hashes the password, and stores the user.
// Duplicate usernames or emails surface as a storage conflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	observability.UsersRegistered.Inc()
	return user, nil
}

// Login verifies the credentials and returns a signed token. "User not
// found" and "Invalid password" are deliberately distinct messages behind
// the same status, matching the platform's established behavior.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		observability.LoginAttempts.WithLabelValues("user_not_found").Inc()
		return "", models.NewValidationError("User not found")
	}

	if !auth.CheckPassword(password, user.Password) {
		observability.LoginAttempts.WithLabelValues("invalid_password").Inc()
		return "", models.NewValidationError("Invalid password")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	observability.LoginAttempts.WithLabelValues("success").Inc()
	return token, nil
}

// Profile returns the stored record for the authenticated caller.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
