// internal/domain/user/service.go
package user

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/errs"
)

// Service handles account registration and login against the remote
// users collection
type Service struct {
	client          *remote.Client
	passwordManager *auth.PasswordManager
	log             *logrus.Logger
}

// NewService creates a new user service
func NewService(client *remote.Client, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		client:          client,
		passwordManager: auth.NewPasswordManager(cfg),
		log:             log,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The password is hashed on the device
// and only the hash is submitted.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", errs.ErrValidation)
	}

	// Validate password confirmation before anything touches the network
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match: %w", errs.ErrValidation)
	}

	// Check if user already exists
	existing, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with this email already exists: %w", errs.ErrValidation)
	}

	// Hash password
	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	newUser := User{
		Email:    email,
		Password: hashedPassword,
	}

	var created User
	if err := s.client.Post(ctx, "/users", &newUser, &created); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.log.WithField("user_id", created.ID).Info("Account created")
	return &created, nil
}

// Login looks the account up by email and verifies the password against
// the stored hash. A missing account and a wrong password produce the
// same failure so the two cases cannot be told apart.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*User, error) {
	email := NormalizeEmail(req.Email)

	found, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("invalid email or password: %w", errs.ErrNotFound)
	}

	if err := s.passwordManager.VerifyPassword(req.Password, found.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", errs.ErrNotFound)
	}

	s.log.WithField("user_id", found.ID).Info("Login succeeded")
	return found, nil
}

// findByEmail lists the users collection filtered by email and returns
// the first exact match, or nil when the account does not exist
func (s *Service) findByEmail(ctx context.Context, email string) (*User, error) {
	query := url.Values{}
	query.Set("email", email)

	var users []User
	if err := s.client.Get(ctx, "/users", query, &users); err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	for i := range users {
		if NormalizeEmail(users[i].Email) == email {
			return &users[i], nil
		}
	}
	return nil, nil
}
