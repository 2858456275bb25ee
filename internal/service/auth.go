package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/adapter"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// Session is what a successful sign-in yields: the bearer token and the
// signed-in user.
type Session struct {
	Token string
	User  types.UserProfile
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// AuthService handles sign-in and sign-up against /api/users.
type AuthService struct {
	client   *apiclient.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(client *apiclient.Client, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{client: client, validate: validator.New(), logger: logger}
}

// Login exchanges credentials for a session. Credentials travel in the
// clear inside TLS; the backend owns hashing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	payload, err := s.client.Post(ctx, "/api/users/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.session(payload)
}

// Register creates an account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	payload, err := s.client.Post(ctx, "/api/users/register", map[string]any{
		"userName": input.Name,
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return s.session(payload)
}

// session pulls the token and user out of an auth response, which may wrap
// either under data.
func (s *AuthService) session(payload any) (*Session, error) {
	envelope, _ := payload.(map[string]any)
	if inner, ok := envelope["data"].(map[string]any); ok {
		envelope = inner
	}

	token := normalize.String(envelope, "", "token", "accessToken", "access_token")
	if token == "" {
		return nil, fmt.Errorf("auth response missing token")
	}

	user := adapter.User(normalize.UnwrapObject(envelope, "user"), s.client.BaseURL())
	s.client.SetToken(token)
	return &Session{Token: token, User: user}, nil
}
