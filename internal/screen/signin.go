package screen

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/session"
)

// SignIn is the auth screen, covering both the login and the register tab.
type SignIn struct {
	auth     service.IAuthService
	sessions *session.Manager
	logger   *zap.Logger
	out      io.Writer
}

// NewSignIn creates the auth screen controller.
func NewSignIn(auth service.IAuthService, sessions *session.Manager, logger *zap.Logger, out io.Writer) *SignIn {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignIn{auth: auth, sessions: sessions, logger: logger, out: out}
}

// Login signs the user in and persists the session. Returns true when the
// app should move to the main tabs.
func (s *SignIn) Login(ctx context.Context, email, password string) bool {
	sess, err := s.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			alert(s.out, "Error", "Please enter your email and password.")
		} else {
			s.logger.Warn("login failed", zap.Error(err))
			alert(s.out, "Error", "Invalid email or password.")
		}
		return false
	}
	return s.install(sess)
}

// Register creates the account and signs straight in, like the mobile flow.
func (s *SignIn) Register(ctx context.Context, input service.RegisterInput) bool {
	sess, err := s.auth.Register(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			alert(s.out, "Error", "Please fill in all fields. Password must be at least 6 characters.")
		} else {
			s.logger.Warn("registration failed", zap.Error(err))
			alert(s.out, "Error", "Could not create your account.")
		}
		return false
	}
	return s.install(sess)
}

func (s *SignIn) install(sess *service.Session) bool {
	if err := s.sessions.SignIn(sess.Token, sess.User); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	alert(s.out, "Success", "Welcome, "+sess.User.Name+"!")
	return true
}
