package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/types"
)

// Manager owns the authentication state slice. It is the only writer; every
// other part of the app reads through Current. Driven from the UI
// goroutine, like the rest of the client.
type Manager struct {
	store  *Store
	client *apiclient.Client
	logger *zap.Logger

	token string
	user  types.UserProfile
	live  bool
}

// NewManager creates a session manager backed by store.
func NewManager(store *Store, client *apiclient.Client, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, client: client, logger: logger}
}

// SignIn installs a fresh session and persists it.
func (m *Manager) SignIn(token string, user types.UserProfile) error {
	m.token = token
	m.user = user
	m.live = true
	m.client.SetToken(token)
	return m.store.Save(token, user)
}

// Restore loads the persisted session from the last launch. An expired
// token clears the stored session; a token without readable claims is kept
// as an opaque credential, since the client never verifies signatures.
func (m *Manager) Restore() (bool, error) {
	token, user, ok, err := m.store.Load()
	if err != nil || !ok {
		return false, err
	}

	if expired(token) {
		m.logger.Info("stored session expired, signing out")
		return false, m.store.Clear()
	}

	m.token = token
	m.user = user
	m.live = true
	m.client.SetToken(token)
	return true, nil
}

// SignOut drops the live session and the persisted copy.
func (m *Manager) SignOut() error {
	m.token = ""
	m.user = types.UserProfile{}
	m.live = false
	m.client.SetToken("")
	return m.store.Clear()
}

// Current returns a copy of the signed-in user. Mutating the copy does not
// touch the session; use UpdateUser for that.
func (m *Manager) Current() (types.UserProfile, bool) {
	return m.user, m.live
}

// UpdateUser replaces the cached user (after an avatar upload, say) and
// persists the change.
func (m *Manager) UpdateUser(user types.UserProfile) error {
	if !m.live {
		return nil
	}
	m.user = user
	return m.store.Save(m.token, user)
}

// expired reads the exp claim without verifying the signature. Tokens the
// parser cannot read are treated as non-expiring.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
