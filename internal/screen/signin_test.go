package screen

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/mocks"
	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/session"
	"github.com/platebook/platebook-client/internal/types"
)

func testSessionManager(t *testing.T) *session.Manager {
	t.Helper()
	store, err := session.OpenStore(":memory:")
	require.NoError(t, err)
	client := apiclient.New("http://example.test", time.Second, nil)
	return session.NewManager(store, client, nil)
}

func TestSignInLogin(t *testing.T) {
	auth := new(mocks.MockAuthService)
	sessions := testSessionManager(t)
	var out bytes.Buffer

	auth.On("Login", mock.Anything, "a@b.com", "secret").Return(&service.Session{
		Token: "tok",
		User:  types.UserProfile{ID: "u1", Name: "Ada", Email: "a@b.com"},
	}, nil)

	screen := NewSignIn(auth, sessions, nil, &out)
	ok := screen.Login(context.Background(), "a@b.com", "secret")

	assert.True(t, ok)
	user, live := sessions.Current()
	assert.True(t, live)
	assert.Equal(t, "Ada", user.Name)
	assert.Contains(t, out.String(), "Welcome, Ada!")
}

func TestSignInLoginValidation(t *testing.T) {
	auth := new(mocks.MockAuthService)
	sessions := testSessionManager(t)
	var out bytes.Buffer

	auth.On("Login", mock.Anything, "", "").Return(nil, service.ErrValidation)

	screen := NewSignIn(auth, sessions, nil, &out)
	ok := screen.Login(context.Background(), "", "")

	assert.False(t, ok)
	assert.Contains(t, out.String(), "Please enter your email and password.")
	_, live := sessions.Current()
	assert.False(t, live)
}

func TestSignInRegister(t *testing.T) {
	auth := new(mocks.MockAuthService)
	sessions := testSessionManager(t)
	var out bytes.Buffer

	input := service.RegisterInput{Name: "Ada", Email: "a@b.com", Password: "secret1"}
	auth.On("Register", mock.Anything, input).Return(&service.Session{
		Token: "tok",
		User:  types.UserProfile{ID: "u1", Name: "Ada", Email: "a@b.com"},
	}, nil)

	screen := NewSignIn(auth, sessions, nil, &out)
	ok := screen.Register(context.Background(), input)

	assert.True(t, ok)
	_, live := sessions.Current()
	assert.True(t, live)
	auth.AssertExpectations(t)
}
