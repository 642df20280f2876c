package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uongozi/uongozi/internal/domain"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validRegistration() domain.Registration {
	return domain.Registration{
		FirstName: "Wanjiru",
		LastName:  "Kamau",
		Email:     "wanjiru@example.com",
		Password:  "secret",
		Geography: domain.Geography{
			County:       "Nakuru",
			Constituency: "Naivasha",
			Ward:         "Hells Gate",
		},
	}
}

func TestApp_Register(t *testing.T) {
	f := newTestFixture(testNow)
	f.auth.session = domain.Session{
		User:  domain.UserProfile{ID: "u1", Role: domain.RoleCitizen},
		Token: "new-token",
	}

	session, err := f.app.Register(context.Background(), validRegistration())

	require.NoError(t, err, "registration should succeed")
	assert.Equal(t, "u1", session.User.ID)
	require.NotNil(t, f.store.Session(), "session should be installed")
	assert.Equal(t, "new-token", f.store.Token())
}

func TestApp_Register_RejectsIncompleteForm(t *testing.T) {
	f := newTestFixture(testNow)

	reg := validRegistration()
	reg.Ward = ""
	_, err := f.app.Register(context.Background(), reg)

	require.Error(t, err, "incomplete geography should fail")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr, "should be a validation error")
	assert.Nil(t, f.store.Session(), "no session should be installed")
}

func TestApp_Register_RejectsUnknownRegion(t *testing.T) {
	f := newTestFixture(testNow)
	f.regions.err = errors.New("ward not found")

	_, err := f.app.Register(context.Background(), validRegistration())

	require.Error(t, err, "unknown region should fail")
	assert.Contains(t, err.Error(), "unknown region")
	assert.Nil(t, f.store.Session(), "no session should be installed")
}

func TestApp_Login(t *testing.T) {
	f := newTestFixture(testNow)
	f.auth.session = domain.Session{
		User:  domain.UserProfile{ID: "u1", Role: domain.RoleAdmin},
		Token: "admin-token",
	}

	session, err := f.app.Login(context.Background(), domain.Credentials{
		Email:    "admin@example.com",
		Password: "secret",
	})

	require.NoError(t, err, "login should succeed")
	assert.True(t, session.User.IsAdmin())
	assert.Equal(t, "admin-token", f.store.Token())
}

func TestApp_Login_FailureLeavesStoreUntouched(t *testing.T) {
	f := newTestFixture(testNow)
	f.auth.err = errors.New("invalid credentials")

	_, err := f.app.Login(context.Background(), domain.Credentials{
		Email:    "wanjiru@example.com",
		Password: "wrong",
	})

	require.Error(t, err, "login should fail")
	assert.Nil(t, f.store.Session(), "no session should be installed")
}

func TestApp_Logout(t *testing.T) {
	f := newTestFixture(testNow)
	f.signIn(domain.RoleCitizen)

	f.app.Logout()

	assert.Nil(t, f.store.Session(), "logout should clear the session")
}

func TestRouteForRole(t *testing.T) {
	assert.Equal(t, RouteAdmin, RouteForRole(domain.RoleAdmin))
	assert.Equal(t, RouteHome, RouteForRole(domain.RoleCitizen))
	assert.Equal(t, RouteHome, RouteForRole(domain.Role("unknown")))
}
