package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uongozi/uongozi/internal/domain"
)

// Landing routes resolved after authentication.
const (
	RouteHome  = "/home"
	RouteAdmin = "/admin"
)

// Register creates an account and signs the new user in. The geography
// triple is checked against the region directory before the backend is
// contacted, so a mistyped ward fails fast with a field-level error.
func (a *App) Register(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	if err := reg.Validate(); err != nil {
		return domain.Session{}, err
	}
	if err := a.regions.Validate(reg.Geography); err != nil {
		return domain.Session{}, fmt.Errorf("unknown region: %w", err)
	}

	session, err := a.auth.Register(ctx, reg)
	if err != nil {
		return domain.Session{}, err
	}

	a.store.SetSession(session)
	a.logger.Info("registered",
		zap.String("user_id", session.User.ID),
		zap.String("ward", session.User.Ward))
	return session, nil
}

// Login authenticates and installs the session.
func (a *App) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	session, err := a.auth.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, err
	}

	a.store.SetSession(session)
	a.logger.Info("signed in",
		zap.String("user_id", session.User.ID),
		zap.String("role", string(session.User.Role)))
	return session, nil
}

// Logout clears authentication state. Cached public data stays.
func (a *App) Logout() {
	a.store.ClearSession()
	a.logger.Info("signed out")
}

// RouteForRole resolves the landing route after authentication. Admins
// land on the admin dashboard, everyone else on home.
func RouteForRole(role domain.Role) string {
	if role == domain.RoleAdmin {
		return RouteAdmin
	}
	return RouteHome
}

// requireSession returns the signed-in profile or ErrNotSignedIn.
func (a *App) requireSession() (domain.UserProfile, error) {
	session := a.store.Session()
	if session == nil {
		return domain.UserProfile{}, domain.ErrNotSignedIn
	}
	return session.User, nil
}

// requireAdmin returns the signed-in admin profile, or the error that
// routes the caller to login or home.
func (a *App) requireAdmin() (domain.UserProfile, error) {
	user, err := a.requireSession()
	if err != nil {
		return domain.UserProfile{}, err
	}
	if !user.IsAdmin() {
		return domain.UserProfile{}, domain.ErrNotAdmin
	}
	return user, nil
}
