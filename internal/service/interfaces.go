package service

import (
	"context"

	"github.com/Grihladin/42Connect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService drives the login flow: anonymous → awaiting callback →
// authenticated → anonymous again on logout.
type AuthService interface {
	// BeginLogin builds the intra authorization URL and a signed
	// anti-CSRF state token for the state cookie.
	BeginLogin(ctx context.Context) (models.LoginRedirect, error)

	// HandleCallback verifies the state round trip, exchanges the code,
	// refreshes the student's mirror, and issues the session token.
	HandleCallback(ctx context.Context, code, state, stateCookie string) (models.CallbackResult, error)

	// Logout revokes the session's upstream refresh token best-effort.
	// It never fails: a rejected revocation is logged and swallowed so
	// the local session always ends.
	Logout(ctx context.Context, sessionCookie string)

	// CurrentSession decodes the session cookie. Absent, expired, or
	// tampered cookies all yield [ErrNotAuthenticated].
	CurrentSession(ctx context.Context, sessionCookie string) (models.SessionTicket, error)
}

// MirrorService reads the stored mirror of an authenticated student.
type MirrorService interface {
	// StudentProjects lists the student's mirrored projects together
	// with their advisory classification flags.
	StudentProjects(ctx context.Context, remoteID int64) ([]models.ProjectView, error)

	// StudentCursus lists the student's mirrored cursus enrollments.
	StudentCursus(ctx context.Context, remoteID int64) ([]models.CursusEnrollment, error)
}

// Syncer refreshes one student's mirror from the live intra state.
type Syncer interface {
	SyncStudent(ctx context.Context, accessToken string, profile models.RemoteProfile) (models.Student, error)
}
