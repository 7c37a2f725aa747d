package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Grihladin/42Connect/internal/config"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/mock"
	"github.com/Grihladin/42Connect/internal/service"
	"github.com/Grihladin/42Connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		FrontendURL:       "https://app.example.test",
		SessionCookieName: config.DefaultSessionCookieName,
		StateCookieName:   config.DefaultStateCookieName,
		SessionMaxAge:     config.DefaultSessionMaxAge,
	}
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockMirrorService) {
	t.Helper()
	auth := mock.NewMockAuthService(ctrl)
	mirror := mock.NewMockMirrorService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:   auth,
		MirrorService: mirror,
	}, testAppConfig(), logger.Nop())

	return h, auth, mirror
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ── /auth/login ──────────────────────────────────────────────────────────────

func TestLogin_RedirectsWithStateCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().BeginLogin(gomock.Any()).Return(models.LoginRedirect{
		AuthURL:    "https://api.intra.42.fr/oauth/authorize?state=nonce",
		StateToken: "signed-state",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://api.intra.42.fr/oauth/authorize?state=nonce", resp.Header.Get("Location"))

	cookie := findCookie(t, resp, config.DefaultStateCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-state", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 600, cookie.MaxAge)
}

// ── /auth/callback ───────────────────────────────────────────────────────────

func TestCallback_SetsSessionAndClearsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().HandleCallback(gomock.Any(), "auth-code", "nonce", "signed-state").
		Return(models.CallbackResult{
			SessionToken: "signed-session",
			Student:      models.Student{ID: 7, RemoteID: 42, Login: "jdoe"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=auth-code&state=nonce", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultStateCookieName, Value: "signed-state"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://app.example.test", resp.Header.Get("Location"))

	sessionCookie := findCookie(t, resp, config.DefaultSessionCookieName)
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "signed-session", sessionCookie.Value)
	assert.Equal(t, int(config.DefaultSessionMaxAge/time.Second), sessionCookie.MaxAge)

	stateCookie := findCookie(t, resp, config.DefaultStateCookieName)
	require.NotNil(t, stateCookie)
	assert.Empty(t, stateCookie.Value)
	assert.Negative(t, stateCookie.MaxAge)
}

func TestCallback_StateMismatchIsBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().HandleCallback(gomock.Any(), "code", "evil", "signed-state").
		Return(models.CallbackResult{}, service.ErrStateMismatch)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=code&state=evil", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultStateCookieName, Value: "signed-state"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, findCookie(t, resp, config.DefaultSessionCookieName))
}

func TestCallback_MissingParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().HandleCallback(gomock.Any(), "", "", "").
		Return(models.CallbackResult{}, service.ErrMissingOAuthParams)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── /auth/logout ─────────────────────────────────────────────────────────────

func TestLogout_ClearsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().Logout(gomock.Any(), "signed-session")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultSessionCookieName, Value: "signed-session"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://app.example.test", resp.Header.Get("Location"))

	cookie := findCookie(t, resp, config.DefaultSessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// ── /auth/session ────────────────────────────────────────────────────────────

func TestSession_ReturnsTicketPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().CurrentSession(gomock.Any(), "signed-session").Return(models.SessionTicket{
		User:      models.SessionUser{RemoteID: 42, Login: "jdoe", DisplayName: "John Doe"},
		ExpiresAt: 1756200000,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultSessionCookieName, Value: "signed-session"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"user": {"id": 42, "login": "jdoe", "displayName": "John Doe", "imageUrl": null},
		"expiresAt": 1756200000
	}`, rec.Body.String())
}

func TestSession_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().CurrentSession(gomock.Any(), "").
		Return(models.SessionTicket{}, service.ErrNotAuthenticated)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ── /healthz ─────────────────────────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
