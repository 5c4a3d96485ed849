package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIssuesCookieOnFirstContact(t *testing.T) {
	var seen string
	handler := Session(nil, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessionKeepsExistingCookie(t *testing.T) {
	existing := uuid.NewString()
	var seen string
	handler := Session(nil, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: existing})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, existing, seen)
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	var seen string
	handler := Session(nil, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotEqual(t, "not-a-uuid", seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
}

func TestSessionIDFromContextMissing(t *testing.T) {
	assert.Empty(t, SessionIDFromContext(nil))
}
