package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSession_ValidCookieRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret")
	userID := uuid.New()

	w := httptest.NewRecorder()
	m.SetSessionCookie(w, userID)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("no cookies set")
	}

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(cookies[0])

	got, ok := m.Authenticated(r)
	if !ok {
		t.Fatalf("valid cookie rejected")
	}
	if got != userID {
		t.Fatalf("user id = %s, want %s", got, userID)
	}
}

func TestSession_WithoutCookie(t *testing.T) {
	m := NewSessionManager("test-secret")

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if _, ok := m.Authenticated(r); ok {
		t.Fatalf("request without cookie must not be authenticated")
	}
}

func TestSession_TamperedCookie(t *testing.T) {
	m := NewSessionManager("test-secret")

	w := httptest.NewRecorder()
	m.SetSessionCookie(w, uuid.New())
	cookie := w.Result().Cookies()[0]

	cookie.Value = uuid.New().String() + "." + "deadbeef"

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(cookie)

	if _, ok := m.Authenticated(r); ok {
		t.Fatalf("tampered cookie must be rejected")
	}
}

func TestSession_DifferentSecretsRejected(t *testing.T) {
	a := NewSessionManager("secret-a")
	b := NewSessionManager("secret-b")

	w := httptest.NewRecorder()
	a.SetSessionCookie(w, uuid.New())

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(w.Result().Cookies()[0])

	if _, ok := b.Authenticated(r); ok {
		t.Fatalf("cookie signed with another secret must be rejected")
	}
}
