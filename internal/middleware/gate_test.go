package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		loggedIn bool
		path     string
		want     Decision
	}{
		{
			name:     "dashboard without session",
			loggedIn: false,
			path:     "/dashboard/anything",
			want:     DecisionRedirectToLogin,
		},
		{
			name:     "dashboard root without session",
			loggedIn: false,
			path:     "/dashboard",
			want:     DecisionRedirectToLogin,
		},
		{
			name:     "dashboard with session",
			loggedIn: true,
			path:     "/dashboard/invoices",
			want:     DecisionAllow,
		},
		{
			name:     "login page with session",
			loggedIn: true,
			path:     "/login",
			want:     DecisionRedirectToDashboard,
		},
		{
			name:     "login page without session",
			loggedIn: false,
			path:     "/login",
			want:     DecisionAllow,
		},
		{
			name:     "root without session",
			loggedIn: false,
			path:     "/",
			want:     DecisionAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.loggedIn, tt.path); got != tt.want {
				t.Fatalf("Decide(%v, %q) = %d, want %d", tt.loggedIn, tt.path, got, tt.want)
			}
		})
	}
}

func TestGate_RedirectsToLoginWithoutSession(t *testing.T) {
	m := NewSessionManager("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not be called")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)

	m.Gate(next).ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusSeeOther)
	}
	if loc := res.Header.Get("Location"); loc != LoginPath {
		t.Fatalf("location = %q, want %q", loc, LoginPath)
	}
}

func TestGate_AllowsDashboardWithSession(t *testing.T) {
	m := NewSessionManager("test-secret")
	userID := uuid.New()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		id, ok := GetUserIDFromContext(r.Context())
		if !ok {
			t.Fatalf("user id not in context")
		}
		if id != userID {
			t.Fatalf("user id from context = %s, want %s", id, userID)
		}
	})

	rec := httptest.NewRecorder()
	m.SetSessionCookie(rec, userID)
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("no cookies set by SetSessionCookie")
	}

	r := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	r.AddCookie(cookies[0])

	m.Gate(next).ServeHTTP(httptest.NewRecorder(), r)

	if !nextCalled {
		t.Fatalf("next handler was not called")
	}
}

func TestGate_SendsLoggedInUserToDashboard(t *testing.T) {
	m := NewSessionManager("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not be called")
	})

	rec := httptest.NewRecorder()
	m.SetSessionCookie(rec, uuid.New())

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.AddCookie(rec.Result().Cookies()[0])

	w := httptest.NewRecorder()
	m.Gate(next).ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusSeeOther)
	}
	if loc := res.Header.Get("Location"); loc != DashboardPrefix {
		t.Fatalf("location = %q, want %q", loc, DashboardPrefix)
	}
}
