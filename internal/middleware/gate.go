package middleware

import (
	"context"
	"net/http"
	"strings"
)

// Decision — решение шлюза доступа по одному запросу.
type Decision int

const (
	// DecisionAllow пропускает запрос без изменений.
	DecisionAllow Decision = iota
	// DecisionRedirectToLogin отклоняет запрос и отправляет на страницу входа.
	DecisionRedirectToLogin
	// DecisionRedirectToDashboard отправляет уже вошедшего пользователя на панель.
	DecisionRedirectToDashboard
)

const (
	// LoginPath — путь страницы входа.
	LoginPath = "/login"
	// DashboardPrefix — префикс путей, требующих аутентификации.
	DashboardPrefix = "/dashboard"
)

// Decide — чистый предикат шлюза доступа. Пути под префиксом панели требуют
// аутентификации; вошедший пользователь вне панели перенаправляется на панель;
// остальные комбинации пропускаются.
func Decide(loggedIn bool, path string) Decision {
	if strings.HasPrefix(path, DashboardPrefix) {
		if loggedIn {
			return DecisionAllow
		}
		return DecisionRedirectToLogin
	}

	if loggedIn {
		return DecisionRedirectToDashboard
	}

	return DecisionAllow
}

// Gate применяет решение шлюза доступа к каждому запросу и кладёт
// идентификатор пользователя в контекст при пропуске вошедшего пользователя.
func (m *SessionManager) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, loggedIn := m.Authenticated(r)

		switch Decide(loggedIn, r.URL.Path) {
		case DecisionRedirectToLogin:
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		case DecisionRedirectToDashboard:
			http.Redirect(w, r, DashboardPrefix, http.StatusSeeOther)
			return
		}

		if loggedIn {
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
