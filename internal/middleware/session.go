// Package middleware содержит HTTP middleware панели счетов: сессию по
// подписанному cookie, шлюз доступа и логирование запросов.
package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	sessionCookieName = "session_token"
	sessionCookieTTL  = 30 * 24 * time.Hour
)

// SessionManager проверяет аутентификацию пользователя по подписанному cookie.
type SessionManager struct {
	secretKey []byte
}

// NewSessionManager создаёт SessionManager с указанным секретным ключом.
// При пустом ключе генерируется случайный: такие сессии не переживут рестарт.
func NewSessionManager(secret string) *SessionManager {
	key := []byte(secret)
	if len(key) == 0 {
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err == nil {
			key = randomKey
		} else {
			key = []byte("default-secret-key")
		}
	}

	return &SessionManager{secretKey: key}
}

// SetSessionCookie устанавливает cookie сессии для указанного пользователя.
func (m *SessionManager) SetSessionCookie(w http.ResponseWriter, userID uuid.UUID) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    m.sign(userID.String()),
		Path:     "/",
		Expires:  time.Now().Add(sessionCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, cookie)
}

// Authenticated сообщает, несёт ли запрос действительный cookie сессии,
// и возвращает идентификатор пользователя.
func (m *SessionManager) Authenticated(r *http.Request) (uuid.UUID, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return uuid.Nil, false
	}
	return m.parse(cookie.Value)
}

func (m *SessionManager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secretKey)
	mac.Write([]byte(id))
	return id + "." + hex.EncodeToString(mac.Sum(nil))
}

func (m *SessionManager) parse(value string) (uuid.UUID, bool) {
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return uuid.Nil, false
	}

	mac := hmac.New(sha256.New, m.secretKey)
	mac.Write([]byte(parts[0]))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetUserIDFromContext извлекает идентификатор пользователя из контекста запроса.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
