// Package auth реализует вход пользователя по стратегии "credentials".
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/invoice-dashboard/internal/apperr"
	"github.com/mmeshcher/invoice-dashboard/internal/model"
	"github.com/mmeshcher/invoice-dashboard/internal/repository"
)

// StrategyCredentials — единственная поддерживаемая стратегия входа.
const StrategyCredentials = "credentials"

// ErrInvalidCredentials — категория отказа "неверные учётные данные".
// Неизвестный email и неверный пароль намеренно неразличимы.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnsupportedStrategy возвращается при запросе неизвестной стратегии входа.
var ErrUnsupportedStrategy = errors.New("unsupported sign-in strategy")

// Credentials содержит данные формы входа.
type Credentials struct {
	Email    string
	Password string
}

// UserStore описывает доступ к пользователям, необходимый провайдеру.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// Provider описывает поставщика аутентификации.
// Категоризированные отказы несут категорию KindAuth; ошибки
// инфраструктуры возвращаются без преобразования.
type Provider interface {
	SignIn(ctx context.Context, strategy string, creds Credentials) (*model.User, error)
}

// CredentialsProvider выполняет вход по email и паролю, сверяя bcrypt-хэш
// с хранимым в таблице пользователей.
type CredentialsProvider struct {
	store UserStore
}

// NewCredentialsProvider создаёт провайдера входа по учётным данным.
func NewCredentialsProvider(store UserStore) *CredentialsProvider {
	return &CredentialsProvider{store: store}
}

// SignIn проверяет учётные данные и возвращает пользователя.
func (p *CredentialsProvider) SignIn(ctx context.Context, strategy string, creds Credentials) (*model.User, error) {
	if strategy != StrategyCredentials {
		return nil, apperr.Auth(ErrUnsupportedStrategy)
	}

	if creds.Email == "" || creds.Password == "" {
		return nil, apperr.Auth(ErrInvalidCredentials)
	}

	u, err := p.store.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Auth(ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(creds.Password)); err != nil {
		return nil, apperr.Auth(ErrInvalidCredentials)
	}

	return u, nil
}
