// Package service реализует действия панели счетов: создание, изменение и
// удаление счёта, вход пользователя и загрузку фикстур.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/invoice-dashboard/internal/apperr"
	"github.com/mmeshcher/invoice-dashboard/internal/auth"
	"github.com/mmeshcher/invoice-dashboard/internal/model"
	"github.com/mmeshcher/invoice-dashboard/internal/seed"
	"github.com/mmeshcher/invoice-dashboard/internal/validation"
)

// InvoiceListPath — путь списка счетов, куда ведут успешные операции.
const InvoiceListPath = "/dashboard/invoices"

const (
	msgMissingFields      = "Missing fields. Failed to create invoice."
	msgDatabaseError      = "Database error. Failed to create invoice."
	msgInvalidCredentials = "Invalid credentials."
	msgGenericAuthError   = "Something went wrong."
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	InsertInvoice(ctx context.Context, customerID string, amountCents int64, status model.InvoiceStatus, date time.Time) error
	UpdateInvoice(ctx context.Context, id, customerID string, amountCents int64, status model.InvoiceStatus) error
	DeleteInvoice(ctx context.Context, id string) error
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	Seed(ctx context.Context, data seed.Fixtures) error
}

// Revalidator сигнализирует, что закешированное представление пути устарело.
type Revalidator interface {
	Invalidate(path string)
}

// Service содержит логику действий панели счетов.
type Service struct {
	repo        Repository
	provider    auth.Provider
	revalidator Revalidator
}

// NewService создаёт сервис с указанным репозиторием, провайдером
// аутентификации и инвалидатором кеша.
func NewService(repo Repository, provider auth.Provider, revalidator Revalidator) *Service {
	return &Service{
		repo:        repo,
		provider:    provider,
		revalidator: revalidator,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// CreateInvoice проверяет форму по полной схеме и создаёт счёт.
// Возвращает nil при успехе, иначе State с ошибками по полям или общим
// сообщением о сбое БД. Вторая ошибка не пуста только при сбое БД и
// предназначена для логирования вызывающей стороной; при ошибках
// валидации репозиторий не вызывается.
func (s *Service) CreateInvoice(ctx context.Context, form model.InvoiceForm) (*model.State, error) {
	rec, fieldErrs := validation.ValidateInvoiceForm(form)
	if len(fieldErrs) > 0 {
		return &model.State{Errors: fieldErrs, Message: msgMissingFields}, nil
	}

	amountCents := validation.AmountToCents(rec.Amount)
	date := time.Now().UTC().Truncate(24 * time.Hour)

	if err := s.repo.InsertInvoice(ctx, rec.CustomerID, amountCents, rec.Status, date); err != nil {
		return &model.State{Message: msgDatabaseError}, err
	}

	s.revalidator.Invalidate(InvoiceListPath)
	return nil, nil
}

// UpdateInvoice заменяет изменяемые поля счёта после облегчённой проверки
// и всегда возвращает путь для перенаправления: список счетов при успехе,
// страницу редактирования с кодом ошибки иначе. Возвращаемая ошибка несёт
// категорию сбоя; успех — nil.
func (s *Service) UpdateInvoice(ctx context.Context, id string, form model.InvoiceForm) (string, error) {
	amount, parseErr := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)

	invalid := id == "" ||
		strings.TrimSpace(form.CustomerID) == "" ||
		parseErr != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 ||
		form.Status == ""
	if invalid {
		return fmt.Sprintf("/dashboard/invoices/%s/edit?error=invalid", id),
			apperr.Validation(errors.New("invalid invoice form"))
	}

	amountCents := validation.AmountToCents(amount)

	err := s.repo.UpdateInvoice(ctx, id, strings.TrimSpace(form.CustomerID), amountCents, model.InvoiceStatus(form.Status))
	if err != nil {
		return fmt.Sprintf("/dashboard/invoices/%s/edit?error=update-failed", id), err
	}

	s.revalidator.Invalidate(InvoiceListPath)
	return InvoiceListPath, nil
}

// DeleteInvoice удаляет счёт и всегда возвращает путь для перенаправления.
func (s *Service) DeleteInvoice(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return InvoiceListPath + "?error=missing-id",
			apperr.Validation(errors.New("missing invoice id"))
	}

	if err := s.repo.DeleteInvoice(ctx, strings.TrimSpace(id)); err != nil {
		return InvoiceListPath + "?error=delete-failed", err
	}

	s.revalidator.Invalidate(InvoiceListPath)
	return InvoiceListPath, nil
}

// ListInvoices возвращает список счетов.
func (s *Service) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// Authenticate выполняет вход по стратегии "credentials". Категоризированный
// отказ возвращается как сообщение для пользователя; любая другая ошибка
// пробрасывается вызывающей стороне без преобразования.
func (s *Service) Authenticate(ctx context.Context, creds auth.Credentials) (*model.User, string, error) {
	u, err := s.provider.SignIn(ctx, auth.StrategyCredentials, creds)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindAuth {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return nil, msgInvalidCredentials, nil
			}
			return nil, msgGenericAuthError, nil
		}
		return nil, "", err
	}

	return u, "", nil
}

// SeedDatabase загружает фикстурный набор. Пароли пользователей хэшируются
// конкурентно до первой записи в БД; сама загрузка идёт в одной транзакции
// на стороне репозитория.
func (s *Service) SeedDatabase(ctx context.Context) error {
	users := make([]seed.User, len(seed.Users))

	g, gctx := errgroup.WithContext(ctx)
	for i, u := range seed.Users {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Email, err)
			}

			users[i] = seed.User{
				ID:           u.ID,
				Name:         u.Name,
				Email:        u.Email,
				PasswordHash: hashed,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return s.repo.Seed(ctx, seed.Fixtures{
		Users:     users,
		Customers: seed.Customers,
		Invoices:  seed.Invoices,
		Revenue:   seed.Months,
	})
}
