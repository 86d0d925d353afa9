// Package handler содержит HTTP-обработчики панели счетов.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/mmeshcher/invoice-dashboard/internal/apperr"
	"github.com/mmeshcher/invoice-dashboard/internal/auth"
	"github.com/mmeshcher/invoice-dashboard/internal/cache"
	"github.com/mmeshcher/invoice-dashboard/internal/middleware"
	"github.com/mmeshcher/invoice-dashboard/internal/model"
	"github.com/mmeshcher/invoice-dashboard/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CreateInvoice(ctx context.Context, form model.InvoiceForm) (*model.State, error)
	UpdateInvoice(ctx context.Context, id string, form model.InvoiceForm) (string, error)
	DeleteInvoice(ctx context.Context, id string) (string, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	Authenticate(ctx context.Context, creds auth.Credentials) (*model.User, string, error)
	SeedDatabase(ctx context.Context) error
}

// Handler реализует HTTP-обработчики панели счетов.
type Handler struct {
	service     Service
	logger      *zap.Logger
	sessions    *middleware.SessionManager
	listCache   *cache.PathCache
	authBaseURL string
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, sessions *middleware.SessionManager, listCache *cache.PathCache, authBaseURL string) *Handler {
	return &Handler{
		service:     s,
		logger:      logger,
		sessions:    sessions,
		listCache:   listCache,
		authBaseURL: authBaseURL,
	}
}

func invoiceForm(r *http.Request) model.InvoiceForm {
	return model.InvoiceForm{
		CustomerID: r.FormValue("customerId"),
		Amount:     r.FormValue("amount"),
		Status:     r.FormValue("status"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CreateInvoice обрабатывает отправку формы создания счёта. Ошибки валидации
// и БД возвращаются как структурированный State; успех перенаправляет на список.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	state, err := h.service.CreateInvoice(r.Context(), invoiceForm(r))
	if err != nil {
		h.logger.Error("create invoice error", zap.Error(err))
	}

	if state != nil {
		status := http.StatusUnprocessableEntity
		if err != nil {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, state)
		return
	}

	http.Redirect(w, r, service.InvoiceListPath, http.StatusSeeOther)
}

// UpdateInvoice обрабатывает отправку формы редактирования счёта.
// Результат всегда передаётся перенаправлением; сбой БД перед этим логируется.
func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	location, err := h.service.UpdateInvoice(r.Context(), id, invoiceForm(r))
	if err != nil && apperr.KindOf(err) == apperr.KindDatabase {
		h.logger.Error("update invoice error", zap.Error(err), zap.String("id", id))
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

// DeleteInvoice удаляет счёт с идентификатором из формы.
// Результат всегда передаётся перенаправлением; сбой БД перед этим логируется.
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")

	location, err := h.service.DeleteInvoice(r.Context(), id)
	if err != nil && apperr.KindOf(err) == apperr.KindDatabase {
		h.logger.Error("delete invoice error", zap.Error(err), zap.String("id", id))
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

type invoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// ListInvoices возвращает список счетов, отдавая закешированное
// представление, пока его не инвалидировала очередная мутация.
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	if body, ok := h.listCache.Get(service.InvoiceListPath); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
		return
	}

	invoices, err := h.service.ListInvoices(r.Context())
	if err != nil {
		h.logger.Error("list invoices error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, invoiceResponse{
			ID:         inv.ID.String(),
			CustomerID: inv.CustomerID.String(),
			Amount:     inv.AmountCents,
			Status:     string(inv.Status),
			Date:       inv.Date.Format("2006-01-02"),
		})
	}

	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.listCache.Set(service.InvoiceListPath, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// Login выполняет вход по учётным данным из формы. Категоризированный отказ
// возвращается сообщением, успех устанавливает cookie сессии.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	creds := auth.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	user, message, err := h.service.Authenticate(r.Context(), creds)
	if err != nil {
		h.logger.Error("authenticate error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if message != "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": message})
		return
	}

	h.sessions.SetSessionCookie(w, user.ID)
	http.Redirect(w, r, middleware.DashboardPrefix, http.StatusSeeOther)
}

// LoginRedirect перенаправляет на страницу входа провайдера аутентификации.
func (h *Handler) LoginRedirect(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(h.authBaseURL, "/")
	http.Redirect(w, r, base+"/api/auth/signin", http.StatusTemporaryRedirect)
}

// Seed наполняет БД фикстурами. Ответ об ошибке содержит полные детали сбоя.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SeedDatabase(r.Context()); err != nil {
		h.logger.Error("seed error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, seedErrorPayload(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Database seeded successfully"})
}

func seedErrorPayload(err error) map[string]any {
	details := map[string]any{"message": err.Error()}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		details["code"] = pgErr.Code
		details["severity"] = pgErr.Severity
		details["detail"] = pgErr.Detail
		details["table"] = pgErr.TableName
		details["constraint"] = pgErr.ConstraintName
	}

	return map[string]any{"error": details}
}
