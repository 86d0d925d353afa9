package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/invoice-dashboard/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware панели счетов.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.Logger(h.logger))

	r.Get("/login", h.LoginRedirect)
	r.Post("/login", h.Login)
	r.Get("/seed", h.Seed)

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(h.sessions.Gate)

		r.Get("/invoices", h.ListInvoices)
		r.Post("/invoices", h.CreateInvoice)
		r.Post("/invoices/{id}/edit", h.UpdateInvoice)
		r.Post("/invoices/delete", h.DeleteInvoice)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
