package wire

import (
	"hawc-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAccount(r chi.Router, accountHandler *adaptor.AccountHandler) {
	// Admin invoice-approval management
	r.Route("/admin/invoice-requests", func(r chi.Router) {
		// GET /admin/invoice-requests - Professional accounts awaiting approval
		r.Get("/", accountHandler.ListInvoiceRequests)

		// PUT /admin/invoice-requests/{id} - Approve or reject
		r.Put("/{id}", accountHandler.SetInvoiceApproval)
	})
}
