package adaptor

import (
	"encoding/json"
	"net/http"

	"hawc-booking/internal/dto/request"
	"hawc-booking/internal/usecase"
	"hawc-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AccountHandler struct {
	invoice usecase.InvoiceService
	log     *zap.Logger
}

func NewAccountHandler(invoice usecase.InvoiceService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		invoice: invoice,
		log:     log.With(zap.String("handler", "account")),
	}
}

// ListInvoiceRequests handles GET /admin/invoice-requests
func (h *AccountHandler) ListInvoiceRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.invoice.ListInvoiceRequests(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list invoice requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// SetInvoiceApproval handles PUT /admin/invoice-requests/{id}
func (h *AccountHandler) SetInvoiceApproval(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		utils.ResponseBadRequest(w, "Account ID is required", nil)
		return
	}

	var req request.SetInvoiceApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.invoice.SetInvoiceApproval(r.Context(), accountID, req.State); err != nil {
		handleServiceError(w, h.log, err, "set invoice approval")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
