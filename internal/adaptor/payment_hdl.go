package adaptor

import (
	"encoding/json"
	"net/http"

	"hawc-booking/internal/dto/request"
	"hawc-booking/internal/usecase"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePayment handles POST /create-payment
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if req.Amount == 0 {
		utils.ResponseBadRequest(w, "amount is required", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// PaymentStatus handles GET /payment-status?id=
func (h *PaymentHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		utils.ResponseBadRequest(w, "id is required", nil)
		return
	}

	status, err := h.service.ResolveStatus(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "resolve payment status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// PaymentComplete handles GET /payment-complete, the redirect landing page
// the processor sends the user back to after checkout.
func (h *PaymentHandler) PaymentComplete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html>
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body style="font-family: sans-serif; padding: 40px; text-align: center;">
    <h2>Processing payment...</h2>
    <p>You can close this page now.</p>
  </body>
</html>`))
}
