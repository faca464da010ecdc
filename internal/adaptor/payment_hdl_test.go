package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hawc-booking/internal/dto/request"
	"hawc-booking/internal/dto/response"
	"hawc-booking/pkg/mollie"
	"hawc-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubPaymentService returns canned results so handler mapping is tested
// without the real service stack.
type stubPaymentService struct {
	createResp  *response.PaymentResponse
	createErr   error
	resolveResp *response.PaymentStatusResponse
	resolveErr  error
}

func (s *stubPaymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubPaymentService) ResolveStatus(ctx context.Context, paymentID string) (*response.PaymentStatusResponse, error) {
	return s.resolveResp, s.resolveErr
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func validCreateBody() string {
	return `{
		"amount": 10,
		"metadata": {
			"resourceId": "car-1",
			"resourceName": "Pool Car 1",
			"type": "vehicle",
			"startIso": "2025-03-01T09:00:00Z",
			"endIso": "2025-03-01T11:00:00Z",
			"userId": "user-1"
		}
	}`
}

func TestCreatePaymentHandlerSuccess(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{
		createResp: &response.PaymentResponse{ID: "tr_1", Status: mollie.StatusOpen, CheckoutURL: "https://checkout.example/1"},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()
	handler.CreatePayment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tr_1", data["id"])
	assert.Equal(t, "https://checkout.example/1", data["checkoutUrl"])
}

func TestCreatePaymentHandlerMissingAmount(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(`{"metadata":{}}`))
	rec := httptest.NewRecorder()
	handler.CreatePayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
	assert.Equal(t, "amount is required", envelope.Message)
}

func TestCreatePaymentHandlerBadBody(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.CreatePayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePaymentHandlerConflict(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{
		createErr: fmt.Errorf("resource car-1 is already booked in this range"),
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()
	handler.CreatePayment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "already booked in this range", envelope.Message)
}

func TestCreatePaymentHandlerProcessorErrorPassthrough(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{
		createErr: fmt.Errorf("create payment: %w", &mollie.APIError{
			StatusCode: http.StatusUnprocessableEntity,
			Title:      "Unprocessable Entity",
			Detail:     "The amount is higher than the maximum",
		}),
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()
	handler.CreatePayment(rec, req)

	// Upstream status is passed through unchanged
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Message, "Payment processor error")
}

func TestCreatePaymentHandlerNotConfigured(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{
		createErr: fmt.Errorf("create payment: %w", mollie.ErrNotConfigured),
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(validCreateBody()))
	rec := httptest.NewRecorder()
	handler.CreatePayment(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Message, "misconfigured")
}

func TestPaymentStatusHandlerRequiresID(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/payment-status", nil)
	rec := httptest.NewRecorder()
	handler.PaymentStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "id is required", envelope.Message)
}

func TestPaymentStatusHandlerSuccess(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{
		resolveResp: &response.PaymentStatusResponse{ID: "tr_1", Status: mollie.StatusPaid, Booked: true},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/payment-status?id=tr_1", nil)
	rec := httptest.NewRecorder()
	handler.PaymentStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "paid", data["status"])
	assert.Equal(t, true, data["booked"])
}

func TestPaymentCompleteServesHTML(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/payment-complete", nil)
	rec := httptest.NewRecorder()
	handler.PaymentComplete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Processing payment")
}
