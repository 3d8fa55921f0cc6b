package rest

import (
	"net/http"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
	log      logger.Logger
}

func NewPaymentHandler(payments service.PaymentService, log logger.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, log: log}
}

type createIntentRequest struct {
	ReselPrice float64 `json:"reselPrice"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	clientSecret, err := h.payments.CreatePaymentIntent(r.Context(), req.ReselPrice)
	if err != nil {
		h.log.Errorf("Failed to create payment intent: %v", err)
		respondMessage(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}
	respondJSON(w, http.StatusOK, createIntentResponse{ClientSecret: clientSecret})
}

// ConfirmPayment reports the outcome of the ledger insert only; the
// booking and product side effects never influence the response.
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var payment entity.Payment
	if !decodeBody(w, r, &payment) {
		return
	}

	res, err := h.payments.ConfirmPayment(r.Context(), &payment)
	if err != nil {
		h.log.Errorf("Failed to confirm payment for booking %s: %v", payment.BookingID, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
