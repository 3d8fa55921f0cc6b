package rest

import (
	"errors"
	"net/http"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/service"
	"github.com/go-chi/chi/v5"
)

type BookingHandler struct {
	bookings service.BookingService
	log      logger.Logger
}

func NewBookingHandler(bookings service.BookingService, log logger.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, log: log}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking entity.Booking
	if !decodeBody(w, r, &booking) {
		return
	}

	res, err := h.bookings.CreateBooking(r.Context(), &booking)
	if err != nil {
		h.log.Errorf("Failed to create booking: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.Bookings(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list bookings: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

// IsBooked answers GET /bookings/:id. The path parameter is matched
// against productId, not _id, and paid state is ignored: any booking for
// the product, settled or not, answers true.
func (h *BookingHandler) IsBooked(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	booked, err := h.bookings.IsProductBooked(r.Context(), productID)
	if err != nil {
		h.log.Errorf("Failed to check booked status for product %s: %v", productID, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"isBooking": booked})
}

func (h *BookingHandler) ListBuyerOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	orders, err := h.bookings.BuyerOrders(r.Context(), email)
	if err != nil {
		h.log.Errorf("Failed to list orders for buyer %s: %v", email, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *BookingHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	orders, err := h.bookings.SellerOrders(r.Context(), email)
	if err != nil {
		h.log.Errorf("Failed to list orders for seller %s: %v", email, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder loads a single booking by its _id for the payment page.
func (h *BookingHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	booking, err := h.bookings.Booking(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		h.log.Errorf("Failed to get booking %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}
