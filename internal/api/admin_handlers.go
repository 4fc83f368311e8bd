package api

import (
	"net/http"

	"github.com/LoafLife/loaf-life-reservations/internal/ledger"
	"github.com/LoafLife/loaf-life-reservations/internal/service"
)

type AdminHandler struct {
	Service *service.BookingService
}

func NewAdminHandler(svc *service.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// Occupancy reports reserved counts against capacity for every pass on a date.
func (h *AdminHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !ledger.ValidDate(date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Service.Occupancy(date))
}

// ListBookings returns bookings, optionally filtered by date and pass type.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	passID := r.URL.Query().Get("pass_id")
	if date != "" && !ledger.ValidDate(date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	bookings := h.Service.Bookings.List(date, passID)
	writeJSON(w, http.StatusOK, bookings)
}
