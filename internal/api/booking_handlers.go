package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/LoafLife/loaf-life-reservations/internal/entities"
	apperrors "github.com/LoafLife/loaf-life-reservations/internal/errors"
	"github.com/LoafLife/loaf-life-reservations/internal/ledger"
	"github.com/LoafLife/loaf-life-reservations/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListPasses returns the passes still sellable inside the 30-day horizon.
func (h *BookingHandler) ListPasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListAvailablePasses())
}

// GetCalendar returns the next 30 days with remaining capacity for one pass.
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	passID := r.URL.Query().Get("pass_id")
	days, err := h.Service.Calendar(passID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.CheckAvailability(req.PassID, req.Dates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	passID := r.URL.Query().Get("pass_id")
	var dates []string
	if raw := r.URL.Query().Get("dates"); raw != "" {
		dates = strings.Split(raw, ",")
	}
	quote, err := h.Service.Quote(passID, dates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.CompleteBooking(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateBookingResponse{
		BookingCode: booking.Code,
		AccessCode:  booking.AccessCode,
		TotalPrice:  booking.TotalPrice,
		Dates:       booking.Dates,
		Message:     "Booking confirmed.",
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	email := r.URL.Query().Get("email")
	booking, err := h.Service.GetBooking(code, email)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	switch {
	case errors.Is(err, service.ErrUnknownPass):
		httpErr = apperrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrCapacityExceeded), errors.Is(err, service.ErrUnavailable):
		httpErr = apperrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPaymentFailed):
		httpErr = apperrors.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.Is(err, ledger.ErrInvalidDate),
		errors.Is(err, service.ErrNoDatesSelected),
		errors.Is(err, service.ErrMissingContact):
		httpErr = apperrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		httpErr = apperrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	http.Error(w, httpErr.Message, httpErr.Code)
}
