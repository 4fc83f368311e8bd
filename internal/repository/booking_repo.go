package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/LoafLife/loaf-life-reservations/internal/entities"
)

// BookingRepository stores completed bookings for the lifetime of the process.
// There is no database behind this service; the repository is the injectable
// state object the handlers and services share.
type BookingRepository struct {
	mu     sync.RWMutex
	byCode map[string]entities.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{byCode: make(map[string]entities.Booking)}
}

func (r *BookingRepository) Create(booking entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byCode[booking.Code]; exists {
		return fmt.Errorf("booking with code '%s' already exists", booking.Code)
	}
	r.byCode[booking.Code] = booking
	return nil
}

// GetByCode looks up a booking by code and the email it was booked under.
func (r *BookingRepository) GetByCode(code, email string) (*entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.byCode[code]
	if !ok || booking.UserEmail != email {
		return nil, fmt.Errorf("booking with code '%s' and email '%s' not found", code, email)
	}
	return &booking, nil
}

// List returns bookings newest first, optionally filtered by date and pass type.
func (r *BookingRepository) List(date, passID string) []entities.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.Booking
	for _, b := range r.byCode {
		if passID != "" && b.PassID != passID {
			continue
		}
		if date != "" && !containsDate(b.Dates, date) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
