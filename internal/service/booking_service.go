package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/LoafLife/loaf-life-reservations/internal/catalog"
	"github.com/LoafLife/loaf-life-reservations/internal/entities"
	"github.com/LoafLife/loaf-life-reservations/internal/ledger"
	"github.com/LoafLife/loaf-life-reservations/internal/notify"
	"github.com/LoafLife/loaf-life-reservations/internal/payment"
	"github.com/LoafLife/loaf-life-reservations/internal/repository"
)

var (
	ErrUnknownPass     = errors.New("unknown pass type")
	ErrNoDatesSelected = errors.New("no dates selected")
	ErrMissingContact  = errors.New("name, email and phone are required")
	ErrUnavailable     = errors.New("selection is not available")
	ErrPaymentFailed   = errors.New("payment failed")
)

type BookingService struct {
	Ledger   *ledger.Ledger
	Bookings *repository.BookingRepository
	Payments payment.Processor
	Notifier notify.AccessCodeNotifier
	Emailer  notify.EmailSender // nil disables confirmation email
	Passes   []catalog.PassType

	// Now is injectable for horizon tests; defaults to time.Now.
	Now func() time.Time
}

func NewBookingService(l *ledger.Ledger, bookings *repository.BookingRepository, payments payment.Processor, notifier notify.AccessCodeNotifier, emailer notify.EmailSender) *BookingService {
	return &BookingService{
		Ledger:   l,
		Bookings: bookings,
		Payments: payments,
		Notifier: notifier,
		Emailer:  emailer,
		Passes:   catalog.Passes(),
		Now:      time.Now,
	}
}

// ListAvailablePasses filters the catalog down to passes with at least one open
// date inside the rolling 30-day horizon, preserving catalog order.
func (s *BookingService) ListAvailablePasses() []catalog.PassType {
	start := s.Now()
	var out []catalog.PassType
	for _, p := range s.Passes {
		if s.Ledger.AvailableWithinHorizon(p.ID, start, ledger.DefaultHorizonDays) {
			out = append(out, p)
		}
	}
	return out
}

// Calendar returns the next 30 days with remaining capacity for one pass.
func (s *BookingService) Calendar(passID string) ([]entities.CalendarDay, error) {
	if _, ok := s.passByID(passID); !ok {
		return nil, ErrUnknownPass
	}
	start := s.Now()
	days := make([]entities.CalendarDay, 0, ledger.DefaultHorizonDays)
	for i := 0; i < ledger.DefaultHorizonDays; i++ {
		date := start.AddDate(0, 0, i).Format(ledger.DateLayout)
		remaining := s.Ledger.RemainingCapacity(passID, date)
		days = append(days, entities.CalendarDay{
			Date:           date,
			RemainingSpots: remaining,
			IsAvailable:    remaining > 0,
		})
	}
	return days, nil
}

// CheckAvailability reports per-date availability for a pass over the given dates.
func (s *BookingService) CheckAvailability(passID string, dates []string) (*entities.AvailabilityResponse, error) {
	if _, ok := s.passByID(passID); !ok {
		return nil, ErrUnknownPass
	}
	dates, err := normalizeDates(dates)
	if err != nil {
		return nil, err
	}

	resp := &entities.AvailabilityResponse{
		PassID:             passID,
		IsOverallAvailable: true,
	}
	for _, d := range dates {
		remaining := s.Ledger.RemainingCapacity(passID, d)
		available := remaining > 0
		resp.Dates = append(resp.Dates, entities.DateAvailability{
			Date:           d,
			IsAvailable:    available,
			RemainingSpots: remaining,
		})
		if !available {
			resp.IsOverallAvailable = false
			if resp.FirstUnavailable == "" {
				resp.FirstUnavailable = d
			}
		}
	}
	return resp, nil
}

// Quote prices a selection without booking it.
func (s *BookingService) Quote(passID string, dates []string) (*entities.QuoteResponse, error) {
	pass, ok := s.passByID(passID)
	if !ok {
		return nil, ErrUnknownPass
	}
	dates, err := normalizeDates(dates)
	if err != nil {
		return nil, err
	}
	return &entities.QuoteResponse{
		PassID:     passID,
		Dates:      dates,
		TotalPrice: TotalPrice(pass, dates),
	}, nil
}

// CompleteBooking runs the full flow: charge first, then commit the reservation
// atomically, then issue the access code. If the atomic commit loses the race
// for the last slot after the charge went through, the charge is refunded and
// the capacity error is surfaced instead of silently overbooking.
func (s *BookingService) CompleteBooking(ctx context.Context, req entities.BookingRequest) (*entities.Booking, error) {
	pass, ok := s.passByID(req.PassID)
	if !ok {
		return nil, ErrUnknownPass
	}
	if req.UserName == "" || req.UserEmail == "" || req.UserPhone == "" {
		return nil, ErrMissingContact
	}
	dates, err := normalizeDates(req.Dates)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, ErrNoDatesSelected
	}

	if !s.Ledger.IsAvailable(pass.ID, dates) {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, pass.ID)
	}

	total := TotalPrice(pass, dates)
	customer := entities.Customer{Name: req.UserName, Email: req.UserEmail, Phone: req.UserPhone}
	description := fmt.Sprintf("Loaf Life %s (%d day(s))", pass.Name, len(dates))

	paymentRef, err := s.Payments.Charge(ctx, int64(total)*100, description, customer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := s.Ledger.Reserve(pass.ID, dates); err != nil {
		if refundErr := s.Payments.Refund(ctx, paymentRef); refundErr != nil {
			log.Printf("ALERT: could not refund payment %s after failed reservation: %v", paymentRef, refundErr)
		}
		return nil, err
	}

	accessCode, err := s.Notifier.IssueAccessCode(ctx, req.UserPhone)
	if err != nil {
		// The reservation is committed and paid for; a failed text must not
		// void the booking. The code still reaches the customer in the
		// response and the confirmation email.
		log.Printf("ALERT: booking paid but access code delivery to %s failed: %v", req.UserPhone, err)
		if accessCode == "" {
			if accessCode, err = notify.GenerateAccessCode(); err != nil {
				log.Printf("ALERT: fallback access code generation failed: %v", err)
			}
		}
	}

	spaceName := ""
	if inv, ok := catalog.InventoryFor(pass.ID); ok {
		spaceName = inv.Name
	}

	booking := entities.Booking{
		Code:       newBookingCode(),
		PassID:     pass.ID,
		PassName:   pass.Name,
		SpaceName:  spaceName,
		Dates:      dates,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		UserPhone:  req.UserPhone,
		TotalPrice: total,
		PaymentRef: paymentRef,
		AccessCode: accessCode,
		CreatedAt:  time.Now().UTC(),
	}
	// The charge and the reservation are already committed; a code collision
	// must not lose the booking, so retry with fresh codes.
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		if createErr = s.Bookings.Create(booking); createErr == nil {
			break
		}
		booking.Code = newBookingCode()
	}
	if createErr != nil {
		log.Printf("ALERT: storing booking failed: %v", createErr)
		return nil, createErr
	}

	if s.Emailer != nil {
		s.Emailer.SendBookingEmail(booking)
	}
	return &booking, nil
}

func (s *BookingService) GetBooking(code, email string) (*entities.Booking, error) {
	return s.Bookings.GetByCode(code, email)
}

// Occupancy reports reserved counts for one date, plus combined physical usage
// for passes that share a space pool with another pass type.
func (s *BookingService) Occupancy(date string) map[string]entities.OccupancyEntry {
	counts := s.Ledger.Occupancy(date)
	out := make(map[string]entities.OccupancyEntry, len(s.Passes))
	for _, p := range s.Passes {
		entry := entities.OccupancyEntry{
			Reserved: counts[p.ID],
			Capacity: catalog.CapacityFor(p.ID),
		}
		pool := catalog.SharedPoolPassIDs(p.ID)
		if len(pool) > 1 {
			for _, id := range pool {
				entry.SharedPoolReserved += counts[id]
			}
		}
		out[p.ID] = entry
	}
	return out
}

func (s *BookingService) passByID(id string) (catalog.PassType, bool) {
	for _, p := range s.Passes {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.PassType{}, false
}

// normalizeDates validates, de-duplicates and sorts the selected dates.
func normalizeDates(dates []string) ([]string, error) {
	seen := make(map[string]bool, len(dates))
	var out []string
	for _, d := range dates {
		if !ledger.ValidDate(d) {
			return nil, fmt.Errorf("%w: %q", ledger.ErrInvalidDate, d)
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out, nil
}

func newBookingCode() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unheard of; keep the booking alive.
		return fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)
	}
	return fmt.Sprintf("%08X", binary.BigEndian.Uint32(buf))
}
