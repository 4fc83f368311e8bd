package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// DateLayout is the calendar date format used for all ledger keys.
const DateLayout = "2006-01-02"

// DefaultHorizonDays is the rolling window used to decide whether a pass is sellable.
const DefaultHorizonDays = 30

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidDate      = errors.New("invalid date")
)

// Ledger tracks reservation counts by calendar date and pass type. All reads and
// writes go through one mutex, so Reserve is an atomic check-and-increment across
// every requested date: two bookings racing for the last slot cannot both commit.
type Ledger struct {
	mu          sync.Mutex
	capacityFor func(passID string) int
	reserved    map[string]map[string]int // date -> passID -> count
}

// New returns an empty ledger. capacityFor supplies the daily capacity per pass
// type and must return 0 for unknown IDs.
func New(capacityFor func(passID string) int) *Ledger {
	return &Ledger{
		capacityFor: capacityFor,
		reserved:    make(map[string]map[string]int),
	}
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func (l *Ledger) remainingLocked(passID, date string) int {
	capacity := l.capacityFor(passID)
	count := l.reserved[date][passID]
	if remaining := capacity - count; remaining > 0 {
		return remaining
	}
	return 0
}

// RemainingCapacity returns how many more reservations fit for the pass on the
// given date. Never negative, even if counts were driven past capacity.
func (l *Ledger) RemainingCapacity(passID, date string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remainingLocked(passID, date)
}

// IsAvailable reports whether every date in dates still has room for the pass.
// An empty date list is vacuously available.
func (l *Ledger) IsAvailable(passID string, dates []string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, d := range dates {
		if l.remainingLocked(passID, d) == 0 {
			return false
		}
	}
	return true
}

// AvailableWithinHorizon reports whether the pass has room on at least one date
// in [start, start+horizonDays).
func (l *Ledger) AvailableWithinHorizon(passID string, start time.Time, horizonDays int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < horizonDays; i++ {
		d := start.AddDate(0, 0, i).Format(DateLayout)
		if l.remainingLocked(passID, d) > 0 {
			return true
		}
	}
	return false
}

// Reserve records one reservation for the pass on every given date. Duplicate
// dates in one call count as a single hold. The check and the increments happen
// under one lock and are all-or-nothing: if any date is already at capacity,
// Reserve returns ErrCapacityExceeded naming that date and leaves every count
// untouched.
func (l *Ledger) Reserve(passID string, dates []string) error {
	seen := make(map[string]bool, len(dates))
	var unique []string
	for _, d := range dates {
		if !ValidDate(d) {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range unique {
		if l.remainingLocked(passID, d) == 0 {
			return fmt.Errorf("%w for %s on %s", ErrCapacityExceeded, passID, d)
		}
	}
	for _, d := range unique {
		byPass := l.reserved[d]
		if byPass == nil {
			byPass = make(map[string]int)
			l.reserved[d] = byPass
		}
		byPass[passID]++
	}
	return nil
}

// Occupancy returns a copy of the reservation counts for one date, keyed by pass ID.
func (l *Ledger) Occupancy(date string) map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int, len(l.reserved[date]))
	for passID, count := range l.reserved[date] {
		out[passID] = count
	}
	return out
}

// PruneBefore drops every ledger entry for dates strictly before cutoff and
// returns how many dates were removed. Availability only ever looks forward, so
// past entries are dead weight.
func (l *Ledger) PruneBefore(cutoff string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for date := range l.reserved {
		if date < cutoff {
			delete(l.reserved, date)
			removed++
		}
	}
	return removed
}
