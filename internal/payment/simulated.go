package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/LoafLife/loaf-life-reservations/internal/entities"
)

// Simulated is a Processor that approves every charge after a fixed latency.
// Set Decline to exercise the failure path.
type Simulated struct {
	Latency time.Duration
	Decline bool

	mu       sync.Mutex
	refunded []string
}

func NewSimulated(latency time.Duration) *Simulated {
	return &Simulated{Latency: latency}
}

func (s *Simulated) Charge(ctx context.Context, amountCents int64, description string, customer entities.Customer) (string, error) {
	if err := wait(ctx, s.Latency); err != nil {
		return "", err
	}
	if s.Decline {
		return "", ErrChargeDeclined
	}
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating payment reference: %w", err)
	}
	return "pi_" + hex.EncodeToString(buf), nil
}

func (s *Simulated) Refund(ctx context.Context, paymentRef string) error {
	if err := wait(ctx, s.Latency); err != nil {
		return err
	}
	s.mu.Lock()
	s.refunded = append(s.refunded, paymentRef)
	s.mu.Unlock()
	return nil
}

// Refunded returns the payment references refunded so far.
func (s *Simulated) Refunded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.refunded))
	copy(out, s.refunded)
	return out
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
