package notify

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"
)

// AccessCodeNotifier issues a short entry code and delivers it out-of-band to the
// customer's phone. The code is returned to the caller as well: if delivery
// fails after the booking is already paid for, the flow keeps the code and
// surfaces it in the response instead of losing the booking.
type AccessCodeNotifier interface {
	IssueAccessCode(ctx context.Context, phone string) (string, error)
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 6

// GenerateAccessCode returns a 6-character uppercase alphanumeric entry code.
func GenerateAccessCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating access code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// Simulated issues codes without sending anything, after a fixed latency.
type Simulated struct {
	Latency time.Duration
}

func NewSimulated(latency time.Duration) *Simulated {
	return &Simulated{Latency: latency}
}

func (s *Simulated) IssueAccessCode(ctx context.Context, phone string) (string, error) {
	if s.Latency > 0 {
		t := time.NewTimer(s.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}
	return GenerateAccessCode()
}
