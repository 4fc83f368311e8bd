package payment

import (
	"context"
	"errors"

	"github.com/LoafLife/loaf-life-reservations/internal/entities"
)

// ErrChargeDeclined is returned when the processor refuses the charge.
var ErrChargeDeclined = errors.New("payment declined")

// Processor charges and refunds customers. Implementations: Stripe for real
// payments, Simulated for local development and tests.
type Processor interface {
	// Charge bills amountCents to the customer and returns a payment reference.
	Charge(ctx context.Context, amountCents int64, description string, customer entities.Customer) (string, error)
	// Refund reverses a previous charge by its payment reference.
	Refund(ctx context.Context, paymentRef string) error
}
