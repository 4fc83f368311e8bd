package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioNotifier generates an access code and texts it to the customer.
type TwilioNotifier struct{}

func NewTwilioNotifier() *TwilioNotifier {
	return &TwilioNotifier{}
}

func (n *TwilioNotifier) IssueAccessCode(ctx context.Context, phone string) (string, error) {
	code, err := GenerateAccessCode()
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf("Loaf Life: your access code is %s. Show it at the door for entry. See you in Kingfield!", code)
	if err := SendSMS(phone, message); err != nil {
		// The code is already committed to the booking; the caller decides how
		// to surface the delivery failure.
		return code, err
	}
	return code, nil
}

func SendSMS(to, message string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	_, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
