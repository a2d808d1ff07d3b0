package service

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

// Verifier dispatches and checks one-time passcodes. The provider owns all
// pending-code state; the service keeps none.
type Verifier interface {
	SendCode(ctx context.Context, phone string) (string, error)
	CheckCode(ctx context.Context, phone, code string) (string, error)
}

// TwilioVerifier is the Twilio Verify-backed Verifier.
type TwilioVerifier struct {
	client     *twilio.RestClient
	serviceSID string
}

// NewTwilioVerifier creates a verifier for the given account and Verify
// service.
func NewTwilioVerifier(accountSID, authToken, serviceSID string) *TwilioVerifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioVerifier{
		client:     client,
		serviceSID: serviceSID,
	}
}

// SendCode asks the provider to text a verification code to the phone
// number and returns the provider's status string. The SDK does not thread
// contexts through its calls, so ctx is unused here.
func (t *TwilioVerifier) SendCode(_ context.Context, phone string) (string, error) {
	params := &verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel("sms")

	resp, err := t.client.VerifyV2.CreateVerification(t.serviceSID, params)
	if err != nil {
		return "", fmt.Errorf("failed to send verification: %w", err)
	}
	if resp.Status == nil {
		return "", fmt.Errorf("verification response missing status")
	}
	return *resp.Status, nil
}

// CheckCode asks the provider to check a code against the pending
// verification and returns the provider's status string ("approved" on
// success).
func (t *TwilioVerifier) CheckCode(_ context.Context, phone, code string) (string, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	resp, err := t.client.VerifyV2.CreateVerificationCheck(t.serviceSID, params)
	if err != nil {
		return "", fmt.Errorf("failed to check verification: %w", err)
	}
	if resp.Status == nil {
		return "", fmt.Errorf("verification check response missing status")
	}
	return *resp.Status, nil
}
