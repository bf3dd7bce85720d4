package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"veranera/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	APIKey   string
	From     string
	Endpoint string
	Client   *http.Client
}

// NewResendMailer creates a mailer against the public Resend endpoint.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		APIKey:   apiKey,
		From:     from,
		Endpoint: resendEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendBookingConfirmation renders and sends the confirmation email.
func (m *ResendMailer) SendBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error {
	if m.APIKey == "" {
		return fmt.Errorf("resend: api key not configured")
	}

	body, err := json.Marshal(resendRequest{
		From:    m.From,
		To:      []string{payload.To},
		Subject: fmt.Sprintf("✓ Reserva confirmada: %s", payload.RetreatTitle),
		HTML:    renderBookingConfirmation(payload),
	})
	if err != nil {
		return fmt.Errorf("resend: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("resend: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend: unexpected status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
