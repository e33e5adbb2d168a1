package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rent2reuse/config"
)

// Mailer dispatches transactional email through the hosted email API.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message is one outbound email. ToEmail, Subject and Body are required.
type Message struct {
	ToEmail       string `json:"to_email"`
	ToName        string `json:"to_name,omitempty"`
	FromName      string `json:"from_name,omitempty"`
	Subject       string `json:"subject"`
	Body          string `json:"message"`
	TicketID      string `json:"ticketId,omitempty"`
	TicketSubject string `json:"ticket_subject,omitempty"`
}

// Credentials are the four required email API credentials. Sending with any
// credential missing fails with a descriptive error before any network call.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

// CredentialsFromConfig reads the credentials from the loaded app config.
func CredentialsFromConfig() Credentials {
	return Credentials{
		ServiceID:  config.AppConfig.EmailServiceID,
		TemplateID: config.AppConfig.EmailTemplateID,
		PublicKey:  config.AppConfig.EmailPublicKey,
		PrivateKey: config.AppConfig.EmailPrivateKey,
	}
}

// Validate names the first missing credential.
func (c Credentials) Validate() error {
	switch {
	case c.ServiceID == "":
		return fmt.Errorf("email API service ID is not configured")
	case c.TemplateID == "":
		return fmt.Errorf("email API template ID is not configured")
	case c.PublicKey == "":
		return fmt.Errorf("email API public key is not configured")
	case c.PrivateKey == "":
		return fmt.Errorf("email API private key is not configured")
	}
	return nil
}

// APIMailer sends mail through the EmailJS-compatible REST endpoint.
type APIMailer struct {
	Creds   Credentials
	BaseURL string
	HTTP    *http.Client
}

// NewAPIMailer builds a mailer from config.
func NewAPIMailer() *APIMailer {
	return &APIMailer{
		Creds:   CredentialsFromConfig(),
		BaseURL: config.AppConfig.EmailAPIBaseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type apiRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the message to the email API and returns the provider response
// body on success.
func (m *APIMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := m.Creds.Validate(); err != nil {
		return "", err
	}
	if msg.ToEmail == "" || msg.Subject == "" || msg.Body == "" {
		return "", fmt.Errorf("to_email, subject and message are required")
	}

	payload := apiRequest{
		ServiceID:   m.Creds.ServiceID,
		TemplateID:  m.Creds.TemplateID,
		UserID:      m.Creds.PublicKey,
		AccessToken: m.Creds.PrivateKey,
		TemplateParams: map[string]string{
			"to_email":       msg.ToEmail,
			"to_name":        msg.ToName,
			"from_name":      msg.FromName,
			"subject":        msg.Subject,
			"message":        msg.Body,
			"ticket_id":      msg.TicketID,
			"ticket_subject": msg.TicketSubject,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("email API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(respBody))
	}
	return string(respBody), nil
}
