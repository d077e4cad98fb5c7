package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var (
	ErrRelayNotConfigured = errors.New("email relay is not configured")
)

// resendRelay implements EmailRelayInterface against a Resend-compatible
// HTTP API: a single POST with a bearer key and a JSON body carrying the
// message and its base64 attachments.
type resendRelay struct {
	url    string
	apiKey string
	client *http.Client
	logger *slog.Logger
}

// NewResendRelay creates an email relay client
func NewResendRelay(url, apiKey string, logger *slog.Logger) EmailRelayInterface {
	return &resendRelay{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// Send posts the message to the relay
func (r *resendRelay) Send(message *EmailMessage) error {
	if r.apiKey == "" {
		return ErrRelayNotConfigured
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to serialize relay message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		r.logger.Error("relay rejected backup email", "status", resp.StatusCode, "body", string(detail))
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	return nil
}
