package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// EmailSender delivers a single message to a list of recipients.
type EmailSender interface {
	SendEmail(ctx context.Context, subject, body string, recipients []string) error
}

// ResendClient sends e-mail through the Resend HTTP API.
type ResendClient struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewResendClient reads RESEND_API_KEY and RESEND_FROM_EMAIL. It returns nil when
// either is unset, which disables notification e-mail.
func NewResendClient(cfg map[string]string) *ResendClient {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	from := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if apiKey == "" || from == "" {
		return nil
	}
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.With().Str("service", "resend").Logger(),
	}
}

// SendEmail sends an HTML e-mail to recipients.
func (c *ResendClient) SendEmail(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return errs.NewMissingRequiredFieldError("recipients")
	}

	payload, err := json.Marshal(ResendEmailRequest{
		From:    c.from,
		To:      recipients,
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError("Resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewServiceRejectedError("Resend", resp.StatusCode, errorResp.Message)
		}
		return errs.NewServiceRejectedError("Resend", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		c.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}
	return nil
}
