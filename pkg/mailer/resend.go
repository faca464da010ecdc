package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// ErrDisabled is returned when no API key is configured; callers treat it
// like any other send failure and skip the notification.
var ErrDisabled = errors.New("resend API key is not configured")

// Resend sends email through the Resend HTTP API.
type Resend struct {
	apiKey   string
	from     string
	endpoint string
	httpc    *http.Client
	log      *zap.Logger
}

func NewResend(apiKey, from string, log *zap.Logger) *Resend {
	return &Resend{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		log:      log.With(zap.String("notifier", "resend")),
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (r *Resend) Send(ctx context.Context, msg Message) error {
	if r.apiKey == "" {
		return ErrDisabled
	}

	body, err := json.Marshal(resendRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("send email: resend returned %s", resp.Status)
	}

	r.log.Info("Email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
