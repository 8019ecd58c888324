// Package notification implements the email and push delivery boundary.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// DefaultPushEndpoint is the Expo push gateway.
const DefaultPushEndpoint = "https://exp.host/--/api/v2/push/send"

// PushClient implements the adapter.PushSender interface against an
// Expo-compatible push gateway.
type PushClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewPushClient creates a new push client. An empty endpoint selects the
// default gateway.
func NewPushClient(endpoint string, timeout time.Duration) *PushClient {
	if endpoint == "" {
		endpoint = DefaultPushEndpoint
	}
	return &PushClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// pushMessage is the gateway's wire format.
type pushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SendPush delivers a push notification. Failures are classified like email
// failures: client errors are permanent, everything else is temporary.
func (c *PushClient) SendPush(ctx context.Context, input adapter.SendPushInput) error {
	payload, err := json.Marshal(pushMessage{
		To:    input.Token,
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		return domainerror.NewDeliveryError(
			domainerror.ErrCodePermanentDeliveryFailure,
			"failed to encode push message",
			err,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domainerror.NewDeliveryError(
			domainerror.ErrCodePermanentDeliveryFailure,
			"failed to build push request",
			err,
		)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerror.NewDeliveryError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"push request failed",
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	code := domainerror.ErrCodeTemporaryDeliveryFailure
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		code = domainerror.ErrCodePermanentDeliveryFailure
	}

	return domainerror.NewDeliveryError(
		code,
		fmt.Sprintf("push gateway returned %d", resp.StatusCode),
		fmt.Errorf("%s", bytes.TrimSpace(body)),
	)
}

// Ensure implementation satisfies the interface.
var _ adapter.PushSender = (*PushClient)(nil)
