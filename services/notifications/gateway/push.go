package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/blincar/blincar/internal/pkg/circuitbreaker"
	httppkg "github.com/blincar/blincar/internal/pkg/http"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	nrpkg "github.com/blincar/blincar/internal/pkg/newrelic"
	"github.com/blincar/blincar/internal/pkg/retry"
)

// PushClient is the HTTP adapter for the push provider. Sends are
// retried with backoff and guarded by a circuit breaker so a flapping
// provider cannot stall dispatch fan-out.
type PushClient struct {
	cfg     models.PushConfig
	client  *httppkg.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
}

// NewPushClient creates a new push provider client
func NewPushClient(cfg models.PushConfig) *PushClient {
	timeout := time.Duration(cfg.Timeout) * time.Second

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.RetryableFunc = retry.NetworkRetryableFunc()

	return &PushClient{
		cfg:     cfg,
		client:  httppkg.NewClient(cfg.Endpoint, timeout),
		retrier: retry.New(retryCfg, logger.GetGlobalLogger()),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("push-gateway"), logger.GetGlobalLogger()),
	}
}

type pushRequest struct {
	Tokens []string                `json:"tokens"`
	Title  string                  `json:"title"`
	Body   string                  `json:"body"`
	Data   models.NotificationData `json:"data,omitempty"`
}

// Send delivers a message to the given device tokens and reports the
// provider's per-token outcome
func (p *PushClient) Send(ctx context.Context, tokens []string, msg models.Message) (*models.PushResult, error) {
	payload, err := json.Marshal(pushRequest{
		Tokens: tokens,
		Title:  msg.Title,
		Body:   msg.Body,
		Data:   msg.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push payload: %w", err)
	}

	var result models.PushResult
	err = p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.breaker.Execute(ctx, func(ctx context.Context) error {
			return p.send(ctx, payload, &result)
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *PushClient) send(ctx context.Context, payload []byte, result *models.PushResult) error {
	url := p.client.BaseURL + "/v1/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return p.client.HTTPClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push provider returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode push response: %w", err)
	}
	return nil
}
