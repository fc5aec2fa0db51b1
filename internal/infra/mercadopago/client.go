// Package mercadopago is the REST client for the payment gateway: credential
// validation, checkout preference creation, payment search/cancel and the
// OAuth connection exchange. It never decides business outcomes; callers map
// its errors onto checkout or reconciliation semantics.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/errs"
)

var (
	ErrUnauthorized      = errs.New("gateway rejected the credentials")
	ErrRequestFailed     = errs.New("gateway request failed")
	ErrMalformedResponse = errs.New("gateway returned a malformed response")
)

// APIError carries the gateway's non-2xx response for logging and error
// mapping upstream.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	ErrorCode  string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway responded %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL       string
	clientID      string
	clientSecret  string
	platformToken string
	httpClient    *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:       cfg.BaseURL,
		clientID:      cfg.ClientID,
		clientSecret:  cfg.ClientSecret,
		platformToken: cfg.AccessToken,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
	}
}

// ValidateCredentials hits the identity endpoint with the partner's token.
// It runs before any durable write: a dead token must fail checkout while
// rollback is still free.
func (c *Client) ValidateCredentials(ctx context.Context, accessToken string) error {
	var me struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me", accessToken, nil, &me); err != nil {
		return err
	}
	if me.ID == 0 {
		return errs.Wrap(ErrMalformedResponse, "identity response missing user id")
	}
	return nil
}

// do issues a JSON request and decodes a 2xx body into out. Non-2xx bodies
// decode into APIError; 401/403 additionally get marked ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode gateway request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "gateway request error"), ErrRequestFailed)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read gateway response"), ErrRequestFailed)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr) // best effort; the status code alone is enough
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return errs.Mark(apiErr, ErrUnauthorized)
		}
		return errs.Mark(apiErr, ErrRequestFailed)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode gateway response"), ErrMalformedResponse)
	}
	return nil
}
