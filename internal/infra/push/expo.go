package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/errs"
)

type ExpoSender struct {
	url        string
	httpClient *http.Client
}

func NewExpoSender(cfg config.PushConfig) *ExpoSender {
	return &ExpoSender{
		url:        cfg.ExpoURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type expoRequest struct {
	To    string          `json:"to"`
	Title string          `json:"title"`
	Body  string          `json:"body"`
	Data  json.RawMessage `json:"data,omitempty"`
	Sound string          `json:"sound"`
}

type expoResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Details struct {
			Error string `json:"error"`
		} `json:"details"`
	} `json:"data"`
}

func (s *ExpoSender) Send(ctx context.Context, token string, msg Message) error {
	payload, err := json.Marshal(expoRequest{
		To:    token,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
		Sound: "default",
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode expo request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build expo request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "expo request error"), ErrSendFailed)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read expo response"), ErrSendFailed)
	}
	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.Newf("expo responded %d", resp.StatusCode), ErrSendFailed)
	}

	var body expoResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode expo response"), ErrSendFailed)
	}
	// Expo reports per-message failures inside a 200 response.
	if body.Data.Status != "ok" {
		if body.Data.Details.Error == "DeviceNotRegistered" {
			return errs.Mark(errs.New(body.Data.Message), ErrTokenInvalid)
		}
		return errs.Mark(errs.New(body.Data.Message), ErrSendFailed)
	}
	return nil
}
