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

// FCMSender talks to the legacy FCM HTTP endpoint. It only serves devices
// that predate the Expo client; new installs never register an FCM-only
// token.
type FCMSender struct {
	url        string
	serverKey  string
	httpClient *http.Client
}

func NewFCMSender(cfg config.PushConfig) *FCMSender {
	return &FCMSender{
		url:        cfg.FCMURL,
		serverKey:  cfg.FCMKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type fcmRequest struct {
	To           string          `json:"to"`
	Notification fcmNotification `json:"notification"`
	Data         json.RawMessage `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		Error string `json:"error"`
	} `json:"results"`
}

func (s *FCMSender) Send(ctx context.Context, token string, msg Message) error {
	payload, err := json.Marshal(fcmRequest{
		To: token,
		Notification: fcmNotification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode fcm request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build fcm request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.serverKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "fcm request error"), ErrSendFailed)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read fcm response"), ErrSendFailed)
	}
	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.Newf("fcm responded %d", resp.StatusCode), ErrSendFailed)
	}

	var body fcmResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode fcm response"), ErrSendFailed)
	}
	if body.Failure > 0 || body.Success == 0 {
		reason := "delivery rejected"
		if len(body.Results) > 0 && body.Results[0].Error != "" {
			reason = body.Results[0].Error
		}
		if reason == "NotRegistered" || reason == "InvalidRegistration" {
			return errs.Mark(errs.New(reason), ErrTokenInvalid)
		}
		return errs.Mark(errs.New(reason), ErrSendFailed)
	}
	return nil
}
