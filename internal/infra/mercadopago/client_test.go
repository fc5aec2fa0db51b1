//go:build unit

package mercadopago_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *mercadopago.Client {
	return mercadopago.NewClient(config.GatewayConfig{
		BaseURL:      srv.URL,
		AccessToken:  "APP_USR-platform-token-000",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Timeout:      5 * time.Second,
	})
}

func TestValidateCredentials(t *testing.T) {
	t.Run("accepts a token the gateway recognises", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/me", r.URL.Path)
			assert.Equal(t, "Bearer APP_USR-partner-token-123", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 123456789, "nickname": "VETSHOP"}`))
		}))
		defer srv.Close()

		err := newTestClient(srv).ValidateCredentials(context.Background(), "APP_USR-partner-token-123")
		assert.NoError(t, err)
	})

	t.Run("401 maps to ErrUnauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "invalid access token", "error": "unauthorized"}`))
		}))
		defer srv.Close()

		err := newTestClient(srv).ValidateCredentials(context.Background(), "dead-token-0123456")
		assert.True(t, errs.Is(err, mercadopago.ErrUnauthorized))
	})

	t.Run("identity response without a user id is malformed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"nickname": "VETSHOP"}`))
		}))
		defer srv.Close()

		err := newTestClient(srv).ValidateCredentials(context.Background(), "APP_USR-partner-token-123")
		assert.True(t, errs.Is(err, mercadopago.ErrMalformedResponse))
	})

	t.Run("unreachable gateway maps to ErrRequestFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		err := newTestClient(srv).ValidateCredentials(context.Background(), "APP_USR-partner-token-123")
		assert.True(t, errs.Is(err, mercadopago.ErrRequestFailed))
	})
}

func TestExchangeAuthorizationCode(t *testing.T) {
	t.Run("returns the credential bundle", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/oauth/token", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			// OAuth exchange authenticates with client credentials, not a bearer token
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{
				"access_token": "APP_USR-new-token-9876543210",
				"refresh_token": "TG-refresh-9876543210",
				"public_key": "APP_USR-pub-key",
				"user_id": 987654321,
				"expires_in": 15552000
			}`))
		}))
		defer srv.Close()

		token, err := newTestClient(srv).ExchangeAuthorizationCode(context.Background(), "TG-auth-code", "https://app.example.com/mp/callback")
		require.NoError(t, err)

		assert.Equal(t, "APP_USR-new-token-9876543210", token.AccessToken)
		assert.Equal(t, "TG-refresh-9876543210", token.RefreshToken)
		assert.Equal(t, int64(987654321), token.UserID)
	})

	t.Run("missing access token is malformed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user_id": 987654321}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).ExchangeAuthorizationCode(context.Background(), "TG-auth-code", "https://app.example.com/mp/callback")
		assert.True(t, errs.Is(err, mercadopago.ErrMalformedResponse))
	})
}
