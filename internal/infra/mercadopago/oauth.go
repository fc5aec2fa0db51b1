package mercadopago

import (
	"context"
	"net/http"

	"dogcatify-core/internal/pkg/errs"
)

// TokenResponse is the result of either OAuth exchange. The partner
// connection flow persists it as the account's credential bundle.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	PublicKey    string `json:"public_key"`
	UserID       int64  `json:"user_id"`
	ExpiresIn    int64  `json:"expires_in"`
}

type oauthRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ExchangeAuthorizationCode completes the marketplace connection flow,
// turning the partner's authorization code into OAuth credentials that can
// carry split instructions.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	req := oauthRequest{
		GrantType:    "authorization_code",
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Code:         code,
		RedirectURI:  redirectURI,
	}
	return c.exchange(ctx, req)
}

func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	req := oauthRequest{
		GrantType:    "refresh_token",
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RefreshToken: refreshToken,
	}
	return c.exchange(ctx, req)
}

func (c *Client) exchange(ctx context.Context, req oauthRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, "/oauth/token", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errs.Mark(errs.New("token response missing access token"), ErrMalformedResponse)
	}
	return &resp, nil
}
