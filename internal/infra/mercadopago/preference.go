package mercadopago

import (
	"context"
	"net/http"

	"dogcatify-core/internal/domain/partner"
	"dogcatify-core/internal/pkg/errs"
)

type PreferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int32   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type PreferencePayer struct {
	Name    string            `json:"name,omitempty"`
	Email   string            `json:"email,omitempty"`
	Phone   map[string]string `json:"phone,omitempty"`
	Address map[string]string `json:"address,omitempty"`
}

type BackURLs struct {
	Success string `json:"success"`
	Pending string `json:"pending"`
	Failure string `json:"failure"`
}

// PreferenceRequest is the checkout-session payload. MarketplaceFee and
// CollectorID are pointers on purpose: they must be absent, not zero, for
// test or manual credentials, or the gateway rejects the request as mixed
// credentials.
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	Payer             *PreferencePayer `json:"payer,omitempty"`
	BackURLs          BackURLs         `json:"back_urls"`
	NotificationURL   string           `json:"notification_url"`
	ExternalReference string           `json:"external_reference"`
	MarketplaceFee    *float64         `json:"marketplace_fee,omitempty"`
	CollectorID       *int64           `json:"collector_id,omitempty"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type Preference struct {
	ID          string
	CheckoutURL string
}

// CreatePreference creates a hosted checkout session under the partner's own
// credentials and returns the environment-appropriate checkout URL: sandbox
// for test tokens, live for production ones. A success response missing that
// URL is malformed, not a soft fallback.
func (c *Client) CreatePreference(ctx context.Context, creds partner.Credentials, req PreferenceRequest) (*Preference, error) {
	var resp preferenceResponse
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", creds.AccessToken(), req, &resp); err != nil {
		return nil, err
	}

	if resp.ID == "" {
		return nil, errs.Mark(errs.New("preference response missing id"), ErrMalformedResponse)
	}

	checkoutURL := resp.InitPoint
	if creds.Environment() == partner.EnvTest {
		checkoutURL = resp.SandboxInitPoint
	}
	if checkoutURL == "" {
		return nil, errs.Mark(errs.New("preference response missing checkout url for environment"), ErrMalformedResponse)
	}

	return &Preference{ID: resp.ID, CheckoutURL: checkoutURL}, nil
}
