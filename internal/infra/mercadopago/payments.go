package mercadopago

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Payment statuses the sweeper may still cancel. Anything else is either
// final or owned by the webhook flow.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusInProcess = "in_process"
	PaymentStatusApproved  = "approved"
	PaymentStatusRejected  = "rejected"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
}

func (p Payment) Cancellable() bool {
	return p.Status == PaymentStatusPending || p.Status == PaymentStatusInProcess
}

type paymentSearchResponse struct {
	Results []Payment `json:"results"`
}

// SearchByExternalReference lists the gateway payments tied to one of our
// order ids. An abandoned checkout commonly has none.
func (c *Client) SearchByExternalReference(ctx context.Context, accessToken, externalReference string) ([]Payment, error) {
	path := "/v1/payments/search?external_reference=" + url.QueryEscape(externalReference)

	var resp paymentSearchResponse
	if err := c.do(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) GetPayment(ctx context.Context, accessToken string, paymentID int64) (*Payment, error) {
	var p Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/payments/%d", paymentID), accessToken, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPaymentAsPlatform reads a payment with the marketplace-level token.
// Webhook reconciliation uses it: the notification names a payment before we
// know which partner's credentials created it.
func (c *Client) GetPaymentAsPlatform(ctx context.Context, paymentID int64) (*Payment, error) {
	return c.GetPayment(ctx, c.platformToken, paymentID)
}

// CancelPayment asks the gateway to cancel an in-flight payment. Callers
// treat failures as best effort; the payment may already be in a final state.
func (c *Client) CancelPayment(ctx context.Context, accessToken string, paymentID int64) error {
	body := map[string]string{"status": PaymentStatusCancelled}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/payments/%d", paymentID), accessToken, body, nil)
}
