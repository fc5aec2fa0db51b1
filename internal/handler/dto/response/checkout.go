package response

import (
	"dogcatify-core/internal/usecase/commands"
)

type CheckoutResponse struct {
	Order        *OrderResponse `json:"order"`
	PreferenceID string         `json:"preference_id"`
	CheckoutURL  string         `json:"checkout_url"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Order:        FromOrderView(r.Order),
		PreferenceID: r.PreferenceID,
		CheckoutURL:  r.CheckoutURL,
	}
}

type ConnectPartnerResponse struct {
	PartnerID   string `json:"partner_id"`
	MPUserID    int64  `json:"mp_user_id"`
	Environment string `json:"environment"`
}

func FromConnectResult(r *commands.ConnectPartnerResult) *ConnectPartnerResponse {
	return &ConnectPartnerResponse{
		PartnerID:   r.PartnerID.String(),
		MPUserID:    r.MPUserID,
		Environment: string(r.Environment),
	}
}
