package response

import (
	"time"

	"dogcatify-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	Name      string  `json:"name"`
	UnitPrice string  `json:"unit_price"`
	Quantity  int32   `json:"quantity"`
	TaxRate   *string `json:"tax_rate,omitempty"`
	Subtotal  string  `json:"subtotal"`
	TaxAmount string  `json:"tax_amount"`
	Discount  string  `json:"discount"`
	Currency  string  `json:"currency"`
}

// Money travels as fixed-point strings end to end; float json numbers stop
// at the gateway boundary.
type OrderResponse struct {
	ID               string              `json:"id"`
	PartnerID        string              `json:"partner_id"`
	CustomerID       string              `json:"customer_id"`
	Items            []OrderItemResponse `json:"items"`
	Subtotal         string              `json:"subtotal"`
	TaxAmount        string              `json:"tax_amount"`
	ShippingCost     string              `json:"shipping_cost"`
	TotalAmount      string              `json:"total_amount"`
	CommissionAmount string              `json:"commission_amount"`
	PartnerAmount    string              `json:"partner_amount"`
	Kind             string              `json:"kind"`
	Status           string              `json:"status"`
	PreferenceID     *string             `json:"preference_id,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItemResponse{
			Name:      it.Name,
			UnitPrice: money(it.UnitPrice),
			Quantity:  it.Quantity,
			TaxRate:   rate(it.TaxRate),
			Subtotal:  money(it.Subtotal),
			TaxAmount: money(it.TaxAmount),
			Discount:  money(it.Discount),
			Currency:  it.Currency,
		}
	}
	return &OrderResponse{
		ID:               v.ID.String(),
		PartnerID:        v.PartnerID.String(),
		CustomerID:       v.CustomerID.String(),
		Items:            items,
		Subtotal:         money(v.Subtotal),
		TaxAmount:        money(v.TaxAmount),
		ShippingCost:     money(v.ShippingCost),
		TotalAmount:      money(v.TotalAmount),
		CommissionAmount: money(v.CommissionAmount),
		PartnerAmount:    money(v.PartnerAmount),
		Kind:             v.Kind,
		Status:           v.Status,
		PreferenceID:     v.PreferenceID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

type OrderListItemResponse struct {
	ID          string    `json:"id"`
	PartnerID   string    `json:"partner_id"`
	CustomerID  string    `json:"customer_id"`
	TotalAmount string    `json:"total_amount"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListView) []*OrderListItemResponse {
	res := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		res[i] = &OrderListItemResponse{
			ID:          it.ID.String(),
			PartnerID:   it.PartnerID.String(),
			CustomerID:  it.CustomerID.String(),
			TotalAmount: money(it.TotalAmount),
			Kind:        it.Kind,
			Status:      it.Status,
			CreatedAt:   it.CreatedAt,
		}
	}
	return res
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func rate(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
