package request

import (
	"strings"
	"time"

	"dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutItemRequest struct {
	Name      string           `json:"name" binding:"required"`
	UnitPrice decimal.Decimal  `json:"unit_price" binding:"required"`
	Quantity  int32            `json:"quantity" binding:"required,min=1"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
}

type CheckoutBookingRequest struct {
	ServiceID    uuid.UUID  `json:"service_id" binding:"required"`
	PetID        *uuid.UUID `json:"pet_id,omitempty"`
	ScheduledFor time.Time  `json:"scheduled_for" binding:"required"`
}

type CheckoutRequest struct {
	PartnerID    uuid.UUID               `json:"partner_id" binding:"required"`
	CustomerID   uuid.UUID               `json:"customer_id" binding:"required"`
	Kind         string                  `json:"kind" binding:"required,oneof=product_purchase service_booking"`
	Currency     string                  `json:"currency" binding:"required,len=3"`
	Items        []CheckoutItemRequest   `json:"items" binding:"required,min=1,dive"`
	ShippingCost *decimal.Decimal        `json:"shipping_cost,omitempty"`
	Booking      *CheckoutBookingRequest `json:"booking,omitempty"`
	PayerEmail   *string                 `json:"payer_email,omitempty"`
}

func (r CheckoutRequest) GetKind() order.Kind {
	return order.Kind(strings.TrimSpace(r.Kind))
}

func (r CheckoutRequest) GetShippingCost() decimal.Decimal {
	if r.ShippingCost == nil {
		return decimal.Zero
	}
	return *r.ShippingCost
}

func (r CheckoutRequest) GetPayerEmail() *string {
	if r.PayerEmail == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PayerEmail)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ToLineItems maps the wire items to the pricing inputs.
func (r CheckoutRequest) ToLineItems() []pricing.LineItem {
	items := make([]pricing.LineItem, len(r.Items))
	for i, it := range r.Items {
		discount := decimal.Zero
		if it.Discount != nil {
			discount = *it.Discount
		}
		items[i] = pricing.LineItem{
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			TaxRate:   it.TaxRate,
			Discount:  discount,
		}
	}
	return items
}
