//go:build unit || e2e

package builder

import (
	"time"

	domorder "dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/domain/pricing"
	reqdto "dogcatify-core/internal/handler/dto/request"
	"dogcatify-core/internal/usecase/commands"
	"dogcatify-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemSpec struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
	TaxRate   *decimal.Decimal
	Discount  *decimal.Decimal
}

type OrderBuilder struct {
	PartnerID     uuid.UUID
	CustomerID    uuid.UUID
	Kind          string
	Currency      string
	Items         []OrderItemSpec
	ShippingCost  *decimal.Decimal
	Booking       *reqdto.CheckoutBookingRequest
	PayerEmail    *string
	TaxRate       decimal.Decimal
	TaxIncluded   bool
	CommissionPct decimal.Decimal
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		PartnerID:  uuid.New(),
		CustomerID: uuid.New(),
		Kind:       string(domorder.KindProductPurchase),
		Currency:   "UYU",
		Items: []OrderItemSpec{
			{
				Name:      "Dog food 10kg",
				UnitPrice: decimal.NewFromInt(100),
				Quantity:  2,
			},
		},
		TaxRate:       decimal.NewFromInt(22),
		TaxIncluded:   false,
		CommissionPct: decimal.NewFromInt(5),
		CreatedAt:     time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithKind(kind string) *OrderBuilder {
	b.Kind = kind
	return b
}

func (b *OrderBuilder) WithItems(items ...OrderItemSpec) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) WithShipping(cost decimal.Decimal) *OrderBuilder {
	b.ShippingCost = &cost
	return b
}

func (b *OrderBuilder) WithBooking(serviceID uuid.UUID, scheduledFor time.Time) *OrderBuilder {
	b.Booking = &reqdto.CheckoutBookingRequest{
		ServiceID:    serviceID,
		ScheduledFor: scheduledFor,
	}
	return b
}

func (b *OrderBuilder) WithTax(rate decimal.Decimal, included bool) *OrderBuilder {
	b.TaxRate = rate
	b.TaxIncluded = included
	return b
}

// Build methods
func (b *OrderBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	items := make([]reqdto.CheckoutItemRequest, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.CheckoutItemRequest{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			TaxRate:   it.TaxRate,
			Discount:  it.Discount,
		}
	}
	return reqdto.CheckoutRequest{
		PartnerID:    b.PartnerID,
		CustomerID:   b.CustomerID,
		Kind:         b.Kind,
		Currency:     b.Currency,
		Items:        items,
		ShippingCost: b.ShippingCost,
		Booking:      b.Booking,
		PayerEmail:   b.PayerEmail,
	}
}

// BuildDomain derives the order entity the same way checkout would: tax and
// commission from the pricing package, per-item receipt figures attached.
func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	req := b.BuildCheckoutRequestDTO()
	lineItems := req.ToLineItems()

	breakdown, err := pricing.ComputeTax(lineItems, b.TaxRate, b.TaxIncluded)
	if err != nil {
		return nil, err
	}

	total := breakdown.Total.Add(req.GetShippingCost())
	split, err := pricing.ComputeCommission(total, b.CommissionPct)
	if err != nil {
		return nil, err
	}

	items := make([]domorder.Item, len(lineItems))
	for i, li := range lineItems {
		itemBreakdown, err := pricing.ItemTaxBreakdown(li, b.TaxRate, b.TaxIncluded)
		if err != nil {
			return nil, err
		}
		items[i] = domorder.Item{
			Name:      b.Items[i].Name,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			TaxRate:   li.TaxRate,
			Subtotal:  itemBreakdown.Subtotal,
			TaxAmount: itemBreakdown.TaxAmount,
			Discount:  li.Discount,
			Currency:  b.Currency,
		}
	}

	return domorder.NewOrder(domorder.Spec{
		PartnerID:        b.PartnerID,
		CustomerID:       b.CustomerID,
		Items:            items,
		Subtotal:         breakdown.Subtotal,
		TaxAmount:        breakdown.TaxAmount,
		ShippingCost:     req.GetShippingCost(),
		TotalAmount:      total,
		CommissionAmount: split.CommissionAmount,
		PartnerAmount:    split.PartnerAmount,
		Kind:             req.GetKind(),
	})
}

func (b *OrderBuilder) BuildSnapshot(status domorder.Status, preferenceID *string) *commands.OrderSnapshot {
	return &commands.OrderSnapshot{
		ID:           uuid.New(),
		PartnerID:    b.PartnerID,
		CustomerID:   b.CustomerID,
		Status:       status,
		Kind:         domorder.Kind(b.Kind),
		PreferenceID: preferenceID,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildViewQuery() *queries.OrderView {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	items := make([]queries.OrderItemView, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = queries.OrderItemView{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			TaxRate:   it.TaxRate,
			Subtotal:  it.Subtotal,
			TaxAmount: it.TaxAmount,
			Discount:  it.Discount,
			Currency:  it.Currency,
		}
	}
	return &queries.OrderView{
		ID:               o.ID(),
		PartnerID:        o.PartnerID(),
		CustomerID:       o.CustomerID(),
		Items:            items,
		Subtotal:         o.Subtotal(),
		TaxAmount:        o.TaxAmount(),
		ShippingCost:     o.ShippingCost(),
		TotalAmount:      o.TotalAmount(),
		CommissionAmount: o.CommissionAmount(),
		PartnerAmount:    o.PartnerAmount(),
		Kind:             string(o.Kind()),
		Status:           string(o.Status()),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}
