package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemView struct {
	Name      string           `json:"name"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Quantity  int32            `json:"quantity"`
	TaxRate   *decimal.Decimal `json:"tax_rate,omitempty"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	TaxAmount decimal.Decimal  `json:"tax_amount"`
	Discount  decimal.Decimal  `json:"discount"`
	Currency  string           `json:"currency"`
}

type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	PartnerID        uuid.UUID       `json:"partner_id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	Items            []OrderItemView `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	PartnerAmount    decimal.Decimal `json:"partner_amount"`
	Kind             string          `json:"kind"`
	Status           string          `json:"status"`
	PreferenceID     *string         `json:"preference_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type OrderListView struct {
	ID          uuid.UUID       `json:"id"`
	PartnerID   uuid.UUID       `json:"partner_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Kind        string          `json:"kind"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderFilter struct {
	PartnerID  *uuid.UUID
	CustomerID *uuid.UUID
	Status     *string
	Limit      int32
}
