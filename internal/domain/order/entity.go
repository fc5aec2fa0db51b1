package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems            = errors.New("order needs at least one item")
	ErrInvalidKind        = errors.New("invalid order kind")
	ErrTotalMismatch      = errors.New("total does not match subtotal + tax + shipping")
	ErrSplitMismatch      = errors.New("commission + partner amount does not match total")
	ErrInvalidTransition  = errors.New("illegal order status transition")
	ErrSessionAlreadySet  = errors.New("payment session reference already attached")
	ErrRollbackNotAllowed = errors.New("order is no longer eligible for rollback")
	ErrInvalidCurrency    = errors.New("item currency is required")
)

// roundingTolerance absorbs the sub-cent drift the aggregate rounding policy
// allows between the stored figures.
var roundingTolerance = decimal.NewFromFloat(0.01)

type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
	TaxRate   *decimal.Decimal
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Discount  decimal.Decimal
	Currency  string
}

type Order struct {
	id               uuid.UUID
	partnerID        uuid.UUID
	customerID       uuid.UUID
	items            []Item
	subtotal         decimal.Decimal
	taxAmount        decimal.Decimal
	shippingCost     decimal.Decimal
	totalAmount      decimal.Decimal
	commissionAmount decimal.Decimal
	partnerAmount    decimal.Decimal
	kind             Kind
	status           Status
	preferenceID     *string
	createdAt        time.Time
	updatedAt        time.Time
}

type Spec struct {
	PartnerID        uuid.UUID
	CustomerID       uuid.UUID
	Items            []Item
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	ShippingCost     decimal.Decimal
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	PartnerAmount    decimal.Decimal
	Kind             Kind
}

func NewOrder(spec Spec) (*Order, error) {
	if len(spec.Items) == 0 {
		return nil, ErrNoItems
	}
	if !spec.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	for _, it := range spec.Items {
		if it.Currency == "" {
			return nil, ErrInvalidCurrency
		}
	}

	recomputed := spec.Subtotal.Add(spec.TaxAmount).Add(spec.ShippingCost)
	if spec.TotalAmount.Sub(recomputed).Abs().GreaterThan(roundingTolerance) {
		return nil, ErrTotalMismatch
	}
	// The split is derived by subtraction upstream, so it must close exactly.
	if !spec.CommissionAmount.Add(spec.PartnerAmount).Equal(spec.TotalAmount) {
		return nil, ErrSplitMismatch
	}

	return &Order{
		id:               uuid.New(),
		partnerID:        spec.PartnerID,
		customerID:       spec.CustomerID,
		items:            spec.Items,
		subtotal:         spec.Subtotal,
		taxAmount:        spec.TaxAmount,
		shippingCost:     spec.ShippingCost,
		totalAmount:      spec.TotalAmount,
		commissionAmount: spec.CommissionAmount,
		partnerAmount:    spec.PartnerAmount,
		kind:             spec.Kind,
		status:           StatusPending,
	}, nil
}

func ReconstructOrder(
	id, partnerID, customerID uuid.UUID,
	items []Item,
	subtotal, taxAmount, shippingCost, totalAmount, commissionAmount, partnerAmount decimal.Decimal,
	kind Kind,
	status Status,
	preferenceID *string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		partnerID:        partnerID,
		customerID:       customerID,
		items:            items,
		subtotal:         subtotal,
		taxAmount:        taxAmount,
		shippingCost:     shippingCost,
		totalAmount:      totalAmount,
		commissionAmount: commissionAmount,
		partnerAmount:    partnerAmount,
		kind:             kind,
		status:           status,
		preferenceID:     preferenceID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Transition moves the order along the closed edge table. Callers log the
// error; an illegal edge is a programming or data problem, never ignored.
func (o *Order) Transition(to Status) error {
	if !CanTransition(o.status, to) {
		return ErrInvalidTransition
	}
	o.status = to
	return nil
}

// AttachPreference records the gateway session reference and moves the order
// to pending_payment. Once set the order can no longer be rolled back.
func (o *Order) AttachPreference(preferenceID string) error {
	if o.preferenceID != nil {
		return ErrSessionAlreadySet
	}
	if err := o.Transition(StatusPendingPayment); err != nil {
		return err
	}
	o.preferenceID = &preferenceID
	return nil
}

// RollbackAllowed holds only while the order is unpaid and invisible to the
// customer: no payment session may exist yet.
func (o *Order) RollbackAllowed() bool {
	return o.status.IsOpen() && o.preferenceID == nil
}

func (o *Order) IsService() bool {
	return o.kind == KindServiceBooking
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) PartnerID() uuid.UUID              { return o.partnerID }
func (o *Order) CustomerID() uuid.UUID             { return o.customerID }
func (o *Order) Items() []Item                     { return o.items }
func (o *Order) Subtotal() decimal.Decimal         { return o.subtotal }
func (o *Order) TaxAmount() decimal.Decimal        { return o.taxAmount }
func (o *Order) ShippingCost() decimal.Decimal     { return o.shippingCost }
func (o *Order) TotalAmount() decimal.Decimal      { return o.totalAmount }
func (o *Order) CommissionAmount() decimal.Decimal { return o.commissionAmount }
func (o *Order) PartnerAmount() decimal.Decimal    { return o.partnerAmount }
func (o *Order) Kind() Kind                        { return o.kind }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) PreferenceID() *string             { return o.preferenceID }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) UpdatedAt() time.Time              { return o.updatedAt }

// ExternalReference is the stable order id the gateway echoes back through
// webhooks and payment search.
func (o *Order) ExternalReference() string {
	return o.id.String()
}
