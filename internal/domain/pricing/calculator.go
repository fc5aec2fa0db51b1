// Package pricing computes the tax and commission figures for an order.
//
// Rounding policy: all monetary results are rounded to 2 decimal places with
// round-half-up, applied once at the aggregate level. Per-item figures are
// never rounded and then summed; the order total is the single source of
// truth. Partner payout is derived by subtraction from the rounded
// commission, so commission + payout always reproduces the total exactly.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice     = errors.New("item price cannot be negative")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrInvalidTaxRate    = errors.New("tax rate must be between 0 and 100")
	ErrInvalidCommission = errors.New("commission percentage must be between 0 and 100")
)

var oneHundred = decimal.NewFromInt(100)

type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int32
	// Per-item tax rate override; nil falls back to the partner default.
	TaxRate  *decimal.Decimal
	Discount decimal.Decimal
}

func (li LineItem) gross() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt32(li.Quantity)).Sub(li.Discount)
}

type TaxBreakdown struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TaxRate     decimal.Decimal
	TaxIncluded bool
	Total       decimal.Decimal
}

type CommissionSplit struct {
	CommissionAmount decimal.Decimal
	PartnerAmount    decimal.Decimal
}

// ComputeTax derives subtotal, tax and total for a set of line items.
//
// When taxIncluded is true the quoted prices already contain tax:
// subtotal = total / (1 + rate/100). Otherwise tax is added on top of the
// quoted prices. Either way TaxAmount is the difference between Total and
// Subtotal after a single aggregate rounding, never an independently rounded
// figure.
func ComputeTax(items []LineItem, taxRate decimal.Decimal, taxIncluded bool) (TaxBreakdown, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(oneHundred) {
		return TaxBreakdown{}, ErrInvalidTaxRate
	}

	gross := decimal.Zero
	for _, li := range items {
		if li.UnitPrice.IsNegative() {
			return TaxBreakdown{}, ErrNegativePrice
		}
		if li.Quantity <= 0 {
			return TaxBreakdown{}, ErrInvalidQuantity
		}
		gross = gross.Add(li.gross())
	}

	factor := decimal.NewFromInt(1).Add(taxRate.Div(oneHundred))

	if taxIncluded {
		total := gross.Round(2)
		subtotal := gross.Div(factor).Round(2)
		return TaxBreakdown{
			Subtotal:    subtotal,
			TaxAmount:   total.Sub(subtotal),
			TaxRate:     taxRate,
			TaxIncluded: true,
			Total:       total,
		}, nil
	}

	subtotal := gross.Round(2)
	tax := gross.Mul(taxRate).Div(oneHundred).Round(2)
	return TaxBreakdown{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TaxRate:     taxRate,
		TaxIncluded: false,
		Total:       subtotal.Add(tax),
	}, nil
}

// ComputeCommission splits a total between the platform and the partner.
// PartnerAmount is total minus the rounded commission, so the two always add
// back up to the total with no rounding gap.
func ComputeCommission(total, commissionPct decimal.Decimal) (CommissionSplit, error) {
	if commissionPct.IsNegative() || commissionPct.GreaterThan(oneHundred) {
		return CommissionSplit{}, ErrInvalidCommission
	}

	commission := total.Mul(commissionPct).Div(oneHundred).Round(2)
	return CommissionSplit{
		CommissionAmount: commission,
		PartnerAmount:    total.Sub(commission),
	}, nil
}

// ItemTaxBreakdown produces the per-item receipt figures using the item's own
// tax rate when present, else the partner default. Informational only: these
// are not summed back into the order total.
func ItemTaxBreakdown(item LineItem, defaultRate decimal.Decimal, taxIncluded bool) (TaxBreakdown, error) {
	rate := defaultRate
	if item.TaxRate != nil {
		rate = *item.TaxRate
	}
	return ComputeTax([]LineItem{item}, rate, taxIncluded)
}
