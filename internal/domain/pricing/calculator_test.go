//go:build unit

package pricing_test

import (
	"testing"

	"dogcatify-core/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(price string, qty int32) pricing.LineItem {
	return pricing.LineItem{UnitPrice: dec(price), Quantity: qty}
}

func TestComputeTax(t *testing.T) {
	t.Run("tax excluded adds tax on top of quoted prices", func(t *testing.T) {
		got, err := pricing.ComputeTax([]pricing.LineItem{item("100", 2)}, dec("22"), false)
		require.NoError(t, err)

		assert.Equal(t, "200.00", got.Subtotal.StringFixed(2))
		assert.Equal(t, "44.00", got.TaxAmount.StringFixed(2))
		assert.Equal(t, "244.00", got.Total.StringFixed(2))
		assert.False(t, got.TaxIncluded)
	})

	t.Run("tax included extracts tax from quoted prices", func(t *testing.T) {
		got, err := pricing.ComputeTax([]pricing.LineItem{item("100", 2)}, dec("22"), true)
		require.NoError(t, err)

		// 200 / 1.22 = 163.9344... -> 163.93, tax is the remainder
		assert.Equal(t, "200.00", got.Total.StringFixed(2))
		assert.Equal(t, "163.93", got.Subtotal.StringFixed(2))
		assert.Equal(t, "36.07", got.TaxAmount.StringFixed(2))
		assert.True(t, got.TaxIncluded)
	})

	t.Run("included figures always close to the total", func(t *testing.T) {
		cases := []struct {
			name  string
			items []pricing.LineItem
			rate  string
		}{
			{"single cent", []pricing.LineItem{item("0.01", 1)}, "22"},
			{"odd total", []pricing.LineItem{item("33.33", 3)}, "22"},
			{"large order", []pricing.LineItem{item("1999.99", 7)}, "10"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := pricing.ComputeTax(tc.items, dec(tc.rate), true)
				require.NoError(t, err)
				assert.True(t, got.Subtotal.Add(got.TaxAmount).Equal(got.Total),
					"subtotal %s + tax %s != total %s", got.Subtotal, got.TaxAmount, got.Total)
			})
		}
	})

	t.Run("rounding happens once at the aggregate", func(t *testing.T) {
		// Three 0.10 items at 22%: per-item tax rounds to 0.02 each
		// (0.06 summed); the aggregate 0.066 rounds to 0.07.
		items := []pricing.LineItem{item("0.10", 1), item("0.10", 1), item("0.10", 1)}
		got, err := pricing.ComputeTax(items, dec("22"), false)
		require.NoError(t, err)

		assert.Equal(t, "0.07", got.TaxAmount.StringFixed(2))
		assert.Equal(t, "0.37", got.Total.StringFixed(2))
	})

	t.Run("discount reduces the taxed base", func(t *testing.T) {
		li := pricing.LineItem{UnitPrice: dec("100"), Quantity: 2, Discount: dec("50")}
		got, err := pricing.ComputeTax([]pricing.LineItem{li}, dec("22"), false)
		require.NoError(t, err)

		assert.Equal(t, "150.00", got.Subtotal.StringFixed(2))
		assert.Equal(t, "33.00", got.TaxAmount.StringFixed(2))
	})

	t.Run("zero rate yields no tax either way", func(t *testing.T) {
		for _, included := range []bool{true, false} {
			got, err := pricing.ComputeTax([]pricing.LineItem{item("50", 1)}, decimal.Zero, included)
			require.NoError(t, err)
			assert.Equal(t, "0.00", got.TaxAmount.StringFixed(2))
			assert.Equal(t, "50.00", got.Total.StringFixed(2))
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			items []pricing.LineItem
			rate  string
			errIs error
		}{
			{"negative rate", []pricing.LineItem{item("10", 1)}, "-1", pricing.ErrInvalidTaxRate},
			{"rate above 100", []pricing.LineItem{item("10", 1)}, "101", pricing.ErrInvalidTaxRate},
			{"negative price", []pricing.LineItem{item("-10", 1)}, "22", pricing.ErrNegativePrice},
			{"zero quantity", []pricing.LineItem{item("10", 0)}, "22", pricing.ErrInvalidQuantity},
			{"negative quantity", []pricing.LineItem{item("10", -2)}, "22", pricing.ErrInvalidQuantity},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pricing.ComputeTax(tc.items, dec(tc.rate), false)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestComputeCommission(t *testing.T) {
	t.Run("split always adds back to the total", func(t *testing.T) {
		cases := []struct {
			name               string
			total, pct         string
			commission, payout string
		}{
			{"even split", "244.00", "5", "12.20", "231.80"},
			{"rounds half up", "99.99", "5", "5.00", "94.99"},
			{"sub-cent commission", "0.01", "5", "0.00", "0.01"},
			{"zero commission", "100.00", "0", "0.00", "100.00"},
			{"full commission", "100.00", "100", "100.00", "0.00"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := pricing.ComputeCommission(dec(tc.total), dec(tc.pct))
				require.NoError(t, err)

				assert.Equal(t, tc.commission, got.CommissionAmount.StringFixed(2))
				assert.Equal(t, tc.payout, got.PartnerAmount.StringFixed(2))
				assert.True(t, got.CommissionAmount.Add(got.PartnerAmount).Equal(dec(tc.total)))
			})
		}
	})

	t.Run("validation", func(t *testing.T) {
		_, err := pricing.ComputeCommission(dec("100"), dec("-1"))
		assert.ErrorIs(t, err, pricing.ErrInvalidCommission)

		_, err = pricing.ComputeCommission(dec("100"), dec("100.01"))
		assert.ErrorIs(t, err, pricing.ErrInvalidCommission)
	})
}

func TestItemTaxBreakdown(t *testing.T) {
	t.Run("item rate overrides the partner default", func(t *testing.T) {
		rate := dec("10")
		li := pricing.LineItem{UnitPrice: dec("100"), Quantity: 1, TaxRate: &rate}

		got, err := pricing.ItemTaxBreakdown(li, dec("22"), false)
		require.NoError(t, err)

		assert.Equal(t, "10.00", got.TaxAmount.StringFixed(2))
		assert.True(t, got.TaxRate.Equal(rate))
	})

	t.Run("falls back to the partner default", func(t *testing.T) {
		li := pricing.LineItem{UnitPrice: dec("100"), Quantity: 1}

		got, err := pricing.ItemTaxBreakdown(li, dec("22"), false)
		require.NoError(t, err)

		assert.Equal(t, "22.00", got.TaxAmount.StringFixed(2))
	})
}
