//go:build unit

package partner_test

import (
	"testing"

	"dogcatify-core/internal/domain/partner"
	"dogcatify-core/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		creds, err := builder.NewPartnerBuilder().BuildCredentials()
		require.NoError(t, err)

		assert.Equal(t, partner.ModeOAuth, creds.Mode())
		assert.NotNil(t, creds.RefreshToken())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.PartnerBuilder)
			errIs  error
		}{
			{
				name:   "empty token",
				mutate: func(b *builder.PartnerBuilder) { b.AccessToken = "" },
				errIs:  partner.ErrMissingCredentials,
			},
			{
				name:   "token below minimum length",
				mutate: func(b *builder.PartnerBuilder) { b.AccessToken = "APP_USR-short" },
				errIs:  partner.ErrTokenTooShort,
			},
			{
				name:   "unknown connection mode",
				mutate: func(b *builder.PartnerBuilder) { b.ConnectionMode = "api_key" },
				errIs:  partner.ErrInvalidMode,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewPartnerBuilder().With(tc.mutate).BuildCredentials()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestCredentialsEnvironment(t *testing.T) {
	t.Run("TEST prefix means sandbox", func(t *testing.T) {
		creds, err := builder.NewPartnerBuilder().WithTestToken().BuildCredentials()
		require.NoError(t, err)
		assert.Equal(t, partner.EnvTest, creds.Environment())
	})

	t.Run("anything else means production", func(t *testing.T) {
		creds, err := builder.NewPartnerBuilder().BuildCredentials()
		require.NoError(t, err)
		assert.Equal(t, partner.EnvProduction, creds.Environment())
	})
}

// Split instructions may only travel on production OAuth credentials; every
// other combination must keep the marketplace fee off the wire.
func TestCredentialsAllowsSplit(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.PartnerBuilder)
		want   bool
	}{
		{"production oauth", func(b *builder.PartnerBuilder) {}, true},
		{"test oauth", func(b *builder.PartnerBuilder) { b.WithTestToken() }, false},
		{"production manual", func(b *builder.PartnerBuilder) { b.WithManualMode() }, false},
		{"test manual", func(b *builder.PartnerBuilder) { b.WithTestToken().WithManualMode() }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := builder.NewPartnerBuilder().With(tc.mutate).BuildCredentials()
			require.NoError(t, err)
			assert.Equal(t, tc.want, creds.AllowsSplit())
		})
	}
}

func TestNewAccount(t *testing.T) {
	t.Run("rejects out-of-range tax rate", func(t *testing.T) {
		_, err := builder.NewPartnerBuilder().
			WithTax(decimal.NewFromInt(101), false).
			BuildAccount()
		assert.ErrorIs(t, err, partner.ErrInvalidTaxRate)

		_, err = builder.NewPartnerBuilder().
			WithTax(decimal.NewFromInt(-1), false).
			BuildAccount()
		assert.ErrorIs(t, err, partner.ErrInvalidTaxRate)
	})

	t.Run("commission override beats the platform default", func(t *testing.T) {
		platformDefault := decimal.NewFromInt(5)

		account, err := builder.NewPartnerBuilder().BuildAccount()
		require.NoError(t, err)
		assert.True(t, account.CommissionPct(platformDefault).Equal(platformDefault))

		override := decimal.NewFromInt(8)
		account, err = builder.NewPartnerBuilder().WithCommissionOverride(override).BuildAccount()
		require.NoError(t, err)
		assert.True(t, account.CommissionPct(platformDefault).Equal(override))
	})
}
