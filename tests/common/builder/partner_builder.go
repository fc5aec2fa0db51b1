//go:build unit || e2e

package builder

import (
	dompartner "dogcatify-core/internal/domain/partner"
	"dogcatify-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PartnerBuilder struct {
	ID                 uuid.UUID
	CommissionOverride *decimal.Decimal
	TaxRate            decimal.Decimal
	TaxIncluded        bool
	AccessToken        string
	PublicKey          string
	RefreshToken       *string
	ConnectionMode     dompartner.ConnectionMode
	MPUserID           *int64
}

func NewPartnerBuilder() *PartnerBuilder {
	refresh := "TG-refresh-token-0123456789"
	mpUserID := int64(987654321)
	return &PartnerBuilder{
		ID:             uuid.New(),
		TaxRate:        decimal.NewFromInt(22),
		TaxIncluded:    false,
		AccessToken:    "APP_USR-1234567890-production-token",
		PublicKey:      "APP_USR-public-key-1234",
		RefreshToken:   &refresh,
		ConnectionMode: dompartner.ModeOAuth,
		MPUserID:       &mpUserID,
	}
}

func (b *PartnerBuilder) With(mutate func(*PartnerBuilder)) *PartnerBuilder {
	mutate(b)
	return b
}

func (b *PartnerBuilder) WithTestToken() *PartnerBuilder {
	b.AccessToken = "TEST-1234567890-sandbox-token"
	return b
}

func (b *PartnerBuilder) WithManualMode() *PartnerBuilder {
	b.ConnectionMode = dompartner.ModeManual
	b.RefreshToken = nil
	b.MPUserID = nil
	return b
}

func (b *PartnerBuilder) WithCommissionOverride(pct decimal.Decimal) *PartnerBuilder {
	b.CommissionOverride = &pct
	return b
}

func (b *PartnerBuilder) WithTax(rate decimal.Decimal, included bool) *PartnerBuilder {
	b.TaxRate = rate
	b.TaxIncluded = included
	return b
}

// Build methods
func (b *PartnerBuilder) BuildCredentials() (dompartner.Credentials, error) {
	return dompartner.NewCredentials(b.AccessToken, b.PublicKey, b.RefreshToken, b.ConnectionMode)
}

func (b *PartnerBuilder) BuildAccount() (*dompartner.Account, error) {
	creds, err := b.BuildCredentials()
	if err != nil {
		return nil, err
	}
	return dompartner.NewAccount(b.ID, b.CommissionOverride, b.TaxRate, b.TaxIncluded, creds, b.MPUserID)
}

func (b *PartnerBuilder) BuildSnapshot() *commands.PartnerSnapshot {
	return &commands.PartnerSnapshot{
		ID:                 b.ID,
		CommissionOverride: b.CommissionOverride,
		TaxRate:            b.TaxRate,
		TaxIncluded:        b.TaxIncluded,
		AccessToken:        b.AccessToken,
		PublicKey:          b.PublicKey,
		RefreshToken:       b.RefreshToken,
		ConnectionMode:     string(b.ConnectionMode),
		MPUserID:           b.MPUserID,
	}
}
