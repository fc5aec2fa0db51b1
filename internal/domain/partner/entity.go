package partner

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingCredentials = errors.New("partner has no payment credentials")
	ErrTokenTooShort      = errors.New("access token below minimum plausible length")
	ErrInvalidMode        = errors.New("invalid credential connection mode")
	ErrInvalidTaxRate     = errors.New("partner tax rate must be between 0 and 100")
)

// MinTokenLen filters out obviously truncated or placeholder tokens before we
// spend a network round trip validating them.
const MinTokenLen = 16

// testTokenPrefix is the gateway's sandbox credential convention. The
// environment is inferred from it alone; a separate flag could drift.
const testTokenPrefix = "TEST-"

type Credentials struct {
	accessToken  string
	publicKey    string
	refreshToken *string
	mode         ConnectionMode
}

func NewCredentials(accessToken, publicKey string, refreshToken *string, mode ConnectionMode) (Credentials, error) {
	if accessToken == "" {
		return Credentials{}, ErrMissingCredentials
	}
	if len(accessToken) < MinTokenLen {
		return Credentials{}, ErrTokenTooShort
	}
	if !mode.IsValid() {
		return Credentials{}, ErrInvalidMode
	}
	return Credentials{
		accessToken:  accessToken,
		publicKey:    publicKey,
		refreshToken: refreshToken,
		mode:         mode,
	}, nil
}

func (c Credentials) AccessToken() string   { return c.accessToken }
func (c Credentials) PublicKey() string     { return c.publicKey }
func (c Credentials) RefreshToken() *string { return c.refreshToken }
func (c Credentials) Mode() ConnectionMode  { return c.mode }

func (c Credentials) Environment() Environment {
	if strings.HasPrefix(c.accessToken, testTokenPrefix) {
		return EnvTest
	}
	return EnvProduction
}

// AllowsSplit reports whether a checkout session for this credential set may
// carry marketplace-fee instructions. The gateway rejects split fields on
// test or manually configured credentials as "mixed credentials".
func (c Credentials) AllowsSplit() bool {
	return c.mode == ModeOAuth && c.Environment() == EnvProduction
}

type Account struct {
	id                 uuid.UUID
	commissionOverride *decimal.Decimal
	taxRate            decimal.Decimal
	taxIncluded        bool
	credentials        Credentials
	// Gateway-side user id of the partner; present only after an OAuth
	// connect, and required as collector for split payments.
	mpUserID *int64
}

func NewAccount(id uuid.UUID, commissionOverride *decimal.Decimal, taxRate decimal.Decimal, taxIncluded bool, creds Credentials, mpUserID *int64) (*Account, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidTaxRate
	}
	return &Account{
		id:                 id,
		commissionOverride: commissionOverride,
		taxRate:            taxRate,
		taxIncluded:        taxIncluded,
		credentials:        creds,
		mpUserID:           mpUserID,
	}, nil
}

func (a *Account) ID() uuid.UUID            { return a.id }
func (a *Account) TaxRate() decimal.Decimal { return a.taxRate }
func (a *Account) TaxIncluded() bool        { return a.taxIncluded }
func (a *Account) Credentials() Credentials { return a.credentials }
func (a *Account) MPUserID() *int64         { return a.mpUserID }

// CommissionPct resolves the partner's commission: its own override when set,
// otherwise the platform default.
func (a *Account) CommissionPct(platformDefault decimal.Decimal) decimal.Decimal {
	if a.commissionOverride != nil {
		return *a.commissionOverride
	}
	return platformDefault
}

func (a *Account) CommissionOverride() *decimal.Decimal { return a.commissionOverride }
