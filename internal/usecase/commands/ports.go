package commands

import (
	"context"
	"time"

	"dogcatify-core/internal/domain/booking"
	"dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/domain/partner"
	"dogcatify-core/internal/infra/db"
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep the command layer off the read-side query types.
type PartnerSnapshot struct {
	ID                 uuid.UUID
	CommissionOverride *decimal.Decimal
	TaxRate            decimal.Decimal
	TaxIncluded        bool
	AccessToken        string
	PublicKey          string
	RefreshToken       *string
	ConnectionMode     string
	MPUserID           *int64
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	// Delete removes an order only while rollback is still legal: unpaid
	// status and no payment session attached.
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	// AttachPreference is conditional on status=pending with no session yet.
	AttachPreference(ctx context.Context, id uuid.UUID, preferenceID string) (int64, error)
	// UpdateStatus applies a conditional transition: the row moves to
	// `to` only if its current status is one of `from`. Returns rows
	// affected; zero means a concurrent writer got there first.
	UpdateStatus(ctx context.Context, id uuid.UUID, from []order.Status, to order.Status) (int64, error)
	FindSnapshot(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

type OrderSnapshot struct {
	ID           uuid.UUID
	PartnerID    uuid.UUID
	CustomerID   uuid.UUID
	Status       order.Status
	Kind         order.Kind
	PreferenceID *string
	CreatedAt    time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	DeleteByOrderID(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (int64, error)
	// CancelByOrderID is idempotent: cancelling an already-cancelled
	// booking matches zero rows and is a no-op.
	CancelByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type PartnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PartnerSnapshot, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, accessToken, publicKey string, refreshToken *string, mpUserID *int64, mode partner.ConnectionMode) error
}

// PaymentGateway is the client-side slice of the external gateway the
// checkout path needs. The sweeper consumes the search/cancel slice through
// its own port.
type PaymentGateway interface {
	ValidateCredentials(ctx context.Context, accessToken string) error
	CreatePreference(ctx context.Context, creds partner.Credentials, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
	GetPayment(ctx context.Context, accessToken string, paymentID int64) (*mercadopago.Payment, error)
	GetPaymentAsPlatform(ctx context.Context, paymentID int64) (*mercadopago.Payment, error)
	ExchangeAuthorizationCode(ctx context.Context, code, redirectURI string) (*mercadopago.TokenResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*mercadopago.TokenResponse, error)
}

// OrderReader is the read-after-write surface the commands return through.
type OrderReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error)
}
