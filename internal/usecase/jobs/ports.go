package jobs

import (
	"context"
	"time"

	"dogcatify-core/internal/domain/notification"
	"dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/infra/push"
	"dogcatify-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderSweepRepository interface {
	FindExpired(ctx context.Context, cutoff time.Time, limit int32) ([]*commands.OrderSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from []order.Status, to order.Status) (int64, error)
}

type BookingSweepRepository interface {
	CancelByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type PartnerTokenStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.PartnerSnapshot, error)
}

// SweepGateway is the payment search/cancel slice of the gateway client.
type SweepGateway interface {
	SearchByExternalReference(ctx context.Context, accessToken, externalReference string) ([]mercadopago.Payment, error)
	CancelPayment(ctx context.Context, accessToken string, paymentID int64) error
}

type NotificationStore interface {
	FindDue(ctx context.Context, now time.Time, limit int32) ([]*notification.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, channel notification.Channel, sentAt time.Time) error
	RecordFailure(ctx context.Context, id uuid.UUID, reason string) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

// DeviceTokens is a user's current push token per channel; either may be nil.
type DeviceTokens struct {
	ExpoToken *string
	FCMToken  *string
}

func (t DeviceTokens) Empty() bool {
	return t.ExpoToken == nil && t.FCMToken == nil
}

type DeviceTokenStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (DeviceTokens, error)
	Invalidate(ctx context.Context, userID uuid.UUID, token string) error
}

type PushSender interface {
	Send(ctx context.Context, token string, msg push.Message) error
}
