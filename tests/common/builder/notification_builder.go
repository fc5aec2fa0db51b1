//go:build unit || e2e

package builder

import (
	"time"

	"dogcatify-core/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationBuilder struct {
	UserID       uuid.UUID
	Title        string
	Body         string
	Payload      []byte
	ScheduledFor time.Time
	RetryCount   int32
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		UserID:       uuid.New(),
		Title:        "Booking reminder",
		Body:         "Your grooming appointment is tomorrow at 10:00",
		Payload:      []byte(`{"screen":"bookings"}`),
		ScheduledFor: time.Now().Add(-time.Minute),
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) WithRetryCount(n int32) *NotificationBuilder {
	b.RetryCount = n
	return b
}

func (b *NotificationBuilder) Build() *notification.Notification {
	return &notification.Notification{
		ID:           uuid.New(),
		UserID:       b.UserID,
		Title:        b.Title,
		Body:         b.Body,
		Payload:      b.Payload,
		ScheduledFor: b.ScheduledFor,
		Status:       notification.StatusPending,
		RetryCount:   b.RetryCount,
	}
}
