package repository

import (
	"context"

	"dogcatify-core/internal/domain/booking"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (
			id, order_id, service_id, partner_id, customer_id, pet_id,
			scheduled_for, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.OrderID(), b.ServiceID(), b.PartnerID(), b.CustomerID(), b.PetID(),
		b.ScheduledFor(), string(b.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) DeleteByOrderID(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE order_id = $1`, orderID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected(), nil
}

// CancelByOrderID skips rows already cancelled, so re-running a sweep over
// the same order is a no-op.
func (r *BookingRepository) CancelByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE order_id = $1 AND status <> $2`,
		orderID, string(booking.StatusCancelled),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return tag.RowsAffected(), nil
}
