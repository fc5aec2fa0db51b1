package repository

import (
	"context"
	"time"

	"dogcatify-core/internal/domain/notification"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/db"
	"dogcatify-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

// FindDue returns pending notifications whose scheduled time has passed,
// oldest first.
func (r *NotificationRepository) FindDue(ctx context.Context, now time.Time, limit int32) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, body, payload, scheduled_for,
		       status, retry_count, error_message, sent_channel, sent_at
		FROM scheduled_notifications
		WHERE status = $1 AND scheduled_for <= $2
		ORDER BY scheduled_for
		LIMIT $3`,
		string(notification.StatusPending), now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due notifications", err)
	}
	defer rows.Close()

	var result []*notification.Notification
	for rows.Next() {
		var (
			n            notification.Notification
			status       string
			errorMessage pgtype.Text
			sentChannel  pgtype.Text
			scheduledFor pgtype.Timestamptz
			sentAt       pgtype.Timestamptz
		)
		err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Body, &n.Payload, &scheduledFor,
			&status, &n.RetryCount, &errorMessage, &sentChannel, &sentAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		n.Status = notification.Status(status)
		n.ScheduledFor = pgconv.TimeFromPgtype(scheduledFor)
		n.ErrorMessage = pgconv.StringPtrFromPgtype(errorMessage)
		if sentChannel.Valid {
			ch := notification.Channel(sentChannel.String)
			n.SentChannel = &ch
		}
		n.SentAt = pgconv.TimePtrFromPgtype(sentAt)
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return result, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, channel notification.Channel, sentAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE scheduled_notifications
		SET status = $2, sent_channel = $3, sent_at = $4, error_message = NULL, updated_at = now()
		WHERE id = $1`,
		id, string(notification.StatusSent), string(channel), sentAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	return nil
}

// RecordFailure increments retry_count and flips the row to failed once the
// attempt budget is spent. The CASE keeps the counter and the terminal flip
// in one atomic statement.
func (r *NotificationRepository) RecordFailure(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE scheduled_notifications
		SET retry_count = retry_count + 1,
		    status = CASE WHEN retry_count + 1 >= $3 THEN $4 ELSE status END,
		    error_message = $2,
		    updated_at = now()
		WHERE id = $1`,
		id, reason, int32(notification.MaxRetries), string(notification.StatusFailed),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record notification failure", err)
	}
	return nil
}

// MarkFailed is the immediate terminal path: no device token exists, so
// retrying cannot help and no attempt is consumed.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE scheduled_notifications
		SET status = $2, error_message = $3, updated_at = now()
		WHERE id = $1`,
		id, string(notification.StatusFailed), reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification failed", err)
	}
	return nil
}
