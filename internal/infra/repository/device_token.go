package repository

import (
	"context"

	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/db"
	"dogcatify-core/internal/pkg/pgconv"
	"dogcatify-core/internal/usecase/jobs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DeviceTokenRepository struct {
	db db.DBTX
}

func NewDeviceTokenRepository(pool db.DBTX) *DeviceTokenRepository {
	return &DeviceTokenRepository{db: pool}
}

// FindByUser returns the most recently refreshed token per channel.
func (r *DeviceTokenRepository) FindByUser(ctx context.Context, userID uuid.UUID) (jobs.DeviceTokens, error) {
	var (
		tokens jobs.DeviceTokens
		expo   pgtype.Text
		fcm    pgtype.Text
	)
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT token FROM device_tokens
			 WHERE user_id = $1 AND channel = 'expo'
			 ORDER BY updated_at DESC LIMIT 1),
			(SELECT token FROM device_tokens
			 WHERE user_id = $1 AND channel = 'fcm'
			 ORDER BY updated_at DESC LIMIT 1)`,
		userID,
	).Scan(&expo, &fcm)
	if err != nil {
		return jobs.DeviceTokens{}, infra.WrapRepoErr("failed to find device tokens", err)
	}
	tokens.ExpoToken = pgconv.StringPtrFromPgtype(expo)
	tokens.FCMToken = pgconv.StringPtrFromPgtype(fcm)
	return tokens, nil
}

// Invalidate removes a token the push provider reported as dead.
func (r *DeviceTokenRepository) Invalidate(ctx context.Context, userID uuid.UUID, token string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM device_tokens WHERE user_id = $1 AND token = $2`,
		userID, token,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to invalidate device token", err)
	}
	return nil
}
