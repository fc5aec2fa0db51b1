package repository

import (
	"context"

	"dogcatify-core/internal/domain/partner"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/db"
	"dogcatify-core/internal/pkg/pgconv"
	"dogcatify-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PartnerRepository struct {
	db db.DBTX
}

func NewPartnerRepository(pool db.DBTX) *PartnerRepository {
	return &PartnerRepository{db: pool}
}

func (r *PartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.PartnerSnapshot, error) {
	var (
		snap               commands.PartnerSnapshot
		commissionOverride pgtype.Numeric
		taxRate            pgtype.Numeric
		accessToken        pgtype.Text
		publicKey          pgtype.Text
		refreshToken       pgtype.Text
		mpUserID           pgtype.Int8
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, commission_override, tax_rate, tax_included,
		       mp_access_token, mp_public_key, mp_refresh_token, mp_user_id, mp_connection_mode
		FROM partners WHERE id = $1`,
		id,
	).Scan(
		&snap.ID, &commissionOverride, &taxRate, &snap.TaxIncluded,
		&accessToken, &publicKey, &refreshToken, &mpUserID, &snap.ConnectionMode,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find partner", err)
	}

	if commissionOverride.Valid {
		d, err := pgconv.DecimalFromNumeric(commissionOverride)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid commission override", err)
		}
		snap.CommissionOverride = &d
	}
	if snap.TaxRate, err = pgconv.DecimalFromNumeric(taxRate); err != nil {
		return nil, infra.WrapRepoErr("invalid tax rate", err)
	}
	snap.AccessToken = accessToken.String
	snap.PublicKey = publicKey.String
	snap.RefreshToken = pgconv.StringPtrFromPgtype(refreshToken)
	if mpUserID.Valid {
		snap.MPUserID = &mpUserID.Int64
	}
	return &snap, nil
}

func (r *PartnerRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, accessToken, publicKey string, refreshToken *string, mpUserID *int64, mode partner.ConnectionMode) error {
	var userID pgtype.Int8
	if mpUserID != nil {
		userID = pgtype.Int8{Int64: *mpUserID, Valid: true}
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE partners
		SET mp_access_token = $2, mp_public_key = $3, mp_refresh_token = $4,
		    mp_user_id = $5, mp_connection_mode = $6, updated_at = now()
		WHERE id = $1`,
		id, accessToken, publicKey, pgconv.StringPtrToPgtype(refreshToken), userID, string(mode),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update partner credentials", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	return nil
}
