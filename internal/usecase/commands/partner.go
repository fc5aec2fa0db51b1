package commands

import (
	"context"
	"log/slog"

	"dogcatify-core/internal/domain/partner"
	reqdto "dogcatify-core/internal/handler/dto/request"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOAuthExchangeFailed = errs.New("oauth exchange failed")
	ErrNoRefreshToken      = errs.New("partner has no refresh token")
)

type ConnectPartnerResult struct {
	PartnerID   uuid.UUID
	MPUserID    int64
	Environment partner.Environment
}

type PartnerCommands interface {
	// ConnectGateway finishes the marketplace OAuth flow for a partner
	// and stores the resulting credentials.
	ConnectGateway(ctx context.Context, partnerID uuid.UUID, req reqdto.ConnectPartnerRequest) (*ConnectPartnerResult, error)
	// RefreshGatewayToken rotates an OAuth-connected partner's access
	// token using its stored refresh token.
	RefreshGatewayToken(ctx context.Context, partnerID uuid.UUID) error
}

type partnerUseCaseImpl struct {
	partnerRepo PartnerRepository
	gateway     PaymentGateway
}

func NewPartnerUseCase(partnerRepo PartnerRepository, gateway PaymentGateway) PartnerCommands {
	return &partnerUseCaseImpl{partnerRepo: partnerRepo, gateway: gateway}
}

func (p *partnerUseCaseImpl) ConnectGateway(
	ctx context.Context,
	partnerID uuid.UUID,
	req reqdto.ConnectPartnerRequest,
) (*ConnectPartnerResult, error) {
	if _, err := p.partnerRepo.FindByID(ctx, partnerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := p.gateway.ExchangeAuthorizationCode(ctx, req.GetAuthorizationCode(), req.RedirectURI)
	if err != nil {
		return nil, errs.Mark(err, ErrOAuthExchangeFailed)
	}

	creds, err := partner.NewCredentials(token.AccessToken, token.PublicKey, &token.RefreshToken, partner.ModeOAuth)
	if err != nil {
		return nil, errs.Mark(err, ErrPartnerConfigInvalid)
	}

	err = p.partnerRepo.UpdateCredentials(ctx, partnerID,
		token.AccessToken, token.PublicKey, &token.RefreshToken, &token.UserID, partner.ModeOAuth)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("partner gateway connected",
		"partner_id", partnerID, "environment", creds.Environment())

	return &ConnectPartnerResult{
		PartnerID:   partnerID,
		MPUserID:    token.UserID,
		Environment: creds.Environment(),
	}, nil
}

func (p *partnerUseCaseImpl) RefreshGatewayToken(ctx context.Context, partnerID uuid.UUID) error {
	snap, err := p.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPartnerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.RefreshToken == nil || *snap.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	token, err := p.gateway.RefreshAccessToken(ctx, *snap.RefreshToken)
	if err != nil {
		return errs.Mark(err, ErrOAuthExchangeFailed)
	}

	err = p.partnerRepo.UpdateCredentials(ctx, partnerID,
		token.AccessToken, token.PublicKey, &token.RefreshToken, snap.MPUserID, partner.ModeOAuth)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
