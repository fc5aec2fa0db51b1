//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dogcatify-core/internal/domain/partner"
	reqdto "dogcatify-core/internal/handler/dto/request"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/pkg/errs"
	"dogcatify-core/internal/usecase/commands"
	"dogcatify-core/tests/common/builder"
	commandsmock "dogcatify-core/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type partnerMocks struct {
	partnerRepo *commandsmock.MockPartnerRepository
	gateway     *commandsmock.MockPaymentGateway
}

func newPartnerUseCase(ctrl *gomock.Controller) (commands.PartnerCommands, partnerMocks) {
	m := partnerMocks{
		partnerRepo: commandsmock.NewMockPartnerRepository(ctrl),
		gateway:     commandsmock.NewMockPaymentGateway(ctrl),
	}
	return commands.NewPartnerUseCase(m.partnerRepo, m.gateway), m
}

func TestConnectGateway(t *testing.T) {
	ctx := context.Background()
	connectReq := reqdto.ConnectPartnerRequest{
		AuthorizationCode: "TG-auth-code-12345",
		RedirectURI:       "https://app.dogcatify.com/oauth/callback",
	}

	t.Run("exchanges the code and stores the credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		token := &mercadopago.TokenResponse{
			AccessToken:  "APP_USR-fresh-access-token-001",
			RefreshToken: "TG-fresh-refresh-token-001",
			PublicKey:    "APP_USR-public-key-001",
			UserID:       445566,
		}
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().
			ExchangeAuthorizationCode(ctx, "TG-auth-code-12345", connectReq.RedirectURI).
			Return(token, nil)
		m.partnerRepo.EXPECT().
			UpdateCredentials(ctx, snap.ID,
				token.AccessToken, token.PublicKey, &token.RefreshToken, &token.UserID, partner.ModeOAuth).
			Return(nil)

		result, err := uc.ConnectGateway(ctx, snap.ID, connectReq)

		require.NoError(t, err)
		assert.Equal(t, snap.ID, result.PartnerID)
		assert.Equal(t, int64(445566), result.MPUserID)
		assert.Equal(t, partner.EnvProduction, result.Environment)
	})

	t.Run("trims whitespace around the authorization code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		token := &mercadopago.TokenResponse{
			AccessToken:  "TEST-sandbox-access-token-001",
			RefreshToken: "TG-fresh-refresh-token-002",
			PublicKey:    "TEST-public-key-001",
			UserID:       445567,
		}
		padded := connectReq
		padded.AuthorizationCode = "  TG-auth-code-12345 \n"
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().
			ExchangeAuthorizationCode(ctx, "TG-auth-code-12345", connectReq.RedirectURI).
			Return(token, nil)
		m.partnerRepo.EXPECT().
			UpdateCredentials(ctx, snap.ID,
				token.AccessToken, token.PublicKey, &token.RefreshToken, &token.UserID, partner.ModeOAuth).
			Return(nil)

		result, err := uc.ConnectGateway(ctx, snap.ID, padded)

		require.NoError(t, err)
		assert.Equal(t, partner.EnvTest, result.Environment)
	})

	t.Run("unknown partner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		missing := uuid.New()
		m.partnerRepo.EXPECT().FindByID(ctx, missing).
			Return(nil, infra.WrapRepoErr("partner not found", nil, infra.KindNotFound))

		_, err := uc.ConnectGateway(ctx, missing, connectReq)

		assert.True(t, errs.Is(err, commands.ErrPartnerNotFound))
	})

	t.Run("exchange failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().
			ExchangeAuthorizationCode(ctx, gomock.Any(), gomock.Any()).
			Return(nil, mercadopago.ErrUnauthorized)

		_, err := uc.ConnectGateway(ctx, snap.ID, connectReq)

		assert.True(t, errs.Is(err, commands.ErrOAuthExchangeFailed))
	})

	t.Run("exchange returns an unusable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().
			ExchangeAuthorizationCode(ctx, gomock.Any(), gomock.Any()).
			Return(&mercadopago.TokenResponse{AccessToken: "APP_USR-x", UserID: 1}, nil)

		_, err := uc.ConnectGateway(ctx, snap.ID, connectReq)

		assert.True(t, errs.Is(err, commands.ErrPartnerConfigInvalid))
	})

	t.Run("credential store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		token := &mercadopago.TokenResponse{
			AccessToken:  "APP_USR-fresh-access-token-003",
			RefreshToken: "TG-fresh-refresh-token-003",
			PublicKey:    "APP_USR-public-key-003",
			UserID:       445568,
		}
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().
			ExchangeAuthorizationCode(ctx, gomock.Any(), gomock.Any()).
			Return(token, nil)
		m.partnerRepo.EXPECT().
			UpdateCredentials(ctx, snap.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), partner.ModeOAuth).
			Return(errs.New("connection reset"))

		_, err := uc.ConnectGateway(ctx, snap.ID, connectReq)

		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func TestRefreshGatewayToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the stored token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		require.NotNil(t, snap.RefreshToken)
		token := &mercadopago.TokenResponse{
			AccessToken:  "APP_USR-rotated-access-token",
			RefreshToken: "TG-rotated-refresh-token",
			PublicKey:    "APP_USR-rotated-public-key",
			UserID:       445569,
		}
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().RefreshAccessToken(ctx, *snap.RefreshToken).Return(token, nil)
		m.partnerRepo.EXPECT().
			UpdateCredentials(ctx, snap.ID,
				token.AccessToken, token.PublicKey, &token.RefreshToken, snap.MPUserID, partner.ModeOAuth).
			Return(nil)

		err := uc.RefreshGatewayToken(ctx, snap.ID)

		assert.NoError(t, err)
	})

	t.Run("manual partner has nothing to rotate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().WithManualMode().BuildSnapshot()
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)

		err := uc.RefreshGatewayToken(ctx, snap.ID)

		assert.True(t, errs.Is(err, commands.ErrNoRefreshToken))
	})

	t.Run("unknown partner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		missing := uuid.New()
		m.partnerRepo.EXPECT().FindByID(ctx, missing).
			Return(nil, infra.WrapRepoErr("partner not found", nil, infra.KindNotFound))

		err := uc.RefreshGatewayToken(ctx, missing)

		assert.True(t, errs.Is(err, commands.ErrPartnerNotFound))
	})

	t.Run("refresh rejected by the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPartnerUseCase(ctrl)

		snap := builder.NewPartnerBuilder().BuildSnapshot()
		m.partnerRepo.EXPECT().FindByID(ctx, snap.ID).Return(snap, nil)
		m.gateway.EXPECT().RefreshAccessToken(ctx, *snap.RefreshToken).
			Return(nil, mercadopago.ErrUnauthorized)

		err := uc.RefreshGatewayToken(ctx, snap.ID)

		assert.True(t, errs.Is(err, commands.ErrOAuthExchangeFailed))
	})
}
