package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dogcatify-core/internal/domain/order"
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/pkg/clock"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/errs"
	"dogcatify-core/internal/usecase/commands"
)

var ErrSweepQueryFailed = errs.New("failed to query expired orders")

type SweepResult struct {
	Scanned   int
	Cancelled int
	Skipped   int
	Failed    int
}

type ExpirationSweeper interface {
	// Run cancels one batch of orders stuck unpaid past the timeout.
	// Re-running over the same rows is a no-op.
	Run(ctx context.Context) (SweepResult, error)
}

type sweeperImpl struct {
	orders   OrderSweepRepository
	bookings BookingSweepRepository
	partners PartnerTokenStore
	gateway  SweepGateway
	clock    clock.Clock
	cfg      config.JobsConfig
}

func NewExpirationSweeper(
	orders OrderSweepRepository,
	bookings BookingSweepRepository,
	partners PartnerTokenStore,
	gateway SweepGateway,
	clock clock.Clock,
	cfg config.JobsConfig,
) ExpirationSweeper {
	return &sweeperImpl{
		orders:   orders,
		bookings: bookings,
		partners: partners,
		gateway:  gateway,
		clock:    clock,
		cfg:      cfg,
	}
}

func (s *sweeperImpl) Run(ctx context.Context) (SweepResult, error) {
	cutoff := s.clock.Now().Add(-s.cfg.OrderTimeout)

	expired, err := s.orders.FindExpired(ctx, cutoff, s.cfg.SweepBatchSize)
	if err != nil {
		return SweepResult{}, errs.Mark(err, ErrSweepQueryFailed)
	}

	result := SweepResult{Scanned: len(expired)}
	for _, snap := range expired {
		// One bad order must not sink the batch.
		switch err := s.sweepOne(ctx, snap); {
		case err == nil:
			result.Cancelled++
		case errors.Is(err, errPaymentApproved):
			result.Skipped++
		default:
			result.Failed++
			slog.Warn("order sweep failed",
				"order_id", snap.ID, "error", err)
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
	}

	slog.Info("expiration sweep finished",
		"scanned", result.Scanned, "cancelled", result.Cancelled,
		"skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

var errPaymentApproved = errs.New("payment already approved, leaving order to reconciliation")

func (s *sweeperImpl) sweepOne(ctx context.Context, snap *commands.OrderSnapshot) error {
	// Only an attached preference can have gateway-side payments.
	if snap.PreferenceID != nil {
		if err := s.reconcileGatewayPayments(ctx, snap); err != nil {
			return err
		}
	}

	if snap.Kind == order.KindServiceBooking {
		if _, err := s.bookings.CancelByOrderID(ctx, snap.ID); err != nil {
			return errs.Wrap(err, "failed to cancel booking")
		}
	}

	rows, err := s.orders.UpdateStatus(ctx, snap.ID,
		[]order.Status{order.StatusPending, order.StatusPendingPayment},
		order.StatusCancelled,
	)
	if err != nil {
		return errs.Wrap(err, "failed to cancel order")
	}
	if rows == 0 {
		// Paid or cancelled between query and update; nothing to do.
		slog.Debug("order no longer open, sweep skipped", "order_id", snap.ID)
	}
	return nil
}

// reconcileGatewayPayments cancels whatever in-flight payments exist for the
// order before we cancel it. Best effort under a bounded timeout: an
// unreachable gateway delays the order's cancellation to the next sweep
// instead of blocking the batch. An approved payment aborts the sweep for
// this order; the webhook owns that transition.
func (s *sweeperImpl) reconcileGatewayPayments(ctx context.Context, snap *commands.OrderSnapshot) error {
	partnerSnap, err := s.partners.FindByID(ctx, snap.PartnerID)
	if err != nil {
		return errs.Wrap(err, "failed to load partner for sweep")
	}

	gwCtx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()

	payments, err := s.gateway.SearchByExternalReference(gwCtx, partnerSnap.AccessToken, snap.ID.String())
	if err != nil {
		return errs.Wrap(err, "failed to search gateway payments")
	}

	for _, p := range payments {
		switch {
		case p.Status == mercadopago.PaymentStatusApproved:
			return errPaymentApproved
		case p.Cancellable():
			if err := s.gateway.CancelPayment(gwCtx, partnerSnap.AccessToken, p.ID); err != nil {
				slog.Warn("failed to cancel gateway payment",
					"order_id", snap.ID, "payment_id", p.ID, "error", err)
			}
		}
	}
	return nil
}
