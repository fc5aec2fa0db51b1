package commands

import (
	"context"
	"log/slog"
	"strconv"

	"dogcatify-core/internal/domain/order"
	reqdto "dogcatify-core/internal/handler/dto/request"
	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPaymentLookupFailed = errs.New("payment lookup failed")
	ErrUnknownReference    = errs.New("payment references no known order")
)

type WebhookResult struct {
	OrderID      uuid.UUID
	FromStatus   order.Status
	ToStatus     order.Status
	Transitioned bool
}

type WebhookCommands interface {
	// ProcessPaymentNotification reconciles one gateway payment event
	// against the referenced order.
	ProcessPaymentNotification(ctx context.Context, notif reqdto.WebhookNotification) (*WebhookResult, error)
}

type webhookUseCaseImpl struct {
	orderRepo OrderRepository
	gateway   PaymentGateway
}

func NewWebhookUseCase(orderRepo OrderRepository, gateway PaymentGateway) WebhookCommands {
	return &webhookUseCaseImpl{orderRepo: orderRepo, gateway: gateway}
}

func (w *webhookUseCaseImpl) ProcessPaymentNotification(
	ctx context.Context,
	notif reqdto.WebhookNotification,
) (*WebhookResult, error) {
	paymentID, err := strconv.ParseInt(notif.Data.ID, 10, 64)
	if err != nil {
		return nil, errs.Mark(errs.Newf("non-numeric payment id %q", notif.Data.ID), ErrPaymentLookupFailed)
	}

	// The webhook body is unauthenticated; the payment fetched back from
	// the gateway is the source of truth.
	payment, orderSnap, err := w.fetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	target, ok := targetStatus(payment.Status)
	if !ok {
		slog.Info("ignoring payment status with no order effect",
			"payment_id", paymentID, "status", payment.Status)
		return &WebhookResult{OrderID: orderSnap.ID, FromStatus: orderSnap.Status, ToStatus: orderSnap.Status}, nil
	}

	from := transitionSources(target)
	rows, err := w.orderRepo.UpdateStatus(ctx, orderSnap.ID, from, target)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		// Duplicate delivery or an out-of-order event. Idempotent: ack
		// without changing anything.
		slog.Info("payment notification produced no transition",
			"order_id", orderSnap.ID, "current", orderSnap.Status, "target", target)
		return &WebhookResult{OrderID: orderSnap.ID, FromStatus: orderSnap.Status, ToStatus: orderSnap.Status}, nil
	}

	slog.Info("order reconciled from payment notification",
		"order_id", orderSnap.ID, "payment_id", paymentID,
		"from", orderSnap.Status, "to", target)

	return &WebhookResult{
		OrderID:      orderSnap.ID,
		FromStatus:   orderSnap.Status,
		ToStatus:     target,
		Transitioned: true,
	}, nil
}

// fetchPayment resolves the payment through the owning partner's
// credentials. The external reference is the order id, which names the
// partner, which holds the token; a reference we cannot parse or find means
// the payment is not ours.
func (w *webhookUseCaseImpl) fetchPayment(ctx context.Context, paymentID int64) (*mercadopago.Payment, *OrderSnapshot, error) {
	// Payment lookup needs a token, and the token lives on a partner we
	// only learn from the payment itself. The marketplace-level token
	// breaks the cycle: it can read any payment created under us.
	payment, err := w.gateway.GetPaymentAsPlatform(ctx, paymentID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrPaymentLookupFailed)
	}

	orderID, err := uuid.Parse(payment.ExternalReference)
	if err != nil {
		return nil, nil, errs.Mark(errs.Newf("unparseable external reference %q", payment.ExternalReference), ErrUnknownReference)
	}

	snap, err := w.orderRepo.FindSnapshot(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrUnknownReference
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return payment, snap, nil
}

// targetStatus maps a gateway payment status onto the order machine. The
// second return is false for statuses that never move an order.
func targetStatus(paymentStatus string) (order.Status, bool) {
	switch paymentStatus {
	case mercadopago.PaymentStatusApproved:
		return order.StatusConfirmed, true
	case mercadopago.PaymentStatusRejected:
		return order.StatusPaymentFailed, true
	case mercadopago.PaymentStatusCancelled, mercadopago.PaymentStatusRefunded:
		return order.StatusCancelled, true
	default:
		return "", false
	}
}

// transitionSources lists the statuses allowed to move to the target,
// straight from the order transition table.
func transitionSources(target order.Status) []order.Status {
	var from []order.Status
	for _, s := range []order.Status{
		order.StatusPending, order.StatusPendingPayment,
		order.StatusConfirmed, order.StatusPaymentFailed,
	} {
		if order.CanTransition(s, target) {
			from = append(from, s)
		}
	}
	return from
}
