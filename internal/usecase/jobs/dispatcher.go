package jobs

import (
	"context"
	"log/slog"

	"dogcatify-core/internal/domain/notification"
	"dogcatify-core/internal/infra/push"
	"dogcatify-core/internal/pkg/clock"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/errs"
)

var ErrDispatchQueryFailed = errs.New("failed to query due notifications")

type DispatchResult struct {
	Drained int
	Sent    int
	Retried int
	Failed  int
}

type NotificationDispatcher interface {
	// Run delivers one batch of due notifications, Expo first with FCM
	// as fallback.
	Run(ctx context.Context) (DispatchResult, error)
}

type dispatcherImpl struct {
	store     NotificationStore
	tokens    DeviceTokenStore
	expo      PushSender
	fcm       PushSender
	clock     clock.Clock
	batchSize int32
	cfg       config.PushConfig
}

func NewNotificationDispatcher(
	store NotificationStore,
	tokens DeviceTokenStore,
	expo PushSender,
	fcm PushSender,
	clock clock.Clock,
	cfg config.PushConfig,
) NotificationDispatcher {
	return &dispatcherImpl{
		store:     store,
		tokens:    tokens,
		expo:      expo,
		fcm:       fcm,
		clock:     clock,
		batchSize: cfg.BatchSize,
		cfg:       cfg,
	}
}

func (d *dispatcherImpl) Run(ctx context.Context) (DispatchResult, error) {
	due, err := d.store.FindDue(ctx, d.clock.Now(), d.batchSize)
	if err != nil {
		return DispatchResult{}, errs.Mark(err, ErrDispatchQueryFailed)
	}

	result := DispatchResult{Drained: len(due)}
	for _, n := range due {
		switch d.dispatchOne(ctx, n) {
		case dispatchSent:
			result.Sent++
		case dispatchRetried:
			result.Retried++
		case dispatchFailed:
			result.Failed++
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
	}

	slog.Info("notification dispatch finished",
		"drained", result.Drained, "sent", result.Sent,
		"retried", result.Retried, "failed", result.Failed)
	return result, nil
}

type dispatchOutcome int

const (
	dispatchSent dispatchOutcome = iota
	dispatchRetried
	dispatchFailed
)

func (d *dispatcherImpl) dispatchOne(ctx context.Context, n *notification.Notification) dispatchOutcome {
	tokens, err := d.tokens.FindByUser(ctx, n.UserID)
	if err != nil {
		d.recordFailure(ctx, n, "token lookup failed: "+err.Error())
		if n.Exhausted() {
			return dispatchFailed
		}
		return dispatchRetried
	}

	// No device on either channel: retrying cannot help, and the attempt
	// budget stays untouched.
	if tokens.Empty() {
		if err := d.store.MarkFailed(ctx, n.ID, "no device token registered"); err != nil {
			slog.Warn("failed to mark notification failed", "notification_id", n.ID, "error", err)
		}
		return dispatchFailed
	}

	msg := push.Message{Title: n.Title, Body: n.Body, Data: n.Payload}

	channel, sendErr := d.send(ctx, n, tokens, msg)
	if sendErr != nil {
		d.recordFailure(ctx, n, sendErr.Error())
		if n.Exhausted() {
			return dispatchFailed
		}
		return dispatchRetried
	}

	if err := d.store.MarkSent(ctx, n.ID, channel, d.clock.Now()); err != nil {
		slog.Warn("notification delivered but not marked sent",
			"notification_id", n.ID, "channel", channel, "error", err)
	}
	return dispatchSent
}

// send tries Expo first, then FCM on any Expo failure. Dead tokens get
// pruned along the way so the next attempt does not repeat them.
func (d *dispatcherImpl) send(
	ctx context.Context,
	n *notification.Notification,
	tokens DeviceTokens,
	msg push.Message,
) (notification.Channel, error) {
	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	var expoErr error
	if tokens.ExpoToken != nil {
		expoErr = d.expo.Send(sendCtx, *tokens.ExpoToken, msg)
		if expoErr == nil {
			return notification.ChannelExpo, nil
		}
		d.pruneDeadToken(ctx, n, *tokens.ExpoToken, expoErr)
	} else {
		expoErr = errs.New("no expo token")
	}

	if tokens.FCMToken != nil {
		if fcmErr := d.fcm.Send(sendCtx, *tokens.FCMToken, msg); fcmErr != nil {
			d.pruneDeadToken(ctx, n, *tokens.FCMToken, fcmErr)
			return "", errs.Wrap(fcmErr, "fcm fallback failed after expo: "+expoErr.Error())
		}
		return notification.ChannelFCM, nil
	}

	return "", errs.Wrap(expoErr, "expo failed and no fcm token")
}

func (d *dispatcherImpl) pruneDeadToken(ctx context.Context, n *notification.Notification, token string, sendErr error) {
	if !errs.Is(sendErr, push.ErrTokenInvalid) {
		return
	}
	if err := d.tokens.Invalidate(ctx, n.UserID, token); err != nil {
		slog.Warn("failed to invalidate dead push token",
			"notification_id", n.ID, "error", err)
	}
}

func (d *dispatcherImpl) recordFailure(ctx context.Context, n *notification.Notification, reason string) {
	if err := d.store.RecordFailure(ctx, n.ID, reason); err != nil {
		slog.Warn("failed to record notification failure",
			"notification_id", n.ID, "error", err)
	}
}
