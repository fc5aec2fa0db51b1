// Package push holds the two delivery channels the dispatcher fans out to:
// the Expo push service for the native app and legacy FCM as fallback. Both
// treat provider-reported per-message errors as delivery failures, not just
// transport errors.
package push

import (
	"encoding/json"

	"dogcatify-core/internal/pkg/errs"
)

var (
	ErrSendFailed   = errs.New("push send failed")
	ErrTokenInvalid = errs.New("push token rejected by provider")
)

type Message struct {
	Title string
	Body  string
	Data  json.RawMessage
}
