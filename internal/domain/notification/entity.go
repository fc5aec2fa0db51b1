// Package notification models a scheduled push message and its delivery
// bookkeeping. Rows are created by upstream business events; only the
// dispatcher mutates them.
package notification

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// MaxRetries bounds delivery attempts: an always-failing notification goes
// pending(0) -> pending(1) -> pending(2) -> failed.
const MaxRetries = 3

type Channel string

const (
	ChannelExpo Channel = "expo"
	ChannelFCM  Channel = "fcm"
)

type Notification struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Body         string
	Payload      []byte
	ScheduledFor time.Time
	Status       Status
	RetryCount   int32
	ErrorMessage *string
	SentChannel  *Channel
	SentAt       *time.Time
}

// Exhausted reports whether the next failure is terminal.
func (n *Notification) Exhausted() bool {
	return n.RetryCount+1 >= MaxRetries
}
