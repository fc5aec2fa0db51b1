// Package booking models the appointment attached to a service order. Its
// status mirrors the order's lifecycle; a confirmed booking is never deleted.
package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingOrder     = errors.New("booking requires an order reference")
	ErrMissingService   = errors.New("booking requires a service reference")
	ErrScheduledInPast  = errors.New("booking must be scheduled in the future")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Booking struct {
	id           uuid.UUID
	orderID      uuid.UUID
	serviceID    uuid.UUID
	partnerID    uuid.UUID
	customerID   uuid.UUID
	petID        *uuid.UUID
	scheduledFor time.Time
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(orderID, serviceID, partnerID, customerID uuid.UUID, petID *uuid.UUID, scheduledFor, now time.Time) (*Booking, error) {
	if orderID == uuid.Nil {
		return nil, ErrMissingOrder
	}
	if serviceID == uuid.Nil {
		return nil, ErrMissingService
	}
	if !scheduledFor.After(now) {
		return nil, ErrScheduledInPast
	}

	return &Booking{
		id:           uuid.New(),
		orderID:      orderID,
		serviceID:    serviceID,
		partnerID:    partnerID,
		customerID:   customerID,
		petID:        petID,
		scheduledFor: scheduledFor,
		status:       StatusPending,
	}, nil
}

func ReconstructBooking(
	id, orderID, serviceID, partnerID, customerID uuid.UUID,
	petID *uuid.UUID,
	scheduledFor time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		orderID:      orderID,
		serviceID:    serviceID,
		partnerID:    partnerID,
		customerID:   customerID,
		petID:        petID,
		scheduledFor: scheduledFor,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Cancel is idempotent so the sweeper can safely retry a partially completed
// run.
func (b *Booking) Cancel() {
	b.status = StatusCancelled
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) OrderID() uuid.UUID      { return b.orderID }
func (b *Booking) ServiceID() uuid.UUID    { return b.serviceID }
func (b *Booking) PartnerID() uuid.UUID    { return b.partnerID }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) PetID() *uuid.UUID       { return b.petID }
func (b *Booking) ScheduledFor() time.Time { return b.scheduledFor }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
