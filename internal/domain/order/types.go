package order

type Status string

const (
	StatusPending        Status = "pending"
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusPaymentFailed  Status = "payment_failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingPayment, StatusConfirmed,
		StatusCompleted, StatusCancelled, StatusPaymentFailed:
		return true
	}
	return false
}

// IsOpen reports whether the order still awaits payment and is eligible for
// the expiration sweep.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusPendingPayment
}

// allowedTransitions is the closed table of legal status edges. Anything not
// listed here is an InvalidStateTransition, logged by callers and rejected.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusPendingPayment: true,
		StatusConfirmed:      true,
		StatusPaymentFailed:  true,
		StatusCancelled:      true,
	},
	StatusPendingPayment: {
		StatusConfirmed:     true,
		StatusPaymentFailed: true,
		StatusCancelled:     true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
	},
	StatusPaymentFailed: {
		StatusCancelled: true,
	},
}

func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}

type Kind string

const (
	KindProductPurchase Kind = "product_purchase"
	KindServiceBooking  Kind = "service_booking"
)

func (k Kind) IsValid() bool {
	return k == KindProductPurchase || k == KindServiceBooking
}
