package commands

import (
	"context"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/pkg/money"
)

// ErrChargeDeclined is returned by a PaymentGateway that refuses the charge.
var ErrChargeDeclined = errs.New("charge declined")

type CatalogReader interface {
	Service(id int) (*catalog.Service, error)
	Provider(id int) (*catalog.Provider, error)
}

// LockStore holds short-lived slot locks keyed by slot.LockKey.
type LockStore interface {
	// Lock takes key for ttl unless it is already held and reports whether it did.
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	IsLocked(ctx context.Context, key string) (bool, error)
	LockedAmong(ctx context.Context, keys []string) (map[string]bool, error)
	Release(ctx context.Context, key string) error
}

type ChargeRequest struct {
	SessionID  string
	Amount     money.Money
	Method     booking.PaymentMethod
	CardNumber string
}

type ChargeResult struct {
	TransactionID string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

type ConfirmationMessage struct {
	BookingID string
	Email     string
	Phone     string
	Text      string
}

type ConfirmationSender interface {
	Send(ctx context.Context, msg ConfirmationMessage) error
}

type RecordRepository interface {
	Create(ctx context.Context, r *booking.Record) error
	FindByID(ctx context.Context, id string) (*booking.Record, error)
	UpdateConfirmation(ctx context.Context, id string, status booking.ConfirmationStatus) error
}
