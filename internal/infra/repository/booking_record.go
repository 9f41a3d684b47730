package repository

import (
	"context"
	"log/slog"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/infra"
	"booking-flow/internal/infra/db"
	"booking-flow/internal/pkg/money"
	"booking-flow/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertBookingRecord = `INSERT INTO booking_records (
	id, service_id, service_name, provider_id, provider_name, provider_location,
	booking_date, booking_time, first_name, last_name, email, phone, marketing_emails,
	special_requests, payment_method, card_last4, save_payment_method,
	subtotal_cents, tax_cents, platform_fee_cents, total_cents,
	status, confirmation_status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

	selectBookingRecord = `SELECT
	id, service_id, service_name, provider_id, provider_name, provider_location,
	booking_date, booking_time, first_name, last_name, email, phone, marketing_emails,
	special_requests, payment_method, card_last4, save_payment_method,
	subtotal_cents, tax_cents, platform_fee_cents, total_cents,
	status, confirmation_status, created_at
FROM booking_records WHERE id = $1`

	lockConfirmationStatus = `SELECT confirmation_status FROM booking_records WHERE id = $1 FOR UPDATE`

	updateConfirmationStatus = `UPDATE booking_records SET confirmation_status = $2, updated_at = NOW() WHERE id = $1`

	confirmationRetries = 2
)

type BookingRecordRepository struct {
	db     db.Pool
	logger *slog.Logger
}

func NewBookingRecordRepository(pool db.Pool, logger *slog.Logger) *BookingRecordRepository {
	return &BookingRecordRepository{db: pool, logger: logger}
}

func (r *BookingRecordRepository) Create(ctx context.Context, rec *booking.Record) error {
	date, err := rec.Date().In(time.UTC)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid booking date", err)
	}
	c, p, pr := rec.Customer(), rec.Payment(), rec.Pricing()

	_, err = r.db.Exec(ctx, insertBookingRecord,
		rec.ID(), rec.ServiceID(), rec.ServiceName(), rec.ProviderID(), rec.ProviderName(), rec.ProviderLocation(),
		pgconv.DateToPgtype(date), rec.Time(), c.FirstName, c.LastName, c.Email, c.Phone, c.MarketingEmails,
		pgconv.StringToNullable(rec.SpecialRequests()), string(p.Method), pgconv.StringToNullable(p.CardLast4), p.SavePaymentMethod,
		pr.Subtotal.Cents(), pr.Tax.Cents(), pr.PlatformFee.Cents(), pr.Total.Cents(),
		rec.Status(), string(rec.Confirmation()), pgconv.TimeToPgtype(rec.CreatedAt()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "booking id already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert booking record", err)
	}
	return nil
}

func (r *BookingRecordRepository) FindByID(ctx context.Context, id string) (*booking.Record, error) {
	var (
		a                                 booking.RecordAttrs
		date                              pgtype.Date
		specialRequests, cardLast4        pgtype.Text
		method, status, confirmation      string
		subtotal, tax, platformFee, total int64
		createdAt                         pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectBookingRecord, id).Scan(
		&a.ID, &a.ServiceID, &a.ServiceName, &a.ProviderID, &a.ProviderName, &a.ProviderLocation,
		&date, &a.Time, &a.Customer.FirstName, &a.Customer.LastName, &a.Customer.Email, &a.Customer.Phone, &a.Customer.MarketingEmails,
		&specialRequests, &method, &cardLast4, &a.Payment.SavePaymentMethod,
		&subtotal, &tax, &platformFee, &total,
		&status, &confirmation, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking record not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to fetch booking record", err)
	}

	conf, err := booking.ParseConfirmationStatus(confirmation)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "corrupt confirmation status", err)
	}
	if d, ok := pgconv.DateFromPgtype(date); ok {
		a.Date = slot.NewDateKey(d)
	}
	a.SpecialRequests = pgconv.StringFromNullable(specialRequests)
	a.Payment.Method = booking.PaymentMethod(method)
	a.Payment.CardLast4 = pgconv.StringFromNullable(cardLast4)
	a.Pricing = booking.Breakdown{
		Subtotal:    money.New(subtotal),
		Tax:         money.New(tax),
		PlatformFee: money.New(platformFee),
		Total:       money.New(total),
	}
	a.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return booking.ReconstructRecord(a, status, conf), nil
}

// UpdateConfirmation moves the delivery status forward; a stale or repeated
// update is ignored.
func (r *BookingRecordRepository) UpdateConfirmation(ctx context.Context, id string, status booking.ConfirmationStatus) error {
	return db.RunInTxWithRetry(ctx, r.db, confirmationRetries, func(tx db.Querier) error {
		var current string
		if err := tx.QueryRow(ctx, lockConfirmationStatus, id).Scan(&current); err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking record not found", err)
			}
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to lock booking record", err)
		}
		if !booking.ConfirmationStatus(current).CanMoveTo(status) {
			return nil
		}
		if _, err := tx.Exec(ctx, updateConfirmationStatus, id, string(status)); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update confirmation status", err)
		}
		return nil
	})
}
