package queries

import (
	"context"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/infra"
	"booking-flow/internal/pkg/errs"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id string) (*booking.Record, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	loc   *time.Location
}

func NewBookingQueries(store BookingReadStore, loc *time.Location) BookingQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingQueriesImpl{store: store, loc: loc}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id string) (*BookingView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	link, err := booking.CalendarLink(r, q.loc)
	if err != nil {
		return nil, errs.Wrap(err, "build calendar link")
	}

	c, p := r.Customer(), r.Payment()
	return &BookingView{
		ID:                r.ID(),
		Status:            r.Status(),
		Confirmation:      string(r.Confirmation()),
		ServiceID:         r.ServiceID(),
		ServiceName:       r.ServiceName(),
		ProviderID:        r.ProviderID(),
		ProviderName:      r.ProviderName(),
		ProviderLocation:  r.ProviderLocation(),
		Date:              r.Date().String(),
		Time:              r.Time(),
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		SpecialRequests:   r.SpecialRequests(),
		PaymentMethod:     string(p.Method),
		CardLast4:         p.CardLast4,
		SavePaymentMethod: p.SavePaymentMethod,
		Pricing:           toSummaryView(r.Pricing()),
		Total:             r.Total().String(),
		CalendarLink:      link,
		ShareText:         booking.ShareText(r),
		CreatedAt:         r.CreatedAt(),
	}, nil
}
