package queries

import (
	"context"
	"time"

	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAppointmentNotFound = errs.New("appointment not found")

type AppointmentView struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	StaffID       *uuid.UUID `json:"staff_id,omitempty"`
	StaffName     *string    `json:"staff_name,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Status        string     `json:"status"`
	PriceCents    int64      `json:"price_cents"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, businessID, id uuid.UUID) (*AppointmentView, error)
	FindByBusinessAndDay(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	ByID(ctx context.Context, businessID, id uuid.UUID) (*AppointmentView, error)
	ByDay(ctx context.Context, businessID uuid.UUID, date time.Time) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) ByID(ctx context.Context, businessID, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, businessID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ByDay(ctx context.Context, businessID uuid.UUID, date time.Time) ([]*AppointmentView, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return q.store.FindByBusinessAndDay(ctx, businessID, dayStart, dayStart.AddDate(0, 0, 1))
}
