package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

type Customer struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Email      string
	Phone      *string
}

// IdentityResolver finds or creates the customer record for a public booking.
// Resolution happens outside the booking transaction; it is idempotent per
// (business, email) so a retried booking reuses the same customer.
type IdentityResolver interface {
	ResolveOrCreate(ctx context.Context, businessID uuid.UUID, in CustomerInput) (*Customer, error)
}

type BookingNotification struct {
	AppointmentID uuid.UUID
	BusinessID    uuid.UUID
	CustomerEmail string
	ServiceName   string
	StartTime     time.Time
}

// Notifier queues customer-facing messages after commit. Failures are logged,
// never surfaced: a booking must not fail because a notification could not be
// queued.
type Notifier interface {
	AppointmentBooked(ctx context.Context, n BookingNotification)
	AppointmentCancelled(ctx context.Context, n BookingNotification)
}

// AvailabilityCache invalidates cached slot computations when writes change
// a day's availability. Best effort only.
type AvailabilityCache interface {
	Bump(ctx context.Context, businessID uuid.UUID, date time.Time)
	BumpAll(ctx context.Context, businessID uuid.UUID)
}
