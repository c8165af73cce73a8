package shared

import (
	"context"
	"time"

	"bookingcore/internal/domain/appointment"
	"bookingcore/internal/domain/entitlement"
	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Purchases() PurchaseRepository
	WorkingHours() WorkingHoursRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	BusinessByID(ctx context.Context, id uuid.UUID) (*BusinessSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	StaffByID(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error)
	FirstActiveStaff(ctx context.Context, businessID uuid.UUID) (*StaffSnapshot, error)
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx infra.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	// HasBlockingConflict locks matching rows (FOR UPDATE) so the check holds
	// until commit. staffID nil checks the whole business scope.
	HasBlockingConflict(ctx context.Context, tx infra.DBTX, businessID uuid.UUID, staffID *uuid.UUID, slot schedule.Interval) (bool, error)
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status appointment.Status, updatedAt time.Time) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx infra.DBTX, p *entitlement.Purchase) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*entitlement.Purchase, error)
	// Save persists counter and status changes made by the aggregate.
	Save(ctx context.Context, tx infra.DBTX, p *entitlement.Purchase) error
	CreateUsage(ctx context.Context, tx infra.DBTX, u *entitlement.Usage) error
	UsageByAppointment(ctx context.Context, tx infra.DBTX, appointmentID uuid.UUID) (*entitlement.Usage, error)
	DeleteUsage(ctx context.Context, tx infra.DBTX, usageID uuid.UUID) error
}

type WorkingHoursRepository interface {
	// Upsert writes one per-day row keyed by (business, staff, day). A nil
	// staffID targets the business-wide default row.
	Upsert(ctx context.Context, tx infra.DBTX, businessID uuid.UUID, staffID *uuid.UUID, day schedule.DayHours) error
}
