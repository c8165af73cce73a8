package writerepo

import (
	"context"
	"time"

	"bookingcore/internal/domain/appointment"
	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type appointmentRow struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	ServiceID     uuid.UUID
	StaffID       pgtype.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerPhone pgtype.Text
	StartTime     pgtype.Timestamp
	EndTime       pgtype.Timestamp
	Status        string
	PriceCents    int64
	Notes         pgtype.Text
	CreatedAt     pgtype.Timestamp
	UpdatedAt     pgtype.Timestamp
}

func (row appointmentRow) toDomain() (*appointment.Appointment, error) {
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid appointment status in storage", err)
	}
	return appointment.Reconstruct(
		row.ID, row.BusinessID, row.ServiceID,
		pgconv.UUIDPtrFromPgtype(row.StaffID),
		appointment.CustomerSpec{
			ID:    row.CustomerID,
			Name:  row.CustomerName,
			Phone: pgconv.StringPtrFromPgtype(row.CustomerPhone),
		},
		pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime),
		status, row.PriceCents, pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const createAppointmentSQL = `
INSERT INTO appointments (
	id, business_id, service_id, staff_id,
	customer_id, customer_name, customer_phone,
	start_time, end_time, status, price_cents, notes,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

func (r *AppointmentRepository) Create(ctx context.Context, tx infra.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAppointmentSQL,
		appt.ID(),
		appt.BusinessID(),
		appt.ServiceID(),
		pgconv.UUIDPtrToPgtype(appt.StaffID()),
		appt.CustomerID(),
		appt.CustomerName(),
		pgconv.StringPtrToPgtype(appt.CustomerPhone()),
		pgconv.TimeToPgtype(appt.Start()),
		pgconv.TimeToPgtype(appt.End()),
		string(appt.Status()),
		appt.PriceCents(),
		pgconv.StringPtrToPgtype(appt.Notes()),
		pgconv.TimeToPgtype(appt.CreatedAt()),
		pgconv.TimeToPgtype(appt.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

// Blocking rows are locked until commit so the conflict answer cannot be
// invalidated by a concurrent insert before this transaction finishes.
const blockingConflictSQL = `
SELECT id FROM appointments
WHERE business_id = $1
  AND staff_id IS NOT DISTINCT FROM $2
  AND status <> 'CANCELLED'
  AND start_time < $4
  AND end_time > $3
LIMIT 1
FOR UPDATE`

func (r *AppointmentRepository) HasBlockingConflict(ctx context.Context, tx infra.DBTX, businessID uuid.UUID, staffID *uuid.UUID, slot schedule.Interval) (bool, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, blockingConflictSQL,
		businessID,
		pgconv.UUIDPtrToPgtype(staffID),
		pgconv.TimeToPgtype(slot.Start),
		pgconv.TimeToPgtype(slot.End),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check slot conflict", err)
	}
	return true, nil
}

const appointmentForUpdateSQL = `
SELECT id, business_id, service_id, staff_id,
       customer_id, customer_name, customer_phone,
       start_time, end_time, status, price_cents, notes,
       created_at, updated_at
FROM appointments
WHERE id = $1
FOR UPDATE`

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row := appointmentRow{}
	err := tx.QueryRow(ctx, appointmentForUpdateSQL, id).Scan(
		&row.ID, &row.BusinessID, &row.ServiceID, &row.StaffID,
		&row.CustomerID, &row.CustomerName, &row.CustomerPhone,
		&row.StartTime, &row.EndTime, &row.Status, &row.PriceCents, &row.Notes,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return row.toDomain()
}

const updateAppointmentStatusSQL = `
UPDATE appointments SET status = $2, updated_at = $3 WHERE id = $1`

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status appointment.Status, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, updateAppointmentStatusSQL, id, string(status), pgconv.TimeToPgtype(updatedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
