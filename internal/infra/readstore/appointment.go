package readstore

import (
	"context"
	"time"

	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadStore struct {
	db infra.DBTX
}

func NewAppointmentReadStore(db infra.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

const appointmentViewSQL = `
SELECT a.id, a.service_id, s.name AS service_name,
       a.staff_id, st.name AS staff_name,
       a.customer_name, a.customer_phone,
       a.start_time, a.end_time, a.status, a.price_cents, a.notes,
       a.created_at
FROM appointments a
JOIN services s ON s.id = a.service_id
LEFT JOIN staff st ON st.id = a.staff_id
WHERE a.business_id = $1`

const appointmentByIDSQL = appointmentViewSQL + ` AND a.id = $2`

const appointmentsByDaySQL = appointmentViewSQL + `
  AND a.start_time >= $2 AND a.start_time < $3
ORDER BY a.start_time`

func (s *AppointmentReadStore) FindByID(ctx context.Context, businessID, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := scanAppointmentView(s.db.QueryRow(ctx, appointmentByIDSQL, businessID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return view, nil
}

func (s *AppointmentReadStore) FindByBusinessAndDay(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]*queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx, appointmentsByDaySQL,
		businessID, pgconv.TimeToPgtype(dayStart), pgconv.TimeToPgtype(dayEnd),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	views := make([]*queries.AppointmentView, 0)
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return views, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		view                 queries.AppointmentView
		staffID              pgtype.UUID
		staffName            pgtype.Text
		customerPhone, notes pgtype.Text
		start, end, created  pgtype.Timestamp
	)
	err := row.Scan(
		&view.ID, &view.ServiceID, &view.ServiceName,
		&staffID, &staffName,
		&view.CustomerName, &customerPhone,
		&start, &end, &view.Status, &view.PriceCents, &notes,
		&created,
	)
	if err != nil {
		return nil, err
	}

	view.StaffID = pgconv.UUIDPtrFromPgtype(staffID)
	view.StaffName = pgconv.StringPtrFromPgtype(staffName)
	view.CustomerPhone = pgconv.StringPtrFromPgtype(customerPhone)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.StartTime = pgconv.TimeFromPgtype(start)
	view.EndTime = pgconv.TimeFromPgtype(end)
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	return &view, nil
}
