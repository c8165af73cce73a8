package readstore

import (
	"context"
	"encoding/json"
	"time"

	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ScheduleReadStore serves the availability read path: business schedule
// settings, services, staff, working hour rows and occupied intervals.
type ScheduleReadStore struct {
	db infra.DBTX
}

func NewScheduleReadStore(db infra.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

// Stored shape of businesses.settings. Absent column value means the business
// never configured a schedule, which is an expected state, not an error.
type scheduleSettingsJSON struct {
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	TimeInterval int    `json:"timeInterval"`
	WorkingDays  []int  `json:"workingDays"`
}

func parseScheduleSettings(raw []byte) (*schedule.Settings, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var js scheduleSettingsJSON
	if err := json.Unmarshal(raw, &js); err != nil {
		return nil, infra.WrapRepoErr("malformed schedule settings", err)
	}
	start, err := schedule.ParseTimeOfDay(js.StartTime)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed schedule settings start time", err)
	}
	end, err := schedule.ParseTimeOfDay(js.EndTime)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed schedule settings end time", err)
	}
	return &schedule.Settings{
		StartTime:   start,
		EndTime:     end,
		IntervalMin: js.TimeInterval,
		WorkingDays: js.WorkingDays,
	}, nil
}

const businessScheduleSQL = `
SELECT id, name, staff_module_enabled, settings
FROM businesses
WHERE id = $1`

func (s *ScheduleReadStore) BusinessScheduleByID(ctx context.Context, id uuid.UUID) (*queries.BusinessScheduleView, error) {
	var (
		view     queries.BusinessScheduleView
		settings []byte
	)
	err := s.db.QueryRow(ctx, businessScheduleSQL, id).Scan(
		&view.ID, &view.Name, &view.StaffModuleEnabled, &settings,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business", err)
	}

	view.Settings, err = parseScheduleSettings(settings)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

const serviceByIDSQL = `
SELECT id, business_id, name, duration_min, price_cents, is_active
FROM services
WHERE id = $1`

func (s *ScheduleReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := s.db.QueryRow(ctx, serviceByIDSQL, id).Scan(
		&view.ID, &view.BusinessID, &view.Name, &view.DurationMin, &view.PriceCents, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &view, nil
}

const staffByIDSQL = `
SELECT id, business_id, name, is_active
FROM staff
WHERE id = $1`

func (s *ScheduleReadStore) StaffByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	var view queries.StaffView
	err := s.db.QueryRow(ctx, staffByIDSQL, id).Scan(
		&view.ID, &view.BusinessID, &view.Name, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff", err)
	}
	return &view, nil
}

const firstActiveStaffSQL = `
SELECT id, business_id, name, is_active
FROM staff
WHERE business_id = $1 AND is_active
ORDER BY created_at, id
LIMIT 1`

func (s *ScheduleReadStore) FirstActiveStaff(ctx context.Context, businessID uuid.UUID) (*queries.StaffView, error) {
	var view queries.StaffView
	err := s.db.QueryRow(ctx, firstActiveStaffSQL, businessID).Scan(
		&view.ID, &view.BusinessID, &view.Name, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active staff", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active staff", err)
	}
	return &view, nil
}

const dayHoursSQL = `
SELECT day_of_week, start_time, end_time, is_active
FROM working_hours
WHERE business_id = $1 AND staff_id IS NOT DISTINCT FROM $2 AND day_of_week = $3`

func (s *ScheduleReadStore) DayHoursFor(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID, dayOfWeek int) (*schedule.DayHours, error) {
	var (
		day              schedule.DayHours
		startStr, endStr string
	)
	err := s.db.QueryRow(ctx, dayHoursSQL, businessID, pgconv.UUIDPtrToPgtype(staffID), dayOfWeek).Scan(
		&day.DayOfWeek, &startStr, &endStr, &day.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find working hours", err)
	}

	open, err := schedule.ParseTimeOfDay(startStr)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed working hours start time", err)
	}
	end, err := schedule.ParseTimeOfDay(endStr)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed working hours end time", err)
	}
	day.Window = schedule.Window{Open: open, Close: end}
	return &day, nil
}

const blockingIntervalsSQL = `
SELECT start_time, end_time
FROM appointments
WHERE business_id = $1
  AND staff_id IS NOT DISTINCT FROM $2
  AND status <> 'CANCELLED'
  AND start_time < $4
  AND end_time > $3
ORDER BY start_time`

func (s *ScheduleReadStore) BlockingIntervals(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := s.db.Query(ctx, blockingIntervalsSQL,
		businessID, pgconv.UUIDPtrToPgtype(staffID),
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var start, end pgtype.Timestamp
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied interval", err)
		}
		intervals = append(intervals, schedule.Interval{
			Start: pgconv.TimeFromPgtype(start),
			End:   pgconv.TimeFromPgtype(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied intervals", err)
	}
	return intervals, nil
}
