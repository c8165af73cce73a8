package writerepo

import (
	"context"

	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WorkingHoursRepository struct{}

func NewWorkingHoursRepository() *WorkingHoursRepository {
	return &WorkingHoursRepository{}
}

// The unique index is declared NULLS NOT DISTINCT so the business default row
// (staff_id NULL) upserts like any staff row.
const upsertWorkingHoursSQL = `
INSERT INTO working_hours (id, business_id, staff_id, day_of_week, start_time, end_time, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (business_id, staff_id, day_of_week)
DO UPDATE SET start_time = EXCLUDED.start_time,
              end_time = EXCLUDED.end_time,
              is_active = EXCLUDED.is_active,
              updated_at = now()`

func (r *WorkingHoursRepository) Upsert(ctx context.Context, tx infra.DBTX, businessID uuid.UUID, staffID *uuid.UUID, day schedule.DayHours) error {
	_, err := tx.Exec(ctx, upsertWorkingHoursSQL,
		uuid.New(),
		businessID,
		pgconv.UUIDPtrToPgtype(staffID),
		day.DayOfWeek,
		day.Window.Open.String(),
		day.Window.Close.String(),
		day.IsActive,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert working hours", err)
	}
	return nil
}
