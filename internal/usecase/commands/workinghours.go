package commands

import (
	"context"

	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/clock"
	"bookingcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type WorkingHoursCommands interface {
	// UpsertWorkingHours replaces per-day rows for the business default
	// schedule (staffID nil) or one staff member's override.
	UpsertWorkingHours(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID, days []schedule.DayHours) error
}

type workingHoursUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache AvailabilityCache
	clock clock.Clock
}

func NewWorkingHoursUseCase(uow shared.UnitOfWork, cache AvailabilityCache, clk clock.Clock) WorkingHoursCommands {
	return &workingHoursUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *workingHoursUseCaseImpl) UpsertWorkingHours(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID, days []schedule.DayHours) error {
	if staffID != nil {
		staff, err := uc.uow.CommandReads().StaffByID(ctx, *staffID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStaffNotFound
			}
			return err
		}
		if staff.BusinessID != businessID {
			return ErrStaffNotFound
		}
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, day := range days {
			if txErr := tx.WorkingHours().Upsert(ctx, tx.DB(), businessID, staffID, day); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.BumpAll(ctx, businessID)
	return nil
}
