package queries

import (
	"context"
	"time"

	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBusinessNotFound    = errs.New("business not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrServiceMismatch     = errs.New("service does not belong to business")
	ErrStaffModuleDisabled = errs.New("staff selection is disabled for this business")
)

type AvailabilityRequest struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
	StaffID    *uuid.UUID
}

type BusinessScheduleView struct {
	ID                 uuid.UUID
	Name               string
	StaffModuleEnabled bool
	Settings           *schedule.Settings
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	IsActive    bool      `json:"is_active"`
}

type StaffView struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
}

type AvailabilityReadStore interface {
	BusinessScheduleByID(ctx context.Context, id uuid.UUID) (*BusinessScheduleView, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FirstActiveStaff(ctx context.Context, businessID uuid.UUID) (*StaffView, error)
	// DayHoursFor returns the working_hours row for one day, staffID nil for
	// the business default row. Nil result when no row exists.
	DayHoursFor(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID, dayOfWeek int) (*schedule.DayHours, error)
	// BlockingIntervals returns the occupied spans of all non-cancelled
	// appointments in the scope, ordered by start.
	BlockingIntervals(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
}

// SlotCache is the read-through cache for computed availability. Both methods
// are best effort: a miss or a cache failure falls back to computing.
type SlotCache interface {
	Get(ctx context.Context, req AvailabilityRequest) ([]string, bool)
	Set(ctx context.Context, req AvailabilityRequest, slots []string)
}

type AvailabilityQueries interface {
	// Slots returns the bookable start times of one day as ordered "HH:MM"
	// strings. An unconfigured business or a closed day yields an empty
	// list, never an error.
	Slots(ctx context.Context, req AvailabilityRequest) ([]string, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	cache SlotCache
}

func NewAvailabilityQueries(store AvailabilityReadStore, cache SlotCache) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, cache: cache}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, req AvailabilityRequest) ([]string, error) {
	business, err := q.store.BusinessScheduleByID(ctx, req.BusinessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	if business.Settings == nil {
		return []string{}, nil
	}

	svc, err := q.store.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.BusinessID != business.ID {
		return nil, ErrServiceMismatch
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	// With the staff module disabled the conflict scope is the whole
	// business; a staff filter would skip business-wide appointments.
	staffID := req.StaffID
	if !business.StaffModuleEnabled {
		if staffID != nil {
			return nil, ErrStaffModuleDisabled
		}
	} else if staffID == nil {
		staff, serr := q.store.FirstActiveStaff(ctx, business.ID)
		if serr != nil {
			if infra.IsKind(serr, infra.KindNotFound) {
				return []string{}, nil
			}
			return nil, serr
		}
		staffID = &staff.ID
	}

	cacheReq := req
	cacheReq.StaffID = staffID
	if slots, ok := q.cache.Get(ctx, cacheReq); ok {
		return slots, nil
	}

	window, open, err := q.resolveWindow(ctx, business, staffID, req.Date)
	if err != nil {
		return nil, err
	}
	if !open {
		return []string{}, nil
	}

	candidates := schedule.CandidateSlots(req.Date, window, svc.DurationMin, business.Settings.IntervalMin)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	dayStart := window.Open.On(req.Date)
	dayEnd := candidates[len(candidates)-1].End
	busy, err := q.store.BlockingIntervals(ctx, business.ID, staffID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	free := schedule.FreeSlots(candidates, busy)
	slots := make([]string, 0, len(free))
	for _, s := range free {
		slots = append(slots, s.Start.Format("15:04"))
	}

	q.cache.Set(ctx, cacheReq, slots)
	return slots, nil
}

func (q *availabilityQueriesImpl) resolveWindow(ctx context.Context, business *BusinessScheduleView, staffID *uuid.UUID, date time.Time) (schedule.Window, bool, error) {
	dayOfWeek := int(date.Weekday())

	var businessDay, staffDay *schedule.DayHours
	if business.StaffModuleEnabled {
		var err error
		businessDay, err = q.store.DayHoursFor(ctx, business.ID, nil, dayOfWeek)
		if err != nil {
			return schedule.Window{}, false, err
		}
		if staffID != nil {
			staffDay, err = q.store.DayHoursFor(ctx, business.ID, staffID, dayOfWeek)
			if err != nil {
				return schedule.Window{}, false, err
			}
		}
	}

	window, open := schedule.ResolveDayWindow(business.StaffModuleEnabled, business.Settings, dayOfWeek, businessDay, staffDay)
	return window, open, nil
}
