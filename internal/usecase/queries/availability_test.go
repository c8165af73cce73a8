//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/usecase/queries"
	queriesmock "bookingcore/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockAvailabilityReadStore
	mockCache *queriesmock.MockSlotCache
	q         queries.AvailabilityQueries

	businessID uuid.UUID
	serviceID  uuid.UUID
	monday     time.Time
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	s.mockCache = queriesmock.NewMockSlotCache(s.mockCtrl)
	s.q = queries.NewAvailabilityQueries(s.mockStore, s.mockCache)

	s.businessID = uuid.New()
	s.serviceID = uuid.New()
	s.monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

// Mon-Fri 09:00-17:00 on an hourly grid.
func hourlySettings() *schedule.Settings {
	return &schedule.Settings{
		StartTime:   schedule.MustTimeOfDay("09:00"),
		EndTime:     schedule.MustTimeOfDay("17:00"),
		IntervalMin: 60,
		WorkingDays: []int{1, 2, 3, 4, 5},
	}
}

func (s *AvailabilityQueriesTestSuite) business(settings *schedule.Settings, staffEnabled bool) *queries.BusinessScheduleView {
	return &queries.BusinessScheduleView{
		ID:                 s.businessID,
		Name:               "Bloom Studio",
		StaffModuleEnabled: staffEnabled,
		Settings:           settings,
	}
}

func (s *AvailabilityQueriesTestSuite) service(durationMin int) *queries.ServiceView {
	return &queries.ServiceView{
		ID:          s.serviceID,
		BusinessID:  s.businessID,
		Name:        "Deep Tissue Massage",
		DurationMin: durationMin,
		PriceCents:  9000,
		IsActive:    true,
	}
}

func (s *AvailabilityQueriesTestSuite) at(hhmm string) time.Time {
	return schedule.MustTimeOfDay(hhmm).On(s.monday)
}

func (s *AvailabilityQueriesTestSuite) request(date time.Time, staffID *uuid.UUID) queries.AvailabilityRequest {
	return queries.AvailabilityRequest{
		BusinessID: s.businessID,
		ServiceID:  s.serviceID,
		Date:       date,
		StaffID:    staffID,
	}
}

func (s *AvailabilityQueriesTestSuite) TestSlots() {
	ctx := context.Background()

	s.Run("open hourly day yields the full grid", func() {
		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(hourlySettings(), false), nil).Times(1)
		s.mockStore.EXPECT().ServiceByID(gomock.Any(), s.serviceID).
			Return(s.service(60), nil).Times(1)
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(1)
		s.mockStore.EXPECT().BlockingIntervals(gomock.Any(), s.businessID, gomock.Nil(), s.at("09:00"), s.at("17:00")).
			Return(nil, nil).Times(1)
		s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		slots, err := s.q.Slots(ctx, s.request(s.monday, nil))
		s.Require().NoError(err)
		s.Equal([]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)
	})

	s.Run("booked hour disappears, its neighbors stay", func() {
		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(hourlySettings(), false), nil).Times(1)
		s.mockStore.EXPECT().ServiceByID(gomock.Any(), s.serviceID).
			Return(s.service(60), nil).Times(1)
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(1)
		s.mockStore.EXPECT().BlockingIntervals(gomock.Any(), s.businessID, gomock.Nil(), s.at("09:00"), s.at("17:00")).
			Return([]schedule.Interval{{Start: s.at("11:00"), End: s.at("12:00")}}, nil).Times(1)
		s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		slots, err := s.q.Slots(ctx, s.request(s.monday, nil))
		s.Require().NoError(err)
		s.Equal([]string{"09:00", "10:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)
		s.NotContains(slots, "11:00")
	})

	s.Run("unconfigured business yields empty availability, not an error", func() {
		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(nil, false), nil).Times(1)

		slots, err := s.q.Slots(ctx, s.request(s.monday, nil))
		s.Require().NoError(err)
		s.Empty(slots)
	})

	s.Run("non-working weekday is closed", func() {
		sunday := s.monday.AddDate(0, 0, -1)

		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(hourlySettings(), false), nil).Times(1)
		s.mockStore.EXPECT().ServiceByID(gomock.Any(), s.serviceID).
			Return(s.service(60), nil).Times(1)
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(1)

		slots, err := s.q.Slots(ctx, s.request(sunday, nil))
		s.Require().NoError(err)
		s.Empty(slots)
	})

	s.Run("staff filter is rejected when the staff module is disabled", func() {
		staffID := uuid.New()

		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(hourlySettings(), false), nil).Times(1)
		s.mockStore.EXPECT().ServiceByID(gomock.Any(), s.serviceID).
			Return(s.service(60), nil).Times(1)

		_, err := s.q.Slots(ctx, s.request(s.monday, &staffID))
		s.ErrorIs(err, queries.ErrStaffModuleDisabled)
	})

	s.Run("business-wide closed day wins over an open staff override", func() {
		staffID := uuid.New()

		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(hourlySettings(), true), nil).Times(1)
		s.mockStore.EXPECT().ServiceByID(gomock.Any(), s.serviceID).
			Return(s.service(60), nil).Times(1)
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(1)
		s.mockStore.EXPECT().DayHoursFor(gomock.Any(), s.businessID, gomock.Nil(), 1).
			Return(&schedule.DayHours{DayOfWeek: 1, IsActive: false}, nil).Times(1)
		s.mockStore.EXPECT().DayHoursFor(gomock.Any(), s.businessID, &staffID, 1).
			Return(&schedule.DayHours{
				DayOfWeek: 1,
				Window:    schedule.Window{Open: schedule.MustTimeOfDay("10:00"), Close: schedule.MustTimeOfDay("16:00")},
				IsActive:  true,
			}, nil).Times(1)

		slots, err := s.q.Slots(ctx, s.request(s.monday, &staffID))
		s.Require().NoError(err)
		s.Empty(slots)
	})

	s.Run("cached answer is returned without recomputing", func() {
		cached := []string{"09:00", "10:00"}

		s.mockStore.EXPECT().BusinessScheduleByID(gomock.Any(), s.businessID).
			Return(s.business(hourlySettings(), false), nil).Times(1)
		s.mockStore.EXPECT().ServiceByID(gomock.Any(), s.serviceID).
			Return(s.service(60), nil).Times(1)
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true).Times(1)

		slots, err := s.q.Slots(ctx, s.request(s.monday, nil))
		s.Require().NoError(err)
		s.Equal(cached, slots)
	})
}
