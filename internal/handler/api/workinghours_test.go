//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"bookingcore/internal/domain/schedule"
	"bookingcore/internal/handler/api"
	"bookingcore/internal/usecase/commands"
	"bookingcore/tests/common/httptest"
	commandsmock "bookingcore/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkingHoursHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWorkingHoursCommands
	handler      *api.WorkingHoursHandler
	businessID   uuid.UUID
}

func (s *WorkingHoursHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWorkingHoursCommands(s.mockCtrl)
	s.handler = api.NewWorkingHoursHandler(s.mockCommands)
	s.businessID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("business_id", s.businessID)
		c.Next()
	}

	s.router.PUT("/dashboard/working-hours", authMiddleware, s.handler.UpsertBusinessHours)
	s.router.PUT("/dashboard/staff/:staffId/working-hours", authMiddleware, s.handler.UpsertStaffHours)
}

func (s *WorkingHoursHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkingHoursHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkingHoursHandlerTestSuite))
}

func validHoursBody() map[string]any {
	return map[string]any{
		"days": []map[string]any{
			{"day_of_week": 1, "start_time": "09:00", "end_time": "17:00", "is_active": true},
			{"day_of_week": 2, "start_time": "09:00", "end_time": "17:00", "is_active": true},
			{"day_of_week": 0, "start_time": "00:00", "end_time": "00:00", "is_active": false},
		},
	}
}

func (s *WorkingHoursHandlerTestSuite) TestUpsertBusinessHours() {
	url := "/dashboard/working-hours"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpsertWorkingHours(gomock.Any(), s.businessID, gomock.Nil(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validHoursBody(), "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: closed day skips window validation", func() {
		s.mockCommands.EXPECT().UpsertWorkingHours(gomock.Any(), s.businessID, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, days []schedule.DayHours) error {
				s.Require().Len(days, 3)
				s.False(days[2].IsActive)
				s.Equal(0, days[2].DayOfWeek)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validHoursBody(), "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validHoursBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 Bad Request on bad payloads", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{"empty days", map[string]any{"days": []map[string]any{}}},
			{"day_of_week out of range", map[string]any{"days": []map[string]any{
				{"day_of_week": 7, "start_time": "09:00", "end_time": "17:00", "is_active": true},
			}}},
			{"missing end_time", map[string]any{"days": []map[string]any{
				{"day_of_week": 1, "start_time": "09:00", "is_active": true},
			}}},
			{"end before start", map[string]any{"days": []map[string]any{
				{"day_of_week": 1, "start_time": "17:00", "end_time": "09:00", "is_active": true},
			}}},
			{"malformed time", map[string]any{"days": []map[string]any{
				{"day_of_week": 1, "start_time": "9am", "end_time": "17:00", "is_active": true},
			}}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *WorkingHoursHandlerTestSuite) TestUpsertStaffHours() {
	staffID := uuid.New()
	url := "/dashboard/staff/" + staffID.String() + "/working-hours"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpsertWorkingHours(gomock.Any(), s.businessID, &staffID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validHoursBody(), "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid staff ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/dashboard/staff/not-a-uuid/working-hours", validHoursBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid staff ID")
	})

	s.Run("error: 404 Not Found for unknown staff member", func() {
		s.mockCommands.EXPECT().UpsertWorkingHours(gomock.Any(), s.businessID, &staffID, gomock.Any()).
			Return(commands.ErrStaffNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validHoursBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff member not found")
	})
}
