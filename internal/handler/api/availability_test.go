//go:build unit

package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"bookingcore/internal/handler/api"
	resdto "bookingcore/internal/handler/dto/response"
	"bookingcore/internal/usecase/queries"
	"bookingcore/tests/common/httptest"
	queriesmock "bookingcore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func availabilityURL(businessID, serviceID uuid.UUID, date string) string {
	return fmt.Sprintf("/availability?business_id=%s&service_id=%s&date=%s", businessID, serviceID, date)
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	businessID := uuid.New()
	serviceID := uuid.New()

	s.Run("success: returns 200 OK with slots", func() {
		s.mockQueries.EXPECT().Slots(gomock.Any(), gomock.Any()).
			Return([]string{"09:00", "09:30", "10:00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, availabilityURL(businessID, serviceID, "2026-01-15"), nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-01-15", response.Date)
		s.Equal([]string{"09:00", "09:30", "10:00"}, response.Slots)
	})

	s.Run("success: closed day yields an empty slot list", func() {
		s.mockQueries.EXPECT().Slots(gomock.Any(), gomock.Any()).
			Return([]string{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, availabilityURL(businessID, serviceID, "2026-01-18"), nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("success: forwards staff filter to the query", func() {
		staffID := uuid.New()
		s.mockQueries.EXPECT().Slots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.AvailabilityRequest) ([]string, error) {
				s.Require().NotNil(req.StaffID)
				s.Equal(staffID, *req.StaffID)
				return []string{"11:00"}, nil
			}).Times(1)

		url := availabilityURL(businessID, serviceID, "2026-01-15") + "&staff_id=" + staffID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on bad parameters", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{"missing business_id", fmt.Sprintf("/availability?service_id=%s&date=2026-01-15", serviceID)},
			{"missing service_id", fmt.Sprintf("/availability?business_id=%s&date=2026-01-15", businessID)},
			{"malformed business_id", fmt.Sprintf("/availability?business_id=not-a-uuid&service_id=%s&date=2026-01-15", serviceID)},
			{"malformed staff_id", availabilityURL(businessID, serviceID, "2026-01-15") + "&staff_id=not-a-uuid"},
			{"malformed date", availabilityURL(businessID, serviceID, "01/15/2026")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"business not found", queries.ErrBusinessNotFound, http.StatusNotFound, "Business not found"},
			{"service not found", queries.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
			{"service mismatch", queries.ErrServiceMismatch, http.StatusBadRequest, "does not belong"},
			{"staff module disabled", queries.ErrStaffModuleDisabled, http.StatusBadRequest, "not enabled"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Slots(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, availabilityURL(businessID, serviceID, "2026-01-15"), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
