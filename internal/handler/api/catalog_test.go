//go:build unit

package api_test

import (
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

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/businesses/:businessId/catalog", s.handler.GetCatalog)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestGetCatalog() {
	businessID := uuid.New()
	url := "/businesses/" + businessID.String() + "/catalog"

	s.Run("success: returns services and staff for a staff-enabled business", func() {
		view := &queries.CatalogView{
			BusinessID:         businessID,
			BusinessName:       "Bloom Studio",
			StaffModuleEnabled: true,
			Services: []*queries.ServiceView{
				{ID: uuid.New(), Name: "Haircut", DurationMin: 30, PriceCents: 4500},
			},
			Staff: []*queries.StaffView{
				{ID: uuid.New(), Name: "Alex"},
			},
		}
		s.mockQueries.EXPECT().Catalog(gomock.Any(), businessID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CatalogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Bloom Studio", response.BusinessName)
		s.True(response.StaffModuleEnabled)
		s.Require().Len(response.Services, 1)
		s.Equal(30, response.Services[0].DurationMin)
		s.Len(response.Staff, 1)
	})

	s.Run("success: omits staff when the module is disabled", func() {
		view := &queries.CatalogView{
			BusinessID:   businessID,
			BusinessName: "Solo Barber",
			Services:     []*queries.ServiceView{},
		}
		s.mockQueries.EXPECT().Catalog(gomock.Any(), businessID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CatalogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.StaffModuleEnabled)
		s.Empty(response.Staff)
	})

	s.Run("error: 404 Not Found for unknown business", func() {
		s.mockQueries.EXPECT().Catalog(gomock.Any(), businessID).
			Return(nil, queries.ErrBusinessNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Business not found")
	})

	s.Run("error: 400 Bad Request for invalid business ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/not-a-uuid/catalog", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid business ID")
	})
}
