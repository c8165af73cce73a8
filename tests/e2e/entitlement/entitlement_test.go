//go:build e2e

package entitlement_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"bookingcore/internal/handler/dto/response"
	"bookingcore/tests/common/authtest"
	"bookingcore/tests/common/dbtest"
	"bookingcore/tests/common/httptest"
	"bookingcore/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reserveURL   = "/api/packages/reserve"
	packagesURL  = "/api/businesses/%s/packages"
	purchasesURL = "/api/customer/purchases?business_id=%s&email=%s"
	activateURL  = "/api/dashboard/purchases/%s/activate"
)

type EntitlementSuite struct {
	e2e.SharedSuite
}

func TestEntitlementSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EntitlementSuite))
}

func (s *EntitlementSuite) reserveBody(email string) map[string]any {
	return map[string]any{
		"business_id": dbtest.FixtureBusinessID.String(),
		"package_id":  dbtest.FixturePackageID.String(),
		"customer": map[string]any{
			"name":  "Dana Lee",
			"email": email,
		},
	}
}

// =============================================================================
// TestPurchaseLifecycle - reserve, activate, and list purchases
// =============================================================================

func (s *EntitlementSuite) TestPurchaseLifecycle() {
	s.Run("Normal case: reserve then activate starts the validity window", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, s.reserveBody("dana@example.com"), "")

		var reserved response.ReservePackageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reserved)
		require.Equal(t, "PENDING", reserved.Status)
		require.Equal(t, 10, reserved.TotalSessions)

		var expiryBefore *string
		err := s.DB.QueryRow(context.Background(),
			"SELECT expiry_date::text FROM package_purchases WHERE id = $1", reserved.PurchaseID).Scan(&expiryBefore)
		require.NoError(t, err)
		require.Nil(t, expiryBefore, "a pending purchase has no validity window yet")

		token := authtest.DashboardToken(t, s.Config, dbtest.FixtureBusinessID)
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, reserved.PurchaseID), nil, token)
		require.Equal(t, http.StatusNoContent, aw.Code)

		var status, paymentStatus string
		var expiryAfter *string
		err = s.DB.QueryRow(context.Background(),
			"SELECT status, payment_status, expiry_date::text FROM package_purchases WHERE id = $1", reserved.PurchaseID).
			Scan(&status, &paymentStatus, &expiryAfter)
		require.NoError(t, err)
		require.Equal(t, "ACTIVE", status)
		require.Equal(t, "PAID", paymentStatus)
		require.NotNil(t, expiryAfter, "activation must start the validity window")

		// A second activation finds the purchase no longer pending.
		aw = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(activateURL, reserved.PurchaseID), nil, token)
		httptest.AssertErrorResponse(t, aw, http.StatusConflict, "not pending")
	})

	s.Run("Normal case: customer sees their purchases newest first", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, s.reserveBody("dana@example.com"), "")
		require.Equal(t, http.StatusCreated, w.Code)

		customerID := dbtest.CreateTestCustomer(t, s.DB, dbtest.FixtureBusinessID, "Dana Lee", "dana@example.com")
		dbtest.CreateActivePurchase(t, s.DB, dbtest.FixtureBusinessID, customerID, 10, nil)

		url := fmt.Sprintf(purchasesURL, dbtest.FixtureBusinessID, "dana@example.com")
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var purchases []*response.PurchaseResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &purchases)
		require.Len(t, purchases, 2)
		require.Equal(t, "10-Session Pass", purchases[0].PackageName)
	})

	s.Run("Normal case: public package catalog lists active templates", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(packagesURL, dbtest.FixtureBusinessID), nil, "")

		var packages []*response.PackageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &packages)
		require.Len(t, packages, 1)
		require.Equal(t, "10-Session Pass", packages[0].Name)
		require.Equal(t, 90, packages[0].ValidityDays)
	})

	s.Run("Error case: reserving an unknown package returns 404", func() {
		t := s.T()

		body := s.reserveBody("dana@example.com")
		body["package_id"] = "99999999-9999-9999-9999-999999999999"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Package not found")
	})
}
