//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"testing"
	"time"

	"bookingcore/internal/handler/dto/response"
	"bookingcore/tests/common/authtest"
	"bookingcore/tests/common/dbtest"
	"bookingcore/tests/common/httptest"
	"bookingcore/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/api/availability?business_id=%s&service_id=%s&date=%s"
	appointmentsURL = "/api/appointments"
	dashboardURL    = "/api/dashboard/appointments"
)

// A future Monday, which the fixture schedule (Mon-Sat, 09:00-18:00) covers.
var bookingDate = upcomingMonday()

func upcomingMonday() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) availability(date string) response.AvailabilityResponse {
	url := fmt.Sprintf(availabilityURL, dbtest.FixtureBusinessID, dbtest.FixtureServiceID, date)
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")

	var resp response.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	return resp
}

func (s *BookingSuite) createBody(startTime, email string) map[string]any {
	return map[string]any{
		"business_id": dbtest.FixtureBusinessID.String(),
		"service_id":  dbtest.FixtureServiceID.String(),
		"date":        bookingDate,
		"start_time":  startTime,
		"customer": map[string]any{
			"name":  "Dana Lee",
			"email": email,
		},
	}
}

// =============================================================================
// TestBookingFlow - availability, creation, and double-booking protection
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: booked slot disappears from availability", func() {
		t := s.T()

		before := s.availability(bookingDate)
		require.Contains(t, before.Slots, "10:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.createBody("10:00", "dana@example.com"), "")

		var created response.CreateAppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.AppointmentID)
		require.Equal(t, "PENDING", created.Status)

		after := s.availability(bookingDate)
		require.NotContains(t, after.Slots, "10:00")
		// The 60-minute service also blocks the half-slot it overlaps.
		require.NotContains(t, after.Slots, "10:30")
	})

	s.Run("Error case: overlapping booking is rejected with 409", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.createBody("11:00", "first@example.com"), "")
		require.Equal(t, http.StatusCreated, w.Code)

		// Same staff scope, overlapping range.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.createBody("11:30", "second@example.com"), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer available")
	})

	s.Run("Normal case: unconfigured business returns empty availability", func() {
		t := s.T()

		serviceID := uuid.New()
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO services (id, business_id, name, duration_min, price_cents) VALUES ($1, $2, 'Trim', 30, 2500)",
			serviceID, dbtest.FixtureUnconfiguredBusinessID)
		require.NoError(t, err)

		url := fmt.Sprintf(availabilityURL, dbtest.FixtureUnconfiguredBusinessID, serviceID, bookingDate)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var resp response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Empty(t, resp.Slots)
	})

	s.Run("Error case: staff id is rejected when the staff module is disabled", func() {
		t := s.T()

		serviceID := uuid.New()
		_, err := s.DB.Exec(context.Background(),
			"INSERT INTO services (id, business_id, name, duration_min, price_cents) VALUES ($1, $2, 'Trim', 30, 2500)",
			serviceID, dbtest.FixtureUnconfiguredBusinessID)
		require.NoError(t, err)

		body := map[string]any{
			"business_id": dbtest.FixtureUnconfiguredBusinessID.String(),
			"service_id":  serviceID.String(),
			"date":        bookingDate,
			"start_time":  "10:00",
			"staff_id":    dbtest.FixtureStaffID.String(),
			"customer": map[string]any{
				"name":  "Dana Lee",
				"email": "dana@example.com",
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not enabled")
	})

	s.Run("Error case: dashboard endpoints require a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL+"?date="+bookingDate, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestConcurrentBooking - racing writers on one slot
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Normal case: two simultaneous requests for one slot produce one booking", func() {
		t := s.T()

		codes := make(chan int, 2)
		for i := range 2 {
			email := fmt.Sprintf("racer%d@example.com", i)
			go func() {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.createBody("12:00", email), "")
				codes <- w.Code
			}()
		}

		got := []int{<-codes, <-codes}
		sort.Ints(got)
		require.Equal(t, []int{http.StatusCreated, http.StatusConflict}, got)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM appointments WHERE business_id = $1", dbtest.FixtureBusinessID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "the losing request must not leave a row behind")
	})
}

// =============================================================================
// TestPackageBooking - session debit inside the booking transaction
// =============================================================================

func (s *BookingSuite) TestPackageBooking() {
	s.Run("Normal case: package booking debits a session and costs nothing", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, dbtest.FixtureBusinessID, "Dana Lee", "dana@example.com")
		purchaseID := dbtest.CreateActivePurchase(t, s.DB, dbtest.FixtureBusinessID, customerID, 10, nil)

		body := s.createBody("10:00", "dana@example.com")
		body["package_purchase_id"] = purchaseID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, "")

		var created response.CreateAppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotNil(t, created.RemainingSessions)
		require.Equal(t, 9, *created.RemainingSessions)

		var used, remaining int
		err := s.DB.QueryRow(context.Background(),
			"SELECT used_sessions, remaining_sessions FROM package_purchases WHERE id = $1", purchaseID).
			Scan(&used, &remaining)
		require.NoError(t, err)
		require.Equal(t, 1, used)
		require.Equal(t, 9, remaining)

		token := authtest.DashboardToken(t, s.Config, dbtest.FixtureBusinessID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL+"/"+created.AppointmentID.String(), nil, token)

		var detail response.AppointmentResponse
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, &detail)
		require.Zero(t, detail.PriceCents)
	})

	s.Run("Error case: package owned by another customer is rejected", func() {
		t := s.T()

		ownerID := dbtest.CreateTestCustomer(t, s.DB, dbtest.FixtureBusinessID, "Sam Wu", "sam@example.com")
		purchaseID := dbtest.CreateActivePurchase(t, s.DB, dbtest.FixtureBusinessID, ownerID, 10, nil)

		body := s.createBody("10:00", "intruder@example.com")
		body["package_purchase_id"] = purchaseID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "another customer")
	})

	s.Run("Error case: failed booking still persists discovered expiry", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, dbtest.FixtureBusinessID, "Dana Lee", "dana@example.com")
		expiry := time.Now().AddDate(0, 0, -1)
		purchaseID := dbtest.CreateActivePurchase(t, s.DB, dbtest.FixtureBusinessID, customerID, 10, &expiry)

		body := s.createBody("10:00", "dana@example.com")
		body["package_purchase_id"] = purchaseID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "expired")

		var status string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM package_purchases WHERE id = $1", purchaseID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "EXPIRED", status)

		var count int
		err = s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM appointments WHERE business_id = $1", dbtest.FixtureBusinessID).Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "no appointment row may survive a failed package booking")
	})
}

// =============================================================================
// TestCancelAndRestore - cancellation keeps the debit, restore credits it back
// =============================================================================

func (s *BookingSuite) TestCancelAndRestore() {
	s.Run("Normal case: cancel keeps the debit, restore credits it back once", func() {
		t := s.T()

		customerID := dbtest.CreateTestCustomer(t, s.DB, dbtest.FixtureBusinessID, "Dana Lee", "dana@example.com")
		purchaseID := dbtest.CreateActivePurchase(t, s.DB, dbtest.FixtureBusinessID, customerID, 10, nil)

		body := s.createBody("10:00", "dana@example.com")
		body["package_purchase_id"] = purchaseID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, "")

		var created response.CreateAppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		token := authtest.DashboardToken(t, s.Config, dbtest.FixtureBusinessID)
		cancelURL := dashboardURL + "/" + created.AppointmentID.String() + "/cancel"

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusNoContent, cw.Code)

		var remaining int
		err := s.DB.QueryRow(context.Background(),
			"SELECT remaining_sessions FROM package_purchases WHERE id = $1", purchaseID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, 9, remaining, "cancellation must not refund the session")

		restoreURL := dashboardURL + "/" + created.AppointmentID.String() + "/restore-session"
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, restoreURL, nil, token)

		var restored response.RestoreSessionResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &restored)
		require.Equal(t, purchaseID, restored.PurchaseID)
		require.Equal(t, 10, restored.RemainingSessions)

		// The usage row is gone, so a second restore has nothing to credit.
		rw = httptest.PerformRequest(t, s.Router, http.MethodPost, restoreURL, nil, token)
		httptest.AssertErrorResponse(t, rw, http.StatusNotFound, "No session usage")
	})

	s.Run("Error case: double cancel is rejected with 409", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.createBody("14:00", "dana@example.com"), "")

		var created response.CreateAppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		token := authtest.DashboardToken(t, s.Config, dbtest.FixtureBusinessID)
		cancelURL := dashboardURL + "/" + created.AppointmentID.String() + "/cancel"

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusNoContent, cw.Code)

		cw = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		httptest.AssertErrorResponse(t, cw, http.StatusConflict, "already cancelled")

		// Cancelled slots reopen.
		after := s.availability(bookingDate)
		require.Contains(t, after.Slots, "14:00")
	})
}
