//go:build e2e

package jobs_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/jwt"
	"dogcatify-core/tests/common/dbtest"
	"dogcatify-core/tests/common/httptest"
	"dogcatify-core/tests/e2e"
	"dogcatify-core/tests/e2e/common/gatewaytest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	expireOrdersURL = "/api/jobs/expire-orders"
	dispatchURL     = "/api/jobs/dispatch-notifications"
)

// fakeExpo answers the Expo push API. Tokens registered as dead get the
// DeviceNotRegistered receipt inside a 200, the way Expo reports them.
type fakeExpo struct {
	srv *nethttptest.Server

	mu        sync.Mutex
	dead      map[string]bool
	delivered []string
}

func newFakeExpo() *fakeExpo {
	f := &fakeExpo{dead: make(map[string]bool)}
	f.srv = nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			To string `json:"to"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		isDead := f.dead[req.To]
		if !isDead {
			f.delivered = append(f.delivered, req.To)
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if isDead {
			_, _ = w.Write([]byte(`{"data":{"status":"error","message":"device gone","details":{"error":"DeviceNotRegistered"}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"status":"ok"}}`))
	}))
	return f
}

func (f *fakeExpo) MarkDead(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dead[token] = true
}

func (f *fakeExpo) Delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.delivered...)
}

func (f *fakeExpo) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dead = make(map[string]bool)
	f.delivered = nil
}

type JobsSuite struct {
	e2e.SharedSuite
	gateway *gatewaytest.FakeGateway
	expo    *fakeExpo
}

func (s *JobsSuite) SetupSuite() {
	s.gateway = gatewaytest.New()
	s.expo = newFakeExpo()
	s.SetupSharedSuite(s.T(), func(cfg *config.Config) {
		cfg.Gateway.BaseURL = s.gateway.URL()
		cfg.Push.ExpoURL = s.expo.srv.URL
		cfg.Push.FCMURL = s.expo.srv.URL
	})
}

func (s *JobsSuite) TearDownSuite() {
	s.gateway.Close()
	s.expo.srv.Close()
}

func (s *JobsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.gateway.Reset()
	s.expo.Reset()
}

func TestJobsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(JobsSuite))
}

func (s *JobsSuite) schedulerToken(job string) string {
	token, err := jwt.NewService(s.Config.Scheduler.Secret, s.Config.Scheduler.TokenTTL).GenerateToken(job)
	require.NoError(s.T(), err)
	return token
}

// =============================================================================
// TestExpireOrders - stale order sweep
// =============================================================================

func (s *JobsSuite) TestExpireOrders() {
	s.Run("Normal case: aged open orders are cancelled, fresh ones stay", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		customerID := uuid.New()
		aged := dbtest.CreateTestOrder(t, s.DB, partnerID, customerID, "product_purchase", "pending", 30*time.Minute, nil)
		fresh := dbtest.CreateTestOrder(t, s.DB, partnerID, customerID, "product_purchase", "pending", time.Minute, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, expireOrdersURL, nil, s.schedulerToken("expire-orders"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 1, counts["scanned"])
		require.Equal(t, 1, counts["cancelled"])

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "id = $1 AND status = 'cancelled'", aged))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "id = $1 AND status = 'pending'", fresh))

		// A second sweep over the same rows finds nothing to do.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, expireOrdersURL, nil, s.schedulerToken("expire-orders"))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 0, counts["scanned"])
		require.Equal(t, 0, counts["cancelled"])
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "id = $1 AND status = 'cancelled'", aged))
	})

	s.Run("Normal case: an order whose payment was approved is left alone", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		prefID := "123456789-pref-0001"
		orderID := dbtest.CreateTestOrder(t, s.DB, partnerID, uuid.New(), "product_purchase", "pending_payment", 30*time.Minute, &prefID)
		s.gateway.AddPayment(gatewaytest.Payment{ID: 111, Status: "approved", ExternalReference: orderID.String()})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, expireOrdersURL, nil, s.schedulerToken("expire-orders"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 1, counts["scanned"])
		require.Equal(t, 1, counts["skipped"])
		require.Equal(t, 0, counts["cancelled"])

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "id = $1 AND status = 'pending_payment'", orderID))
	})

	s.Run("Normal case: sweep cancels the pending payment and the booking", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Groomer Pocitos")
		customerID := uuid.New()
		prefID := "123456789-pref-0002"
		orderID := dbtest.CreateTestOrder(t, s.DB, partnerID, customerID, "service_booking", "pending_payment", 30*time.Minute, &prefID)
		dbtest.CreateTestBooking(t, s.DB, orderID, partnerID, customerID, time.Now().Add(48*time.Hour))
		s.gateway.AddPayment(gatewaytest.Payment{ID: 222, Status: "pending", ExternalReference: orderID.String()})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, expireOrdersURL, nil, s.schedulerToken("expire-orders"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 1, counts["cancelled"])

		require.Contains(t, s.gateway.CancelledIDs(), int64(222))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders", "id = $1 AND status = 'cancelled'", orderID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "order_id = $1 AND status = 'cancelled'", orderID))
	})

	s.Run("Error case: scheduler endpoints reject missing tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, expireOrdersURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestDispatchNotifications - due notification delivery
// =============================================================================

func (s *JobsSuite) TestDispatchNotifications() {
	s.Run("Normal case: due notification is delivered over expo", func() {
		t := s.T()

		userID := uuid.New()
		notificationID := dbtest.CreateTestNotification(t, s.DB, userID, time.Now().Add(-time.Minute), 0)
		dbtest.CreateTestDeviceToken(t, s.DB, userID, "expo", "ExponentPushToken[alive]")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dispatchURL, nil, s.schedulerToken("dispatch-notifications"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 1, counts["drained"])
		require.Equal(t, 1, counts["sent"])

		require.Contains(t, s.expo.Delivered(), "ExponentPushToken[alive]")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "scheduled_notifications",
			"id = $1 AND status = 'sent' AND sent_channel = 'expo' AND sent_at IS NOT NULL", notificationID))
	})

	s.Run("Normal case: dead expo token is pruned and the attempt retried", func() {
		t := s.T()

		userID := uuid.New()
		notificationID := dbtest.CreateTestNotification(t, s.DB, userID, time.Now().Add(-time.Minute), 0)
		dbtest.CreateTestDeviceToken(t, s.DB, userID, "expo", "ExponentPushToken[gone]")
		s.expo.MarkDead("ExponentPushToken[gone]")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dispatchURL, nil, s.schedulerToken("dispatch-notifications"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 1, counts["retried"])

		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "device_tokens", "user_id = $1", userID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "scheduled_notifications",
			"id = $1 AND status = 'pending' AND retry_count = 1", notificationID))
	})

	s.Run("Normal case: no device token fails immediately without burning retries", func() {
		t := s.T()

		notificationID := dbtest.CreateTestNotification(t, s.DB, uuid.New(), time.Now().Add(-time.Minute), 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dispatchURL, nil, s.schedulerToken("dispatch-notifications"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 1, counts["failed"])

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "scheduled_notifications",
			"id = $1 AND status = 'failed' AND retry_count = 0 AND error_message = 'no device token registered'", notificationID))
	})

	s.Run("Normal case: future notifications are not drained", func() {
		t := s.T()

		dbtest.CreateTestNotification(t, s.DB, uuid.New(), time.Now().Add(time.Hour), 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dispatchURL, nil, s.schedulerToken("dispatch-notifications"))

		var counts map[string]int
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &counts)
		require.Equal(t, 0, counts["drained"])
	})
}
