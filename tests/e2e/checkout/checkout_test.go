//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"
	"time"

	resdto "dogcatify-core/internal/handler/dto/response"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/tests/common/builder"
	"dogcatify-core/tests/common/dbtest"
	"dogcatify-core/tests/common/httptest"
	"dogcatify-core/tests/e2e"
	"dogcatify-core/tests/e2e/common/gatewaytest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const checkoutURL = "/api/checkout"

type CheckoutSuite struct {
	e2e.SharedSuite
	gateway *gatewaytest.FakeGateway
}

func (s *CheckoutSuite) SetupSuite() {
	s.gateway = gatewaytest.New()
	s.SetupSharedSuite(s.T(), func(cfg *config.Config) {
		cfg.Gateway.BaseURL = s.gateway.URL()
	})
}

func (s *CheckoutSuite) TearDownSuite() {
	s.gateway.Close()
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.gateway.Reset()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

// =============================================================================
// TestCheckout - order creation with a hosted payment session
// =============================================================================

func (s *CheckoutSuite) TestCheckout() {
	s.Run("Normal case: product checkout creates an order awaiting payment", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, "checkout should succeed: %s", w.Body.String())

		var created resdto.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.PreferenceID)
		require.Contains(t, created.CheckoutURL, created.PreferenceID)
		require.Equal(t, "pending_payment", created.Order.Status)
		require.Equal(t, "244.00", created.Order.TotalAmount)
		require.Equal(t, "12.20", created.Order.CommissionAmount)
		require.Equal(t, "231.80", created.Order.PartnerAmount)

		// The row carries the attached session.
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders",
			"id = $1 AND status = 'pending_payment' AND preference_id = $2",
			created.Order.ID, created.PreferenceID))

		// Production OAuth partner: the preference carries the split.
		bodies := s.gateway.PreferenceBodies()
		require.Len(t, bodies, 1)
		require.Contains(t, bodies[0], "marketplace_fee")
		require.Contains(t, bodies[0], "collector_id")
		require.Equal(t, created.Order.ID, bodies[0]["external_reference"])
	})

	s.Run("Normal case: gateway charge covers exclusive tax and shipping", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			WithShipping(decimal.NewFromInt(150)).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, "checkout should succeed: %s", w.Body.String())

		var created resdto.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "394.00", created.Order.TotalAmount)

		// The session's items must add up to exactly what the order says
		// is owed: raw lines plus synthetic tax and shipping lines.
		bodies := s.gateway.PreferenceBodies()
		require.Len(t, bodies, 1)
		items, ok := bodies[0]["items"].([]any)
		require.True(t, ok)

		var charged float64
		titles := make([]string, 0, len(items))
		for _, raw := range items {
			item, ok := raw.(map[string]any)
			require.True(t, ok)
			charged += item["unit_price"].(float64) * item["quantity"].(float64)
			titles = append(titles, item["title"].(string))
		}
		require.InDelta(t, 394.0, charged, 0.001)
		require.Contains(t, titles, "Tax")
		require.Contains(t, titles, "Shipping")

		// Return redirects identify the order.
		backURLs, ok := bodies[0]["back_urls"].(map[string]any)
		require.True(t, ok)
		require.Contains(t, backURLs["success"].(string), "order_id="+created.Order.ID)
	})

	s.Run("Normal case: service checkout books the slot in the same transaction", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Groomer Pocitos")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			WithKind("service_booking").
			WithBooking(uuid.New(), time.Now().Add(48*time.Hour)).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, "checkout should succeed: %s", w.Body.String())

		var created resdto.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "order_id = $1", created.Order.ID))
	})

	s.Run("Normal case: sandbox partner gets no split and the sandbox URL", func() {
		t := s.T()

		partnerID := dbtest.CreateSandboxPartner(t, s.DB, "Test Shelter")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var created resdto.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Contains(t, created.CheckoutURL, "sandbox")

		bodies := s.gateway.PreferenceBodies()
		require.Len(t, bodies, 1)
		require.NotContains(t, bodies[0], "marketplace_fee")
		require.NotContains(t, bodies[0], "collector_id")
	})

	s.Run("Error case: gateway failure rolls the order and booking back", func() {
		t := s.T()

		s.gateway.FailPreferences(true)
		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			WithKind("service_booking").
			WithBooking(uuid.New(), time.Now().Add(48*time.Hour)).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Payment session could not be created")

		// Compensation removed every trace of the attempt.
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "orders", ""))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "bookings", ""))
	})

	s.Run("Error case: unknown partner is a 404", func() {
		t := s.T()

		reqBody := builder.NewOrderBuilder().BuildCheckoutRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Partner not found")
	})

	s.Run("Error case: partner without credentials cannot accept payments", func() {
		t := s.T()

		partnerID := dbtest.CreateUnconnectedPartner(t, s.DB, "Fresh Partner")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Partner cannot accept payments")

		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "orders", ""))
	})

	s.Run("Error case: service checkout without a booking is rejected", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Groomer Pocitos")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			WithKind("service_booking").
			BuildCheckoutRequestDTO()
		reqBody.Booking = nil

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid checkout request")
	})
}

// =============================================================================
// TestConnectPartner - marketplace OAuth completion
// =============================================================================

func (s *CheckoutSuite) TestConnectPartner() {
	s.Run("Normal case: code exchange stores OAuth credentials", func() {
		t := s.T()

		partnerID := dbtest.CreateUnconnectedPartner(t, s.DB, "Fresh Partner")
		reqBody := map[string]any{
			"authorization_code": "TG-auth-code-12345",
			"redirect_uri":       "https://app.dogcatify.com/oauth/callback",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/partners/"+partnerID.String()+"/connect", reqBody, "")

		var connected resdto.ConnectPartnerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &connected)
		require.Equal(t, partnerID.String(), connected.PartnerID)
		require.Equal(t, int64(445566), connected.MPUserID)
		require.Equal(t, "production", connected.Environment)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "partners",
			"id = $1 AND mp_connection_mode = 'oauth' AND mp_access_token = 'APP_USR-exchanged-access-token' AND mp_user_id = 445566",
			partnerID))

		// The connected partner can now take a checkout.
		checkoutReq := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			BuildCheckoutRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, checkoutReq, "")
		require.Equal(t, http.StatusCreated, w.Code, "checkout should succeed: %s", w.Body.String())
	})

	s.Run("Error case: unknown partner is a 404", func() {
		t := s.T()

		reqBody := map[string]any{
			"authorization_code": "TG-auth-code-12345",
			"redirect_uri":       "https://app.dogcatify.com/oauth/callback",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/partners/"+uuid.NewString()+"/connect", reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Partner not found")
	})
}

// =============================================================================
// TestGetOrder - read side after a checkout
// =============================================================================

func (s *CheckoutSuite) TestGetOrder() {
	s.Run("Normal case: created order is readable with line items", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		reqBody := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.PartnerID = partnerID }).
			BuildCheckoutRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code)
		var created resdto.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+created.Order.ID, nil, "")
		var fetched resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.Order.ID, fetched.ID)

		expected := &resdto.OrderResponse{
			Items: []resdto.OrderItemResponse{
				{
					Name:      "Dog food 10kg",
					UnitPrice: "100.00",
					Quantity:  2,
					Subtotal:  "200.00",
					TaxAmount: "44.00",
					Discount:  "0.00",
					Currency:  "UYU",
				},
			},
			Subtotal:         "200.00",
			TaxAmount:        "44.00",
			ShippingCost:     "0.00",
			TotalAmount:      "244.00",
			CommissionAmount: "12.20",
			PartnerAmount:    "231.80",
			Kind:             "product_purchase",
			Status:           "pending_payment",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.OrderResponse{}, "ID", "PartnerID", "CustomerID", "PreferenceID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &fetched, opts...); diff != "" {
			t.Errorf("Order response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: list filters by partner and status", func() {
		t := s.T()

		partnerID := dbtest.CreateTestPartner(t, s.DB, "Vet Clinic Centro")
		otherID := dbtest.CreateTestPartner(t, s.DB, "Groomer Pocitos")
		customerID := uuid.New()
		dbtest.CreateTestOrder(t, s.DB, partnerID, customerID, "product_purchase", "confirmed", 0, nil)
		dbtest.CreateTestOrder(t, s.DB, partnerID, customerID, "product_purchase", "pending", 0, nil)
		dbtest.CreateTestOrder(t, s.DB, otherID, customerID, "product_purchase", "confirmed", 0, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/orders?partner_id="+partnerID.String()+"&status=confirmed&limit=50", nil, "")
		var listed []resdto.OrderListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, partnerID.String(), listed[0].PartnerID)
		require.Equal(t, "confirmed", listed[0].Status)
	})
}
