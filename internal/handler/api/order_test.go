//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dogcatify-core/internal/handler/api"
	resdto "dogcatify-core/internal/handler/dto/response"
	"dogcatify-core/internal/usecase/queries"
	"dogcatify-core/tests/common/builder"
	"dogcatify-core/tests/common/httptest"
	queriesmock "dogcatify-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOrderQueries
	handler     *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockQueries)

	s.router.GET("/orders/:id", s.handler.Get)
	s.router.GET("/orders", s.handler.List)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGet() {
	returnView := builder.NewOrderBuilder().BuildViewQuery()

	s.Run("success: returns 200 with prices as fixed-point strings", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+returnView.ID.String(), nil, "")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body.ID)
		s.Equal(returnView.TotalAmount.StringFixed(2), body.TotalAmount)
		s.Equal(returnView.CommissionAmount.StringFixed(2), body.CommissionAmount)
		s.Len(body.Items, len(returnView.Items))
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 on an unknown order", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), missing).
			Return(nil, queries.ErrOrderNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+missing.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestList() {
	partnerID := uuid.New()
	listView := []*queries.OrderListView{
		{
			ID:          uuid.New(),
			PartnerID:   partnerID,
			CustomerID:  uuid.New(),
			TotalAmount: decimal.RequireFromString("244.00"),
			Kind:        "product_purchase",
			Status:      "confirmed",
			CreatedAt:   time.Now().UTC(),
		},
	}

	s.Run("success: filters parse into the query", func() {
		status := "confirmed"
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.OrderFilter{PartnerID: &partnerID, Status: &status, Limit: 10}).
			Return(listView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/orders?partner_id="+partnerID.String()+"&status=confirmed&limit=10", nil, "")

		var body []resdto.OrderListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(listView[0].ID.String(), body[0].ID)
		s.Equal("244.00", body[0].TotalAmount)
	})

	s.Run("success: no filters list everything", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.OrderFilter{}).
			Return(listView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")

		var body []resdto.OrderListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on a malformed partner filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?partner_id=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})

	s.Run("error: 400 on a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}
