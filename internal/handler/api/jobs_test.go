//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dogcatify-core/internal/handler/api"
	"dogcatify-core/internal/handler/middleware"
	"dogcatify-core/internal/pkg/jwt"
	"dogcatify-core/internal/usecase/jobs"
	"dogcatify-core/tests/common/httptest"
	jobsmock "dogcatify-core/tests/mock/jobs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobsHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSweeper    *jobsmock.MockExpirationSweeper
	mockDispatcher *jobsmock.MockNotificationDispatcher
	tokens         *jwt.Service
	handler        *api.JobsHandler
}

func (s *JobsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSweeper = jobsmock.NewMockExpirationSweeper(s.mockCtrl)
	s.mockDispatcher = jobsmock.NewMockNotificationDispatcher(s.mockCtrl)
	s.tokens = jwt.NewService("test-scheduler-secret", 15*time.Minute)
	s.handler = api.NewJobsHandler(s.mockSweeper, s.mockDispatcher)

	auth := middleware.NewSchedulerAuthMiddleware(s.tokens)
	guarded := s.router.Group("/jobs", auth.RequireSchedulerToken())
	guarded.POST("/expire-orders", s.handler.ExpireOrders)
	guarded.POST("/dispatch-notifications", s.handler.DispatchNotifications)
}

func (s *JobsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJobsHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobsHandlerTestSuite))
}

func (s *JobsHandlerTestSuite) schedulerToken(job string) string {
	token, err := s.tokens.GenerateToken(job)
	s.Require().NoError(err)
	return token
}

func (s *JobsHandlerTestSuite) TestExpireOrders() {
	url := "/jobs/expire-orders"

	s.Run("success: returns the sweep counters", func() {
		s.mockSweeper.EXPECT().Run(gomock.Any()).
			Return(jobs.SweepResult{Scanned: 5, Cancelled: 3, Skipped: 1, Failed: 1}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.schedulerToken("expire-orders"))

		var body map[string]int
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body["scanned"])
		s.Equal(3, body["cancelled"])
		s.Equal(1, body["skipped"])
		s.Equal(1, body["failed"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Scheduler token required")
	})

	s.Run("error: 401 with a token signed by someone else", func() {
		forged, err := jwt.NewService("wrong-secret", 15*time.Minute).GenerateToken("expire-orders")
		s.Require().NoError(err)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, forged)

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Invalid or expired scheduler token")
	})

	s.Run("error: 500 when the sweep itself fails", func() {
		s.mockSweeper.EXPECT().Run(gomock.Any()).
			Return(jobs.SweepResult{}, jobs.ErrSweepQueryFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.schedulerToken("expire-orders"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Sweep failed")
	})
}

func (s *JobsHandlerTestSuite) TestDispatchNotifications() {
	url := "/jobs/dispatch-notifications"

	s.Run("success: returns the dispatch counters", func() {
		s.mockDispatcher.EXPECT().Run(gomock.Any()).
			Return(jobs.DispatchResult{Drained: 4, Sent: 2, Retried: 1, Failed: 1}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.schedulerToken("dispatch-notifications"))

		var body map[string]int
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body["drained"])
		s.Equal(2, body["sent"])
		s.Equal(1, body["retried"])
		s.Equal(1, body["failed"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 500 when the dispatch fails", func() {
		s.mockDispatcher.EXPECT().Run(gomock.Any()).
			Return(jobs.DispatchResult{}, jobs.ErrDispatchQueryFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.schedulerToken("dispatch-notifications"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Dispatch failed")
	})
}
