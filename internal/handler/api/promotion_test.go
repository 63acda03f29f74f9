//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/api"
	resdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/response"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/queries"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/builder"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/httptest"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/testutil"
	commandsmock "github.com/Jacob-ai2ai/travelconnectai-sub001/tests/mock/commands"
	queriesmock "github.com/Jacob-ai2ai/travelconnectai-sub001/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the JWT middleware: any bearer header passes.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}

type PromotionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromotionCommands
	mockQueries  *queriesmock.MockPromotionQueries
}

func (s *PromotionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromotionQueries(s.mockCtrl)
	h := api.NewPromotionHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/promotions/generate", fakeAuth, h.Generate)
	s.router.GET("/api/promotions/pending", h.ListPending)
	s.router.POST("/api/promotions/pending/:promotionId/approve", fakeAuth, h.Approve)
	s.router.POST("/api/promotions/pending/:promotionId/reject", fakeAuth, h.Reject)
	s.router.DELETE("/api/promotions/pending/expired", fakeAuth, h.ClearExpired)
}

func (s *PromotionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromotionHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromotionHandlerTestSuite))
}

type testCasePromotion struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func (s *PromotionHandlerTestSuite) TestGenerate() {
	url := "/api/promotions/generate"
	reqBody := builder.NewPromotionBuilder().BuildGenerateRequestDTO()
	drafts := []promotion.Promotion{builder.NewPromotionBuilder().BuildDomain()}

	cases := []testCasePromotion{
		{name: "unsoldCount zero is allowed", mutate: testutil.Field("unsoldCount", 0), expectCode: http.StatusOK},
		{name: "count omitted defaults to one", mutate: testutil.Field("count", nil), expectCode: http.StatusOK},
		{name: "count upper bound", mutate: testutil.Field("count", 10), expectCode: http.StatusOK},
		{name: "count above bound", mutate: testutil.Field("count", 11), expectCode: http.StatusBadRequest},
		{name: "count zero", mutate: testutil.Field("count", 0), expectCode: http.StatusBadRequest},
		{name: "negative unsoldCount", mutate: testutil.Field("unsoldCount", -1), expectCode: http.StatusBadRequest},
		{name: "missing unsoldCount", mutate: testutil.Field("unsoldCount", nil), expectCode: http.StatusBadRequest},
		{name: "unknown service type", mutate: testutil.Field("serviceType", "cruises"), expectCode: http.StatusBadRequest},
		{name: "missing service type", mutate: testutil.Field("serviceType", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns drafts", func() {
		s.mockCommands.EXPECT().Generate(gomock.Any(), commands.GeneratePromotionsRequest{
			ServiceType: "stays",
			UnsoldCount: 6,
			Seasonality: "current",
			Count:       1,
		}).Return(drafts, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body []resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("promo-001", body[0].ID)
		s.Equal(20, body[0].DiscountValue)
		s.True(body[0].AIGenerated)
	})

	s.Run("validation", func() {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(drafts, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on generator failure", func() {
		s.mockCommands.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Promotion generation failed")
	})
}

func (s *PromotionHandlerTestSuite) TestListPending() {
	pending := []promotion.PendingAIPromotion{builder.NewPromotionBuilder().BuildPending()}

	s.Run("success: no filter", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any(), queries.PendingFilters{}).Return(pending)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promotions/pending", nil, "")

		var body []resdto.PendingPromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("pending-001", body[0].ID)
		s.Equal("pending", body[0].Status)
		s.Equal("critical", body[0].Urgency)
		s.Equal(70, body[0].OccupancyGap)
	})

	s.Run("success: status filter", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.PendingFilters) []promotion.PendingAIPromotion {
				s.Require().NotNil(f.Status)
				s.Equal(promotion.ApprovalApproved, *f.Status)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promotions/pending?status=approved", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promotions/pending?status=maybe", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})
}

func (s *PromotionHandlerTestSuite) TestDecide() {
	approved := builder.NewPromotionBuilder().BuildPending()
	_ = approved.Decide(true)

	s.Run("success: approve", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), "promo-001", true).Return(&approved, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/pending/promo-001/approve", nil, "token")

		var body resdto.PendingPromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body.Status)
		s.Equal("scheduled", body.Promotion.Status)
	})

	s.Run("success: reject passes false", func() {
		rejected := builder.NewPromotionBuilder().BuildPending()
		_ = rejected.Decide(false)
		s.mockCommands.EXPECT().Decide(gomock.Any(), "promo-001", false).Return(&rejected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/pending/promo-001/reject", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), "missing", true).Return(nil, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/pending/missing/approve", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promotion not found")
	})

	s.Run("error: 409 when already decided", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), "promo-001", false).Return(nil, promotion.ErrAlreadyDecided)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/pending/promo-001/reject", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already decided")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), "promo-001", true).Return(nil, errs.Wrap(errors.New("io"), "write"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/pending/promo-001/approve", nil, "token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *PromotionHandlerTestSuite) TestClearExpired() {
	s.mockCommands.EXPECT().ClearExpired(gomock.Any()).Return(3, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/promotions/pending/expired", nil, "token")

	var body resdto.ClearExpiredResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(3, body.Removed)
}
