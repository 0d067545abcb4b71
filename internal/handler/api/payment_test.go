//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"staybilling/internal/handler/api"
	"staybilling/internal/pkg/jwt"
	"staybilling/internal/usecase/commands"
	"staybilling/internal/usecase/queries"
	"staybilling/tests/common/builder"
	"staybilling/tests/common/httptest"
	"staybilling/tests/common/testutil"
	commandsmock "staybilling/tests/mock/commands"
	queriesmock "staybilling/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCmds    *commandsmock.MockPaymentCommands
	mockQueries *queriesmock.MockPaymentQueries
	handler     *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCmds, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", jwt.RoleGuest)
		c.Next()
	}

	s.router.POST("/payments", authMiddleware, s.handler.Create)
	s.router.GET("/payments/:id", authMiddleware, s.handler.Get)
	s.router.GET("/bookings/:bookingId/payment", authMiddleware, s.handler.GetByBooking)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreate() {
	url := "/payments"

	paymentBuilder := builder.NewPaymentBuilder()
	reqBody := paymentBuilder.BuildCreateRequestDTO()
	expectedResult := paymentBuilder.BuildCreateResult()

	s.Run("success: returns 201 with payment and consistency result", func() {
		s.mockCmds.EXPECT().ValidateAndCreatePayment(gomock.Any(), reqBody, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Payment struct {
				ID          string  `json:"id"`
				Amount      float64 `json:"amount"`
				HostEarning float64 `json:"hostEarning"`
			} `json:"payment"`
			Consistency struct {
				IsValid bool `json:"is_valid"`
			} `json:"consistency"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(paymentBuilder.PaymentID.String(), body.Payment.ID)
		s.InDelta(9332.10, body.Payment.Amount, 0.001)
		s.InDelta(5440.0, body.Payment.HostEarning, 0.001)
		s.True(body.Consistency.IsValid)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing booking id", mutate: testutil.Field("booking_id", nil)},
			{name: "missing total amount", mutate: testutil.Field("total_amount", nil)},
			{name: "negative gst", mutate: testutil.Field("gst", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 404 when booking does not exist", func() {
		s.mockCmds.EXPECT().ValidateAndCreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when payment already exists", func() {
		s.mockCmds.EXPECT().ValidateAndCreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPaymentExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 422 when client figures drift beyond tolerance", func() {
		s.mockCmds.EXPECT().ValidateAndCreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPriceMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Price verification failed")
	})
}

func (s *PaymentHandlerTestSuite) TestGet() {
	paymentID := uuid.New()
	view := &queries.PaymentView{
		ID:           paymentID,
		BookingID:    uuid.New(),
		AmountCents:  933210,
		Breakdown:    json.RawMessage(`{"mode":"daily"}`),
		PayoutStatus: "pending",
		RefundFlag:   "none",
	}

	s.Run("success: returns 200 with payment view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), paymentID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+paymentID.String(), nil, "bearer-token")

		var body struct {
			ID          string `json:"id"`
			AmountCents int64  `json:"amountCents"`
			RefundFlag  string `json:"refundFlag"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(paymentID.String(), body.ID)
		s.Equal(int64(933210), body.AmountCents)
		s.Equal("none", body.RefundFlag)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 when payment missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), paymentID).
			Return(nil, commands.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+paymentID.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
