//go:build e2e

package billing_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"staybilling/internal/pkg/jwt"
	"staybilling/tests/common/authtest"
	"staybilling/tests/common/builder"
	"staybilling/tests/common/dbtest"
	"staybilling/tests/common/httptest"
	"staybilling/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL              = "/api/pricing/quote"
	paymentsURL           = "/api/payments"
	paymentURL            = "/api/payments/%s"
	paymentAuditURL       = "/api/payments/%s/audit"
	bookingPaymentURL     = "/api/bookings/%s/payment"
	refundComputeURL      = "/api/refunds/compute"
	refundsURL            = "/api/refunds"
	refundStatusURL       = "/api/refunds/%s/status"
	ratesURL              = "/api/rates"
	rateCurrentURL        = "/api/rates/current"
	validationFailuresURL = "/api/audit/validation-failures?limit=10"
)

type BillingSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func (s *BillingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BillingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBillingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BillingSuite))
}

type breakdownBody struct {
	Subtotal      float64 `json:"subtotal"`
	PlatformFee   float64 `json:"platformFee"`
	GST           float64 `json:"gst"`
	ProcessingFee float64 `json:"processingFee"`
	TotalAmount   float64 `json:"totalAmount"`
	HostEarning   float64 `json:"hostEarning"`
}

type quoteBody struct {
	Breakdown breakdownBody `json:"breakdown"`
	Rate      struct {
		Rate     float64 `json:"rate"`
		Version  int     `json:"version"`
		Fallback bool    `json:"fallback"`
	} `json:"rate"`
	Coupon *struct {
		Code     string  `json:"code"`
		Discount float64 `json:"discount"`
	} `json:"coupon"`
}

type paymentBody struct {
	Payment struct {
		ID          string  `json:"id"`
		BookingID   string  `json:"bookingId"`
		Amount      float64 `json:"amount"`
		HostEarning float64 `json:"hostEarning"`
		RefundFlag  string  `json:"refundFlag"`
	} `json:"payment"`
	Consistency struct {
		IsValid   bool    `json:"is_valid"`
		Tolerance float64 `json:"tolerance"`
	} `json:"consistency"`
}

type refundBody struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Scenario string  `json:"scenario"`
	Status   string  `json:"status"`
	Version  int     `json:"version"`
}

// =============================================================================
// TestQuote - Pricing quote API tests
// =============================================================================

func (s *BillingSuite) TestQuote() {
	s.Run("Normal case: Guest gets a quote with the active rate", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleGuest)

		reqBody := builder.NewPricingBuilder().BuildQuoteRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)

		var body quoteBody
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.InDelta(t, 6900.0, body.Breakdown.Subtotal, 0.001)
		require.InDelta(t, 9332.10, body.Breakdown.TotalAmount, 0.001)
		require.InDelta(t, 5440.0, body.Breakdown.HostEarning, 0.001)
		require.InDelta(t, 0.15, body.Rate.Rate, 0.0001)
		require.False(t, body.Rate.Fallback, "seeded rate should be used, not the fallback")
	})

	s.Run("Normal case: Coupon discount flows into the breakdown", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleGuest)

		dbtest.CreateTestCoupon(t, s.DB, "WELCOME200", "fixed", 200, 0)

		reqBody := builder.NewPricingBuilder().BuildQuoteRequestDTO()
		code := "welcome200"
		reqBody.CouponCode = &code

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)

		var body quoteBody
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.NotNil(t, body.Coupon)
		require.Equal(t, "WELCOME200", body.Coupon.Code)
		require.InDelta(t, 200.0, body.Coupon.Discount, 0.001)
		require.InDelta(t, 6700.0, body.Breakdown.Subtotal, 0.001, "discount should shrink the customer subtotal")
	})

	s.Run("Normal case: Missing rate configuration falls back to the default", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleGuest)

		_, err := s.DB.Exec(context.Background(), "UPDATE platform_rates SET active = FALSE")
		require.NoError(t, err)

		reqBody := builder.NewPricingBuilder().BuildQuoteRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)

		var body quoteBody
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.True(t, body.Rate.Fallback)
		require.InDelta(t, 0.15, body.Rate.Rate, 0.0001)
		require.InDelta(t, 9332.10, body.Breakdown.TotalAmount, 0.001, "fallback rate must not block the quote")
	})

	s.Run("Error case: Unknown coupon returns 404", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleGuest)

		reqBody := builder.NewPricingBuilder().BuildQuoteRequestDTO()
		code := "NOPE"
		reqBody.CouponCode = &code

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Coupon not found")
	})

	s.Run("Error case: Unauthenticated request returns 401", func() {
		t := s.T()
		reqBody := builder.NewPricingBuilder().BuildQuoteRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRateActivation - Versioned platform rate tests
// =============================================================================

func (s *BillingSuite) TestRateActivation() {
	s.Run("Normal case: New rate version is used by subsequent quotes", func() {
		t := s.T()
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		guestToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ratesURL,
			map[string]any{"rate": 0.20}, adminToken)

		var activated struct {
			Rate    float64 `json:"rate"`
			Version int     `json:"version"`
			Active  bool    `json:"active"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &activated)
		require.Equal(t, 2, activated.Version, "seeded rate is version 1")
		require.True(t, activated.Active)

		reqBody := builder.NewPricingBuilder().BuildQuoteRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, guestToken)

		var body quoteBody
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.InDelta(t, 0.20, body.Rate.Rate, 0.0001)
		require.Equal(t, 2, body.Rate.Version)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rateCurrentURL, nil, adminToken)
		var current struct {
			Rate    float64 `json:"rate"`
			Version int     `json:"version"`
			Active  bool    `json:"active"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &current)
		require.InDelta(t, 0.20, current.Rate, 0.0001)
		require.Equal(t, 2, current.Version)
		require.True(t, current.Active)
	})

	s.Run("Error case: Non-admin cannot activate a rate", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleHost)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ratesURL,
			map[string]any{"rate": 0.20}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestCreatePayment - Payment validation API tests
// =============================================================================

func (s *BillingSuite) TestCreatePayment() {
	s.Run("Normal case: Matching client figures create the payment", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)

		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())

		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)

		var body paymentBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		require.NotEmpty(t, body.Payment.ID)
		require.Equal(t, bookingID.String(), body.Payment.BookingID)
		require.InDelta(t, 9332.10, body.Payment.Amount, 0.001)
		require.InDelta(t, 5440.0, body.Payment.HostEarning, 0.001)
		require.True(t, body.Consistency.IsValid)

		// Audit trail carries the completed payment_created entry
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(paymentAuditURL, body.Payment.ID), nil, adminToken)

		var trail []struct {
			Action string `json:"action"`
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &trail)
		require.Len(t, trail, 1)
		require.Equal(t, "payment_created", trail[0].Action)
		require.Equal(t, "completed", trail[0].Status)
	})

	s.Run("Error case: Duplicate payment for the same booking returns 409", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)

		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())

		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Error case: Drifted client total is rejected and audited", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)

		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())

		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID
		reqBody.TotalAmount += 5.00

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Price verification failed")

		// No payment row exists for the booking
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingPaymentURL, bookingID), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		// The failure shows up in the admin validation-failure feed
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, validationFailuresURL, nil, adminToken)

		var failures []struct {
			Action   string `json:"action"`
			Severity string `json:"severity"`
			Status   string `json:"status"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &failures)
		require.Len(t, failures, 1)
		require.Equal(t, "validation_failed", failures[0].Action)
		require.Equal(t, "critical", failures[0].Severity)
		require.Equal(t, "rejected", failures[0].Status)
	})

	s.Run("Edge case: Expired stored coupon drops the discount, not the payment", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)

		couponID := dbtest.CreateTestCoupon(t, s.DB, "LATE200", "fixed", 200, 0)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE coupons SET valid_to = now() - interval '1 day' WHERE id = $1", couponID)
		require.NoError(t, err)

		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBookingWithCoupon(t, s.DB, guestID, uuid.New(),
			pb.Pricing.BuildParams(), couponID, "LATE200")

		// Client figures carry no discount, matching the degraded recomputation
		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)

		var body paymentBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		require.InDelta(t, 9332.10, body.Payment.Amount, 0.001)
	})

	s.Run("Edge case: Audit outage never changes the payment decision", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)

		ctx := context.Background()
		_, err := s.DB.Exec(ctx, "ALTER TABLE audit_logs RENAME TO audit_logs_offline")
		require.NoError(t, err)
		defer func() {
			_, err := s.DB.Exec(ctx, "ALTER TABLE audit_logs_offline RENAME TO audit_logs")
			require.NoError(t, err)
		}()

		// Matching figures still create the payment
		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())
		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Drifted figures still surface as a mismatch, not a server error
		pb = builder.NewPaymentBuilder()
		bookingID = dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())
		reqBody = pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID
		reqBody.TotalAmount += 5.00

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Price verification failed")
	})

	s.Run("Error case: Sub-cent drift within tolerance still passes", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)

		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())

		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID
		reqBody.TotalAmount += 0.005

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestRefundLifecycle - Refund computation and lifecycle tests
// =============================================================================

func (s *BillingSuite) TestRefundLifecycle() {
	createPayment := func(t *testing.T, guestID uuid.UUID, token string) (uuid.UUID, string) {
		pb := builder.NewPaymentBuilder()
		bookingID := dbtest.CreateTestBooking(t, s.DB, guestID, uuid.New(), pb.Pricing.BuildParams())

		reqBody := pb.BuildCreateRequestDTO()
		reqBody.BookingID = bookingID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var body paymentBody
		err := httptest.DecodeResponseBody(t, w.Body, &body)
		require.NoError(t, err)
		return bookingID, body.Payment.ID
	}

	s.Run("Normal case: Host cancellation refunds the full charge", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)
		_, paymentID := createPayment(t, guestID, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundComputeURL,
			map[string]any{"payment_id": paymentID, "reason": "host_cancelled"}, token)

		var body struct {
			Scenario  string  `json:"scenario"`
			Share     float64 `json:"share"`
			Breakdown struct {
				Amount float64 `json:"amount"`
			} `json:"breakdown"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "host_cancellation", body.Scenario)
		require.InDelta(t, 1.0, body.Share, 0.0001)
		require.InDelta(t, 9332.10, body.Breakdown.Amount, 0.001)
	})

	s.Run("Normal case: Completed refund settles the payment", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		bookingID, paymentID := createPayment(t, guestID, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL,
			map[string]any{"payment_id": paymentID, "reason": "host_cancelled"}, token)

		var created refundBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, 1, created.Version)
		require.InDelta(t, 9332.10, created.Amount, 0.001)

		statusURL := fmt.Sprintf(refundStatusURL, created.ID)
		version := created.Version
		for _, next := range []string{"approved", "processing", "completed"} {
			w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
				map[string]any{"status": next, "version": version}, adminToken)

			var transitioned refundBody
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &transitioned)
			require.Equal(t, next, transitioned.Status)
			version = transitioned.Version
		}

		// Payment now carries the full-refund flag
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(paymentURL, paymentID), nil, token)

		var view struct {
			RefundFlag string `json:"refundFlag"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "refunded", view.RefundFlag)

		// And the booking reflects the settled refund
		var bookingRefundStatus string
		err := s.DB.QueryRow(context.Background(),
			"SELECT refund_status FROM bookings WHERE id = $1", bookingID).Scan(&bookingRefundStatus)
		require.NoError(t, err)
		require.Equal(t, "refunded", bookingRefundStatus)
	})

	s.Run("Normal case: Later refund is capped by what was already refunded", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		_, paymentID := createPayment(t, guestID, token)

		// Complete a deposit-only refund first
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL,
			map[string]any{"payment_id": paymentID, "reason": "other", "type": "security_deposit"}, token)

		var created refundBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.InDelta(t, 500.00, created.Amount, 0.001)

		statusURL := fmt.Sprintf(refundStatusURL, created.ID)
		version := created.Version
		for _, next := range []string{"approved", "processing", "completed"} {
			w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
				map[string]any{"status": next, "version": version}, adminToken)

			var transitioned refundBody
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &transitioned)
			version = transitioned.Version
		}

		// A follow-up full refund only covers the remainder
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refundComputeURL,
			map[string]any{"payment_id": paymentID, "reason": "host_cancelled"}, token)

		var computed struct {
			Breakdown struct {
				Amount float64 `json:"amount"`
			} `json:"breakdown"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &computed)
		require.InDelta(t, 8832.10, computed.Breakdown.Amount, 0.001)
	})

	s.Run("Error case: Stale version is rejected with 409", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		_, paymentID := createPayment(t, guestID, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL,
			map[string]any{"payment_id": paymentID, "reason": "host_cancelled"}, token)

		var created refundBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		statusURL := fmt.Sprintf(refundStatusURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]any{"status": "approved", "version": created.Version}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Replay with the original version
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]any{"status": "rejected", "version": created.Version}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "concurrently")
	})

	s.Run("Error case: Lifecycle jump is rejected with 422", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)
		adminToken := s.jwtHelper.GenerateToken(t, uuid.New(), jwt.RoleAdmin)
		_, paymentID := createPayment(t, guestID, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL,
			map[string]any{"payment_id": paymentID, "reason": "host_cancelled"}, token)

		var created refundBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(refundStatusURL, created.ID),
			map[string]any{"status": "completed", "version": created.Version}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "transition")
	})

	s.Run("Error case: Guest cannot transition a refund", func() {
		t := s.T()
		guestID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, guestID, jwt.RoleGuest)
		_, paymentID := createPayment(t, guestID, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL,
			map[string]any{"payment_id": paymentID, "reason": "host_cancelled"}, token)

		var created refundBody
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(refundStatusURL, created.ID),
			map[string]any{"status": "approved", "version": created.Version}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
