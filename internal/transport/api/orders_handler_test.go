package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/logger"
	"github.com/fsdevblog/groph-store/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-store/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-store/internal/transport/api/tokens"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *mocks.MockTransactionServicer
	jwtSecret              []byte
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTransactionService = mocks.NewMockTransactionServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		TransactionService: s.mockTransactionService,
		JWTSecretKey:       s.jwtSecret,
	})
}

func (s *OrdersHandlerTestSuite) TestCreateOrder() {
	var currentCustomerID int64 = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(currentCustomerID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	validPayload := []byte(`{"cardNumber":1000,"items":[{"itemId":1,"quantity":2}]}`)
	overLimitPayload := []byte(`{"cardNumber":1000,"items":[{"itemId":2,"quantity":10}]}`)
	unknownCardPayload := []byte(`{"cardNumber":9999,"items":[{"itemId":1,"quantity":1}]}`)
	brokenPayload := []byte(`{"items":[]}`)

	// Моки
	// Валидный заказ.
	s.mockTransactionService.EXPECT().
		PlaceOrder(gomock.Any(), currentCustomerID, int64(1000), []domain.OrderItem{{ItemID: 1, Quantity: 2}}).
		Return(&domain.Transaction{
			ID:         7,
			CreatedAt:  time.Now(),
			CardNumber: 1000,
			Total:      decimal.RequireFromString("91.70"),
		}, nil).Times(1)
	// Итог не влезает в доступный кредит.
	s.mockTransactionService.EXPECT().
		PlaceOrder(gomock.Any(), currentCustomerID, int64(1000), []domain.OrderItem{{ItemID: 2, Quantity: 10}}).
		Return(nil, domain.ErrInsufficientBalance).Times(1)
	// Карта не найдена.
	s.mockTransactionService.EXPECT().
		PlaceOrder(gomock.Any(), currentCustomerID, int64(9999), gomock.Any()).
		Return(nil, domain.ErrCardNotFound).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, jwtToken: jwtToken, wantStatus: http.StatusCreated},
		{name: "insufficient balance", payload: overLimitPayload, jwtToken: jwtToken, wantStatus: http.StatusPaymentRequired},
		{name: "unknown card", payload: unknownCardPayload, jwtToken: jwtToken, wantStatus: http.StatusNotFound},
		{name: "broken payload", payload: brokenPayload, jwtToken: jwtToken, wantStatus: http.StatusBadRequest},
		{name: "no auth", payload: validPayload, jwtToken: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			opts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
			if tc.jwtToken != "" {
				opts = append(opts, testutils.WithBearer(tc.jwtToken))
			}

			resp, respErr := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader(tc.payload),
			}, opts...)
			s.Require().NoError(respErr)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestMakePayment() {
	var currentCustomerID int64 = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(currentCustomerID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	// Валидный платеж.
	s.mockTransactionService.EXPECT().
		MakePayment(gomock.Any(), int64(1000), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) (*domain.Transaction, error) {
			s.True(amount.Equal(decimal.RequireFromString("91.70")))
			return &domain.Transaction{
				ID:         8,
				CreatedAt:  time.Now(),
				CardNumber: 1000,
				Total:      amount.Neg(),
			}, nil
		}).Times(1)
	// Платить нечего.
	s.mockTransactionService.EXPECT().
		MakePayment(gomock.Any(), int64(1001), gomock.Any()).
		Return(nil, domain.ErrNoPaymentRequired).Times(1)
	// Невалидная сумма.
	s.mockTransactionService.EXPECT().
		MakePayment(gomock.Any(), int64(1002), gomock.Any()).
		Return(nil, domain.ErrPaymentInvalid).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"cardNumber":1000,"amount":"91.70"}`, wantStatus: http.StatusCreated},
		{name: "nothing to pay", payload: `{"cardNumber":1001,"amount":"10.00"}`, wantStatus: http.StatusPaymentRequired},
		{name: "invalid amount", payload: `{"cardNumber":1002,"amount":"2500.01"}`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, respErr := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PaymentsRoute,
				Body:   bytes.NewReader([]byte(tc.payload)),
			},
				testutils.WithHeader("Content-Type", "application/json"),
				testutils.WithBearer(jwtToken),
			)
			s.Require().NoError(respErr)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == http.StatusCreated {
				var payment TransactionResponse
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payment))
				// платеж отдается с отрицательной суммой.
				s.InDelta(-91.70, payment.Amount, 0.001)
			}
		})
	}
}
