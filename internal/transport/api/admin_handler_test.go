package api

import (
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

const testAdminAuthKey = "admin-key"

type AdminHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
	mockQueryService   *mocks.MockQueryServicer
	jwtSecret          []byte
	adminToken         string
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.mockQueryService = mocks.NewMockQueryServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	adminToken, tokenErr := tokens.GenerateAdminJWT(testAdminAuthKey, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.adminToken = adminToken

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
		QueryService:   s.mockQueryService,
		JWTSecretKey:   s.jwtSecret,
		AdminAuthKey:   testAdminAuthKey,
	})
}

func (s *AdminHandlerTestSuite) request(method, url, token string) *http.Response {
	opts := []func(*testutils.RequestOptions){}
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}, opts...)
	s.Require().NoError(err)
	return resp
}

// Клиентский токен не открывает админские роуты.
func (s *AdminHandlerTestSuite) TestAdminRoutesRequireAdminToken() {
	customerToken, tokenErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	cases := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "customer token", token: customerToken},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp := s.request(http.MethodGet, RouteGroup+AdminCustomersRoute, tc.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestCustomers() {
	s.mockAccountService.EXPECT().
		ListCustomers(gomock.Any()).
		Return([]domain.Customer{
			{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", IsActive: true},
			{ID: 2, FirstName: "Jane", LastName: "Roe", Email: "jane.roe@example.com", IsActive: false},
		}, nil)

	resp := s.request(http.MethodGet, RouteGroup+AdminCustomersRoute, s.adminToken)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var customers []CustomerResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&customers))
	s.Require().Len(customers, 2)
	s.False(customers[1].IsActive)
}

func (s *AdminHandlerTestSuite) TestToggleActive() {
	s.mockAccountService.EXPECT().
		ToggleActive(gomock.Any(), int64(2)).
		Return(&domain.Customer{ID: 2, IsActive: true}, nil)

	resp := s.request(http.MethodPost, RouteGroup+"/admin/customers/2/active", s.adminToken)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var customer CustomerResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&customer))
	s.True(customer.IsActive)
}

// Админ смотрит данные от имени выбранного клиента: id берется из URL,
// проверки владения в сервисе запросов сохраняются.
func (s *AdminHandlerTestSuite) TestCustomerCardsAndTransactions() {
	s.mockQueryService.EXPECT().
		ListCards(gomock.Any(), int64(2)).
		Return([]domain.CreditCard{
			{Number: 1000, CustomerID: 2, CreditLimit: decimal.NewFromInt(500)},
		}, nil)
	s.mockQueryService.EXPECT().
		ListTransactions(gomock.Any(), int64(2), int64(1000)).
		Return([]domain.Transaction{
			{ID: 1, CreatedAt: time.Now(), CardNumber: 1000, Total: decimal.RequireFromString("45.85")},
		}, nil)
	s.mockQueryService.EXPECT().
		GetTransactionReport(gomock.Any(), int64(2), int64(1000), int64(1)).
		Return(&domain.TransactionReport{Total: decimal.RequireFromString("45.85")}, nil)

	cardsResp := s.request(http.MethodGet, RouteGroup+"/admin/customers/2/cards", s.adminToken)
	defer cardsResp.Body.Close() //nolint:errcheck
	s.Equal(http.StatusOK, cardsResp.StatusCode)

	transResp := s.request(http.MethodGet, RouteGroup+"/admin/customers/2/cards/1000/transactions", s.adminToken)
	defer transResp.Body.Close() //nolint:errcheck
	s.Equal(http.StatusOK, transResp.StatusCode)

	reportResp := s.request(http.MethodGet, RouteGroup+"/admin/customers/2/cards/1000/transactions/1", s.adminToken)
	defer reportResp.Body.Close() //nolint:errcheck
	s.Equal(http.StatusOK, reportResp.StatusCode)
}

func (s *AdminHandlerTestSuite) TestVendorTransactions() {
	createdAt := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	s.mockQueryService.EXPECT().
		VendorTransactions(gomock.Any(), "Amazing Books").
		Return([]domain.VendorSale{
			{
				TransactionID: 7,
				CreatedAt:     createdAt,
				Total:         decimal.RequireFromString("91.70"),
				CustomerID:    2,
				FirstName:     "John",
				LastName:      "Doe",
				CardNumber:    1000,
			},
		}, nil)
	s.mockQueryService.EXPECT().
		VendorTransactions(gomock.Any(), "nope").
		Return(nil, domain.ErrRecordNotFound)

	resp := s.request(http.MethodGet, RouteGroup+"/admin/vendors/Amazing Books/transactions", s.adminToken)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(http.StatusOK, resp.StatusCode)

	var sales []VendorSaleResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&sales))
	s.Require().Len(sales, 1)
	s.Equal(int64(7), sales[0].TransactionID)
	s.Equal(int64(1000), sales[0].CardNumber)
	s.InDelta(91.70, sales[0].Amount, 0.001)
	s.Equal("2026-08-01 12:30:00", sales[0].Date)

	missingResp := s.request(http.MethodGet, RouteGroup+"/admin/vendors/nope/transactions", s.adminToken)
	defer missingResp.Body.Close() //nolint:errcheck
	s.Equal(http.StatusNotFound, missingResp.StatusCode)
}
