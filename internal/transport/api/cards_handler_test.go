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

type CardsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
	mockQueryService   *mocks.MockQueryServicer
	jwtSecret          []byte
	jwtToken           string
	customerID         int64
}

func TestCardsHandlerSuite(t *testing.T) {
	suite.Run(t, new(CardsHandlerTestSuite))
}

func (s *CardsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.mockQueryService = mocks.NewMockQueryServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.customerID = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(s.customerID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtToken = jwtToken

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
		QueryService:   s.mockQueryService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *CardsHandlerTestSuite) get(url string) *http.Response {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    url,
	}, testutils.WithBearer(s.jwtToken))
	s.Require().NoError(err)
	return resp
}

func (s *CardsHandlerTestSuite) TestIndex() {
	s.mockQueryService.EXPECT().
		ListCards(gomock.Any(), s.customerID).
		Return([]domain.CreditCard{
			{
				Number:        1000,
				CustomerID:    s.customerID,
				CreditLimit:   decimal.NewFromInt(500),
				CreditBalance: decimal.RequireFromString("91.70"),
			},
		}, nil)

	resp := s.get(RouteGroup + CardsRoute)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var cards []CardResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&cards))
	s.Require().Len(cards, 1)
	s.Equal(int64(1000), cards[0].CreditCardNumber)
	s.InDelta(91.70, cards[0].CreditBalance, 0.001)
}

func (s *CardsHandlerTestSuite) TestApply() {
	s.mockAccountService.EXPECT().
		ApplyForCard(gomock.Any(), s.customerID).
		Return(&domain.CreditCard{
			Number:      1001,
			CustomerID:  s.customerID,
			CreditLimit: decimal.NewFromInt(1700),
		}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + CardsRoute,
	}, testutils.WithBearer(s.jwtToken))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, resp.StatusCode)

	var card CardResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&card))
	s.Equal(int64(1001), card.CreditCardNumber)
	s.InDelta(1700, card.CreditLimit, 0.001)
}

func (s *CardsHandlerTestSuite) TestTransactions() {
	s.mockQueryService.EXPECT().
		ListTransactions(gomock.Any(), s.customerID, int64(1000)).
		Return([]domain.Transaction{
			{ID: 1, CreatedAt: time.Now(), CardNumber: 1000, Total: decimal.RequireFromString("91.70")},
		}, nil)

	resp := s.get(RouteGroup + "/cards/1000/transactions")
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var transactions []TransactionResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&transactions))
	s.Require().Len(transactions, 1)
	s.Equal(int64(1), transactions[0].TransactionID)
}

func (s *CardsHandlerTestSuite) TestTransactions_Errors() {
	// Чужая карта.
	s.mockQueryService.EXPECT().
		ListTransactions(gomock.Any(), s.customerID, int64(2000)).
		Return(nil, domain.ErrOwnershipMismatch)
	// Несуществующая карта.
	s.mockQueryService.EXPECT().
		ListTransactions(gomock.Any(), s.customerID, int64(9999)).
		Return(nil, domain.ErrCardNotFound)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "foreign card", url: RouteGroup + "/cards/2000/transactions", wantStatus: http.StatusForbidden},
		{name: "unknown card", url: RouteGroup + "/cards/9999/transactions", wantStatus: http.StatusNotFound},
		{name: "malformed number", url: RouteGroup + "/cards/abc/transactions", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp := s.get(tc.url)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *CardsHandlerTestSuite) TestReport() {
	s.mockQueryService.EXPECT().
		GetTransactionReport(gomock.Any(), s.customerID, int64(1000), int64(7)).
		Return(&domain.TransactionReport{
			Total: decimal.RequireFromString("91.70"),
			OrderItems: []domain.ReportItem{
				{
					ItemName:        "The Go Programming Language",
					ItemDescription: "A classic introduction to Go",
					Price:           decimal.RequireFromString("45.85"),
					ImgLink:         "https://img.example.com/books/gopl.jpg",
					Quantity:        2,
				},
			},
		}, nil)

	resp := s.get(RouteGroup + "/cards/1000/transactions/7")
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var report ReportResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&report))
	s.InDelta(91.70, report.Total, 0.001)
	s.Require().Len(report.OrderItems, 1)
	s.Equal(int32(2), report.OrderItems[0].Quantity)
	s.Equal("The Go Programming Language", report.OrderItems[0].ItemName)
}

func (s *CardsHandlerTestSuite) TestReport_NotFound() {
	s.mockQueryService.EXPECT().
		GetTransactionReport(gomock.Any(), s.customerID, int64(1000), int64(404)).
		Return(nil, domain.ErrTransactionNotFound)

	resp := s.get(RouteGroup + "/cards/1000/transactions/404")
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
